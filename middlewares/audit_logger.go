package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/utils"
)

// AuditLogger records who changed which menu, before and after the handler.
func AuditLogger(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get(CtxUserID)
		fields := logrus.Fields{
			"action":  action,
			"slug":    c.Param("slug"),
			"user_id": userID,
		}
		// Sebelum request
		utils.Info(fields).Info("menu change requested")

		c.Next()

		// Setelah request
		fields["status"] = c.Writer.Status()
		if c.Writer.Status() < 300 {
			utils.Info(fields).Info("menu change applied")
		} else {
			utils.Error(fields).Warn("menu change rejected")
		}
	}
}
