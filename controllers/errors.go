package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/services"
	"github.com/yeremiapane/menu-studio/utils"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrMenuNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrStaleResponse):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidSnapshot), errors.Is(err, services.ErrInvalidColor):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError maps a service error to a status; 500s are logged.
func respondServiceError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.Error(logrus.Fields{"path": c.Request.URL.Path, "error": err}).Error("request failed")
		utils.RespondError(c, code, errors.New("internal server error"))
		return
	}
	utils.RespondError(c, code, err)
}

func sessionFor(c *gin.Context) string {
	userID, ok := c.Get("userID")
	if !ok {
		return ""
	}
	return fmt.Sprintf("user:%v", userID)
}
