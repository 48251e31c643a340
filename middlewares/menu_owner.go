package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/services"
	"github.com/yeremiapane/menu-studio/utils"
)

// MenuOwnerLookup resolves who owns the menu behind a slug.
type MenuOwnerLookup interface {
	MenuOwner(ctx context.Context, slug string) (uint, error)
}

// RequireMenuOwner rejects requests on /:slug routes from anyone but the
// menu's owner. Must run after AuthMiddleware or WebSocketAuthMiddleware.
func RequireMenuOwner(lookup MenuOwnerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get(CtxUserID)
		uid, _ := userID.(uint)
		if uid == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		slug := c.Param("slug")
		owner, err := lookup.MenuOwner(c.Request.Context(), slug)
		switch {
		case errors.Is(err, services.ErrMenuNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
			c.Abort()
			return
		case err != nil:
			utils.Error(logrus.Fields{"slug": slug, "error": err}).Error("menu owner lookup failed")
			utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
			c.Abort()
			return
		}

		if owner != uid {
			utils.Info(logrus.Fields{"slug": slug, "user_id": uid}).Warn("menu access denied")
			utils.RespondError(c, http.StatusForbidden, services.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
