package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-studio/utils"
)

// WebSocketAuthMiddleware reads the token from the query string, browsers
// cannot set headers on a websocket handshake.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		// Validasi token
		claims, err := utils.ParseToken(token)
		if err != nil || claims.UserID == 0 {
			c.AbortWithStatus(401)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
