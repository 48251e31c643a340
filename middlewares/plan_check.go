package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-studio/utils"
)

// Subscription plans granted by the auth service.
const (
	PlanFree     = "free"
	PlanPro      = "pro"
	PlanBusiness = "business"
)

// RequirePlan only lets tenants on one of plans through. Which features each
// plan unlocks is decided upstream; this is the enforcement point.
func RequirePlan(plans ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(plans))
	for _, p := range plans {
		allowed[p] = true
	}
	return func(c *gin.Context) {
		plan, exists := c.Get(CtxPlan)
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if p, _ := plan.(string); !allowed[p] {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("plan %q cannot change this menu", p))
			c.Abort()
			return
		}

		c.Next()
	}
}
