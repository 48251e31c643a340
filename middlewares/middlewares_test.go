package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-studio/services"
	"github.com/yeremiapane/menu-studio/utils"
)

func setupRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		plan, _ := c.Get(CtxPlan)
		c.JSON(http.StatusOK, gin.H{"plan": plan})
	})
	r.GET("/x", handlers...)
	return r
}

func token(t *testing.T, plan string) string {
	t.Helper()
	utils.SetJWTSecret("middleware-secret")
	tok, err := utils.GenerateToken(5, "owner", plan)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	r := setupRouter(AuthMiddleware())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", token(t, "pro"), http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"valid", "Bearer " + token(t, "pro"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequirePlan(t *testing.T) {
	r := setupRouter(AuthMiddleware(), RequirePlan(PlanPro, PlanBusiness))

	for plan, want := range map[string]int{PlanFree: http.StatusForbidden, PlanPro: http.StatusOK, PlanBusiness: http.StatusOK} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, plan))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, plan)
	}

	// without auth in front there is no plan at all
	bare := setupRouter(RequirePlan(PlanPro))
	w := httptest.NewRecorder()
	bare.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebSocketAuthMiddleware(t *testing.T) {
	r := setupRouter(WebSocketAuthMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x?token="+token(t, "free"), nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	r := setupRouter(NewRateLimiter(0.001, 2).RateLimit())

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestLoggerMiddleware_RequestID(t *testing.T) {
	r := setupRouter(LoggerMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestSecurityHeaders(t *testing.T) {
	r := setupRouter(SecurityHeaders())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "img-src")
}

type ownerTable map[string]uint

func (o ownerTable) MenuOwner(_ context.Context, slug string) (uint, error) {
	if slug == "broken" {
		return 0, errors.New("db down")
	}
	owner, ok := o[slug]
	if !ok {
		return 0, services.ErrMenuNotFound
	}
	return owner, nil
}

func TestRequireMenuOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	r := gin.New()
	r.GET("/menus/:slug", AuthMiddleware(), RequireMenuOwner(ownerTable{"mine": 5, "theirs": 6}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tok := token(t, PlanPro)
	tests := []struct {
		slug string
		want int
	}{
		{"mine", http.StatusOK},
		{"theirs", http.StatusForbidden},
		{"ghost", http.StatusNotFound},
		{"broken", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/menus/"+tt.slug, nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	// without auth in front there is no user to compare
	bare := gin.New()
	bare.GET("/menus/:slug", RequireMenuOwner(ownerTable{"mine": 5}))
	w := httptest.NewRecorder()
	bare.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus/mine", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
