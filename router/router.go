package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/menu-studio/controllers"
	"github.com/yeremiapane/menu-studio/middlewares"
	"github.com/yeremiapane/menu-studio/preview"
	"github.com/yeremiapane/menu-studio/services"
	"github.com/yeremiapane/menu-studio/templates"
	"gorm.io/gorm"
)

type Options struct {
	CORSOrigins   []string
	RateLimit     float64
	CacheTTL      time.Duration
	DefaultLocale string
}

// SetupRouter wires repositories, services and controllers. rdb may be nil,
// which disables the snapshot cache.
func SetupRouter(db *gorm.DB, rdb *redis.Client, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(opts.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware())
	if opts.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(opts.RateLimit, int(opts.RateLimit*2)).RateLimit())
	}

	gormRepo := services.NewGormSnapshotRepository(db)
	var repo services.SnapshotRepository = gormRepo
	var cache services.SnapshotInvalidator
	if rdb != nil {
		cached := services.NewCachedSnapshotRepository(gormRepo, rdb, opts.CacheTTL)
		repo, cache = cached, cached
	}

	hub := preview.NewHub()
	loader := services.NewSnapshotLoader(repo)
	renderSvc := services.NewRenderService(loader, templates.Builtin, opts.DefaultLocale)
	customSvc := services.NewCustomizationService(db, cache, hub)

	// Inisialisasi controller
	menuCtrl := controllers.NewMenuController(repo, gormRepo, cache, templates.Builtin)
	templateCtrl := controllers.NewTemplateController(templates.Builtin)
	renderCtrl := controllers.NewRenderController(renderSvc)
	customCtrl := controllers.NewCustomizationController(customSvc)
	previewCtrl := controllers.NewPreviewController(hub, renderSvc)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/templates", templateCtrl.GetAllTemplates)
	r.GET("/templates/:template_id", templateCtrl.GetTemplateByID)

	r.GET("/menus/:slug/render", renderCtrl.RenderMenu)
	r.GET("/menus/:slug/snapshot", menuCtrl.GetSnapshot)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	owner := middlewares.RequireMenuOwner(gormRepo)

	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/menus/:slug/customization", owner, customCtrl.GetCustomization)
	auth.POST("/menus/:slug/preview", owner, renderCtrl.PreviewMenu)

	// perubahan tampilan hanya untuk plan berbayar
	writes := auth.Group("/")
	writes.Use(middlewares.RequirePlan(middlewares.PlanPro, middlewares.PlanBusiness))
	writes.Use(middlewares.NewStrictRateLimiter())
	{
		writes.PUT("/menus/:slug/customization", owner, middlewares.AuditLogger("customization.save"), customCtrl.SaveCustomization)
		writes.DELETE("/menus/:slug/customization", owner, middlewares.AuditLogger("customization.reset"), customCtrl.ResetCustomization)
		writes.PATCH("/menus/:slug/template", owner, middlewares.AuditLogger("template.change"), menuCtrl.UpdateTemplate)
		// import tanpa slug di path, pemilik dicek di repository
		writes.PUT("/menus/snapshot", middlewares.AuditLogger("snapshot.import"), menuCtrl.ImportSnapshot)
	}

	// WebSocket endpoint dengan middleware khusus
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/preview/:slug", owner, previewCtrl.PreviewSocket)
	}

	return r
}
