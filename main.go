package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/config"
	"github.com/yeremiapane/menu-studio/database"
	"github.com/yeremiapane/menu-studio/router"
	"github.com/yeremiapane/menu-studio/utils"
)

func main() {
	utils.InitLogger()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	// Initialize DB
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	// Redis opsional, tanpa redis snapshot dibaca langsung dari DB
	rdb, err := config.InitRedis(context.Background(), cfg)
	if err != nil {
		utils.Error(logrus.Fields{"addr": cfg.Redis.Addr, "error": err}).Warn("redis unavailable, snapshot cache disabled")
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	r := router.SetupRouter(db, rdb, router.Options{
		CORSOrigins:   cfg.CORSOrigins,
		RateLimit:     cfg.RateLimit,
		CacheTTL:      cfg.Redis.TTL,
		DefaultLocale: cfg.DefaultLocale,
	})

	// Set trusted proxies
	r.SetTrustedProxies([]string{"127.0.0.1"})

	utils.Info(logrus.Fields{"port": cfg.Port, "db": cfg.DB.Driver, "cache": rdb != nil}).Info("menu studio listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
