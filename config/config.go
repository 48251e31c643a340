package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/utils"
)

type Config struct {
	Port          string
	GinMode       string
	DB            DBConfig
	Redis         RedisConfig
	JWTSecret     string
	CORSOrigins   []string
	DefaultLocale string
	RateLimit     float64
}

type DBConfig struct {
	Driver string
	DSN    string
}

// RedisConfig: Addr kosong berarti cache snapshot dimatikan.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Info(logrus.Fields{"error": err}).Warn(".env file not found")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	ttl, err := time.ParseDuration(getEnv("SNAPSHOT_CACHE_TTL", "5m"))
	if err != nil {
		utils.Error(logrus.Fields{"error": err}).Warn("invalid SNAPSHOT_CACHE_TTL, using 5m")
		ttl = 5 * time.Minute
	}
	rateLimit, err := strconv.ParseFloat(getEnv("RATE_LIMIT_PER_SECOND", "20"), 64)
	if err != nil || rateLimit <= 0 {
		rateLimit = 20
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		DB: DBConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			DSN:    getEnv("DB_DSN", "menu_studio.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			TTL:      ttl,
		},
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://127.0.0.1:5500,http://localhost:3000")),
		DefaultLocale: strings.ToLower(getEnv("DEFAULT_LOCALE", "en")),
		RateLimit:     rateLimit,
	}
}

// Validate checks settings that have no safe default in production.
func (c *Config) Validate() error {
	if c.GinMode == "release" && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when GIN_MODE=release")
	}
	switch c.DB.Driver {
	case "mysql", "sqlite":
	default:
		return errors.New("unsupported DB_DRIVER: " + c.DB.Driver)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
