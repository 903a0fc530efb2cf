package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	UploadsDir  string
	MaxUploadMB int
	RateRPS     int
	RateBurst   int
	CacheTTL    time.Duration
	SeedFile    string
	SeedWorkers int
}

func Load() Config {
	// local development convenience; missing .env is fine
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/tripmate?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		JWTSecret:   env("JWT_SECRET", ""),
		UploadsDir:  env("UPLOADS_DIR", "uploads"),
		MaxUploadMB: atoi("MAX_UPLOAD_MB", 8),
		RateRPS:     atoi("RATE_LIMIT_RPS", 20),
		RateBurst:   atoi("RATE_LIMIT_BURST", 40),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SeedFile:    env("SEED_FILE", "seed.json"),
		SeedWorkers: atoi("SEED_WORKERS", 8),
	}
	if c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; all bearer tokens will be rejected")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
