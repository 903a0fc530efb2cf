package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"tripmate/internal/adapters/auth"
	server "tripmate/internal/adapters/http_server"
	"tripmate/internal/adapters/observability"
	redisad "tripmate/internal/adapters/redis"
	"tripmate/internal/adapters/uploads"
	"tripmate/internal/app"
	"tripmate/internal/shared"
	mysqlrepo "tripmate/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	files, err := uploads.New(cfg.UploadsDir, int64(cfg.MaxUploadMB)<<20)
	if err != nil {
		log.Fatal().Err(err).Msg("uploads dir init failed")
	}

	handlers := &server.Handlers{
		Bookings:   app.NewBookingService(repo, repo),
		Reviews:    app.NewReviewService(repo, repo, cache, cfg.CacheTTL),
		Packages:   app.NewPackageService(repo, cache, cfg.CacheTTL),
		Catalog:    app.NewCatalogService(repo, repo, cache, cfg.CacheTTL),
		Moderation: app.NewModerationService(repo),
		Planner:    app.NewPlannerService(repo, repo),
		Blogs:      app.NewBlogService(repo),
		Uploads:    files,
		Auth:       auth.NewVerifier(cfg.JWTSecret),
	}

	// http
	srv := server.New(server.Options{RateRPS: cfg.RateRPS, RateBurst: cfg.RateBurst})
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.Mount("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(files.Dir()))))
	srv.MountHandlers(handlers)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
