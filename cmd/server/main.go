package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"floorplan-server/internal/generate"
	"floorplan-server/internal/middleware"
	"floorplan-server/internal/server"
	"floorplan-server/internal/shared/config"
	"floorplan-server/internal/shared/database"
	"floorplan-server/internal/shared/logger"
	sharedredis "floorplan-server/internal/shared/redis"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Init()

	cfg := config.GlobalConfig

	var db *database.DB
	if cfg.Database.Enabled {
		var err error
		db, err = database.Connect()
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := db.RunMigrations(); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
	} else {
		slog.Info("Database disabled, generation history unavailable")
	}

	redisClient, err := sharedredis.Connect()
	if err != nil {
		slog.Warn("Redis unavailable, layout caching disabled", "error", err)
		redisClient = nil
	}
	defer redisClient.Close()

	var repo *generate.Repository
	if db != nil {
		repo = generate.NewRepository(db)
	}
	cache := generate.NewCache(redisClient, cfg.Layout.CacheTTL)
	generateService := generate.NewService(repo, cache, slog.Default())

	routes := server.NewRoutes(db, generateService, slog.Default())
	mux := routes.Setup()

	corsMiddleware := middleware.NewCORS()
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		Enabled:           cfg.RateLimit.Enabled,
	})

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(middleware.RequestID(mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Floorplan server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"database_enabled", cfg.Database.Enabled,
			"admin_configured", cfg.AdminConfigured(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
