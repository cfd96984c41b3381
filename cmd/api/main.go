package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lead-relay-backend/config"
	_ "lead-relay-backend/docs" // Important for Swagger
	"lead-relay-backend/internal/delivery/http/middleware"
	v1 "lead-relay-backend/internal/delivery/http/v1"
	"lead-relay-backend/internal/usecase"
	"lead-relay-backend/pkg/logger"
	"lead-relay-backend/pkg/pingclient"
	"lead-relay-backend/pkg/redis"
	"lead-relay-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Lead Relay API
// @version         1.0
// @description     Relays landing page leads to a Leadspedia ping endpoint.
// @host            localhost:3000
// @BasePath        /
func main() {
	if err := run(); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}

// run owns every resource so deferred closes happen before the process exits
func run() error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer logger.Close()
	logger.Log.Info("Starting lead relay", "config", cfg.Snapshot())

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 3. Setup Rate Limit Backend (optional)
	var redisClient *goredis.Client
	var primary middleware.WindowCounter
	redisClient, err = redis.New(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	switch {
	case err == nil:
		defer redisClient.Close()
		primary = middleware.NewRedisCounter(redisClient)
		logger.Log.Info("Rate limiting backed by Redis")
	case errors.Is(err, redis.ErrNotConfigured):
		redisClient = nil
	default:
		redisClient = nil
		logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
	}

	fallback := middleware.NewMemoryCounter()
	fallback.StartSweeper(ctx, 5*time.Minute)

	// 4. Setup UseCases
	pingClient := pingclient.NewClient(cfg.PingTimeout)
	leadUC := usecase.NewLeadUsecase(cfg.Campaign(), pingClient, validation.New())

	var redisPing usecase.PingFunc
	if redisClient != nil {
		redisPing = func(ctx context.Context) error { return redis.HealthCheck(ctx, redisClient) }
	}
	healthUC := usecase.NewHealthUsecase(redisPing)

	// 5. Setup Router
	gin.SetMode(cfg.GinMode)
	router := v1.NewRouter(v1.RouterDeps{
		LeadUC:   leadUC,
		HealthUC: healthUC,
		RateLimiter: middleware.RateLimitMiddleware(
			middleware.SubmitRateLimitConfig(cfg.RateLimitSubmitThreshold, cfg.RateLimitWindow()),
			primary,
			fallback,
		),
		Config: cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Log.Info("Server listening", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		logger.Log.Info("Shutting down server...")
	case err := <-listenErr:
		logger.Log.Error("Listen failed", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}
