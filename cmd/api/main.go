// Package main runs the TasteIt public recipe API
//
// @title TasteIt API
// @version 1.0
// @description Read-only search over the TasteIt recipe catalogue.
// @BasePath /
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/config"
	"github.com/tasteit/tasteit/backend/internal/database"
	"github.com/tasteit/tasteit/backend/internal/logger"
	"github.com/tasteit/tasteit/backend/internal/middleware"
	"github.com/tasteit/tasteit/backend/internal/router"
	"github.com/tasteit/tasteit/backend/internal/server"
	"github.com/tasteit/tasteit/backend/internal/service"
	"github.com/tasteit/tasteit/backend/internal/store"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Environment == config.Production, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx := context.Background()

	backend, err := database.OpenBackend(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer backend.Close()

	breakerCfg := store.DefaultBreakerConfig("recipe-store-" + cfg.StoreBackend)
	breakerCfg.FailureThreshold = cfg.BreakerFailureThreshold
	breakerCfg.Timeout = cfg.BreakerTimeout
	recipeStore := store.NewBreakerStore(backend.Store, breakerCfg, zl)

	var images service.ImageResolver
	if cfg.S3BucketName != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg.S3BucketName, cfg.AWSRegion)
		if err != nil {
			return err
		}
		images = s3cfg
	}

	// Continue with the in-process limiter if Redis is not available
	redisClient, err := database.NewRedisClient(ctx, cfg, zl)
	if err != nil {
		zl.Warn("redis unavailable, rate limiting per process", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewPublicRateLimiter(redisClient, cfg.RateLimitPerMinute, zl)
	}

	handler := router.SetupRouter(router.Options{
		Logger:         zl,
		Recipes:        service.NewRecipeService(recipeStore, images, zl),
		RateLimiter:    limiter,
		RateLimit:      cfg.RateLimitPerMinute,
		SwaggerEnabled: cfg.SwaggerEnabled,
		Version:        version,
	})
	srv := server.New(cfg, handler, zl)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		zl.Info("received signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	zl.Info("server stopped")
	return nil
}
