// Package main is the entry point for the tour discovery service.
//
//	@title						Tour Discovery API
//	@version					1.0.0
//	@description				A read-side discovery service for a tour booking platform: filtered tour listings, a featured shortlist, and search-as-you-type suggestions.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/tour-booking/tour-discovery-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/tour-booking/tour-discovery-service/docs"

	// Application layers
	"github.com/tour-booking/tour-discovery-service/internal/adapter/cache"
	tourhttp "github.com/tour-booking/tour-discovery-service/internal/adapter/http"
	"github.com/tour-booking/tour-discovery-service/internal/adapter/http/middleware"
	"github.com/tour-booking/tour-discovery-service/internal/adapter/repository/postgres"
	"github.com/tour-booking/tour-discovery-service/internal/config"
	"github.com/tour-booking/tour-discovery-service/internal/infrastructure/logger"
	"github.com/tour-booking/tour-discovery-service/internal/infrastructure/scheduler"
	"github.com/tour-booking/tour-discovery-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("cache", cfg.CacheEnabled()).
		Msg("Configuration loaded")

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	// Connect to the catalog database
	db, err := postgres.Open(startupCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to catalog database")
	}
	catalog := postgres.NewCatalog(db)

	// Wire the optional featured cache and its warm job
	ucConfig := &usecase.Config{Logger: &log.Logger}
	var warmScheduler *scheduler.Scheduler
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(startupCtx, cfg.Cache.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		ucConfig.Cache = cache.NewTourCache(redisClient, cfg.Cache.FeaturedTTL, log.Logger)
	}

	// Initialize use case
	discovery := usecase.NewTourDiscoveryUseCase(catalog, ucConfig)

	// Keep the featured shortlist warm so cache expiry never lands on a
	// user request
	if cfg.CacheEnabled() {
		warmScheduler = scheduler.New(log.Logger)
		err := warmScheduler.Every(cfg.Cache.WarmInterval, "warm-featured-tours", func(ctx context.Context) {
			if _, err := discovery.FeaturedTours(ctx, usecase.DefaultFeaturedLimit); err != nil {
				log.Warn().Err(err).Msg("Featured cache warm failed")
			}
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule cache warm job")
		}
		warmScheduler.Start()
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	handler := tourhttp.NewTourHandler(discovery)
	tourhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, warmScheduler)
}

// setupLogger configures the global logger based on config.
func setupLogger(cfg *config.Config) {
	appLogger := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "tour-discovery",
	})
	logger.SetGlobal(appLogger)
	log.Logger = appLogger.Logger
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, warmScheduler *scheduler.Scheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	if warmScheduler != nil {
		warmScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
