// Package main is the entry point for the flight finder service.
//
//	@title						Flight Finder API
//	@version					1.0.0
//	@description				A flight search service that queries the Amadeus travel API and serves session-scoped, filterable, sortable flight results.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flightfinder/flight-finder-service/issues
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
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flightfinder/flight-finder-service/docs"

	// Application layers
	flighthttp "github.com/flightfinder/flight-finder-service/internal/adapter/http"
	"github.com/flightfinder/flight-finder-service/internal/adapter/http/middleware"
	"github.com/flightfinder/flight-finder-service/internal/adapter/provider/amadeus"
	"github.com/flightfinder/flight-finder-service/internal/config"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/cache"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/logger"
	"github.com/flightfinder/flight-finder-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-finder",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes and application layers
	store := setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, store, log)
}

// setupRoutes wires the provider, session store, and HTTP handler, and
// returns the store so shutdown can release its sessions.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) *usecase.SessionStore {
	// Amadeus provider serves both the flight and the airport gateway
	provider := amadeus.New(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Timeout:      cfg.Amadeus.Timeout,
		RateLimit:    cfg.Amadeus.RateLimit,
		ResultLimit:  cfg.Amadeus.ResultLimit,
	}, log.Logger)

	results := newResultCache(cfg, log)

	store := usecase.NewSessionStore(provider, results, log.Logger, usecase.StoreConfig{
		SessionTTL:    cfg.Session.TTL,
		SweepInterval: cfg.Session.SweepInterval,
		Session: usecase.SessionConfig{
			FetchTimeout: cfg.Session.FetchTimeout,
		},
	})

	handler := flighthttp.NewSessionHandler(store, provider)
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return store
}

// newResultCache selects the search-result cache backend. Redis is used when
// an address is configured, otherwise results are cached in memory.
func newResultCache(cfg *config.Config, log *logger.Logger) cache.ResultCache {
	if cfg.Cache.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Using Redis result cache")
		return cache.NewRedis(client, cfg.Cache.TTL, log.Logger)
	}
	return cache.NewMemory(cfg.Cache.TTL)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, store *usecase.SessionStore, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
