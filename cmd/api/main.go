// Copyright (c) 2026 Pokereview. All rights reserved.

// Command api is the entry point for the Pokereview HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pokereview/pokereview/internal/api"
	"github.com/pokereview/pokereview/internal/core/category"
	"github.com/pokereview/pokereview/internal/core/country"
	"github.com/pokereview/pokereview/internal/core/owner"
	"github.com/pokereview/pokereview/internal/core/pokemon"
	"github.com/pokereview/pokereview/internal/core/review"
	"github.com/pokereview/pokereview/internal/core/reviewer"
	"github.com/pokereview/pokereview/internal/platform/config"
	"github.com/pokereview/pokereview/internal/platform/constants"
	"github.com/pokereview/pokereview/internal/platform/migration"
	pgstore "github.com/pokereview/pokereview/internal/platform/postgres"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Pokereview] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
	}, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	// Repositories first, then services. Cross-entity lookups are injected
	// as narrow interfaces, so every service only sees what it needs.
	categoryRepository := category.NewPostgresRepository(pool)
	countryRepository := country.NewPostgresRepository(pool)
	ownerRepository := owner.NewPostgresRepository(pool)
	pokemonRepository := pokemon.NewPostgresRepository(pool)
	reviewerRepository := reviewer.NewPostgresRepository(pool)
	reviewRepository := review.NewPostgresRepository(pool)

	categoryService := category.NewService(categoryRepository, log)
	countryService := country.NewService(countryRepository, log)
	ownerService := owner.NewService(ownerRepository, countryRepository, log)
	pokemonService := pokemon.NewService(pokemonRepository, ownerRepository, categoryRepository, reviewRepository, log)
	reviewerService := reviewer.NewService(reviewerRepository, reviewRepository, log)
	reviewService := review.NewService(reviewRepository, pokemonRepository, reviewerRepository, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Category:  category.NewHandler(categoryService),
		Country:   country.NewHandler(countryService),
		Owner:     owner.NewHandler(ownerService),
		Pokemon:   pokemon.NewHandler(pokemonService),
		Reviewer:  reviewer.NewHandler(reviewerService),
		Review:    review.NewHandler(reviewService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
