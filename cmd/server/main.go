// Package main implements the entry point for the gamedex API server,
// a minimal catalog service exposing CRUD operations over a single
// video_games table.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/gamedex/gamedex-api/internal/config"
	"github.com/gamedex/gamedex-api/internal/platform/logger"
)

// main is the entry point for the gamedex-api server.
// It delegates to run so deferred cleanup executes on every exit path;
// log.Fatalf calls os.Exit and would skip it.
func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run loads configuration, sets up logging, establishes the storage
// backend, runs pending migrations, and serves HTTP until shutdown.
func run() error {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to build application", "error", err)
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer app.cleanup()

	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		appLogger.Error("Server exited with error", "error", err)
		return fmt.Errorf("server exited with error: %w", err)
	}
	return nil
}

// initializeApp loads configuration and sets up the logging system.
// Returns the loaded config, the configured logger, and any error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_configured", cfg.Database.URL != "")

	return cfg, appLogger, nil
}
