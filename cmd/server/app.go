package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/gamedex/gamedex-api/internal/config"
	"github.com/gamedex/gamedex-api/internal/platform/metrics"
	"github.com/gamedex/gamedex-api/internal/platform/postgres"
	"github.com/gamedex/gamedex-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the in-memory backend is selected.
	db *sql.DB

	gameStore store.VideoGameStore
	metrics   *metrics.Manager
}

// newApplication creates a new application instance with all dependencies
// initialized. When a database URL is configured it connects, runs pending
// migrations and uses the PostgreSQL store; otherwise it falls back to the
// mutex-guarded in-memory store.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.NewManager(),
	}

	if cfg.Database.URL == "" {
		logger.Info("no database URL configured, using in-memory store")
		app.gameStore = newSeededMemoryStore()
		return app, nil
	}

	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := runMigrations(db, logger); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database after migration failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app.gameStore = postgres.NewPostgresVideoGameStore(db, logger)
	return app, nil
}

// setupDatabase establishes a connection to the database and configures
// the connection pool. Returns the database connection if successful.
func setupDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Reasonable pool defaults for a single small service
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")
	return db, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
