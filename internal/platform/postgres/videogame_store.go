package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gamedex/gamedex-api/internal/domain"
	"github.com/gamedex/gamedex-api/internal/platform/logger"
	"github.com/gamedex/gamedex-api/internal/store"
)

// PostgresVideoGameStore implements the store.VideoGameStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVideoGameStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVideoGameStore creates a new PostgreSQL implementation of the
// VideoGameStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// the default logger is used.
func NewPostgresVideoGameStore(db store.DBTX, logger *slog.Logger) *PostgresVideoGameStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVideoGameStore{
		db:     db,
		logger: logger.With(slog.String("component", "videogame_store")),
	}
}

// Ensure PostgresVideoGameStore implements store.VideoGameStore interface
var _ store.VideoGameStore = (*PostgresVideoGameStore)(nil)

// List implements store.VideoGameStore.List
func (s *PostgresVideoGameStore) List(ctx context.Context) ([]*domain.VideoGame, error) {
	query := `
		SELECT id, title, platform, developer, publisher
		FROM video_games
	`
	return s.queryGames(ctx, query)
}

// GetByID implements store.VideoGameStore.GetByID
// Returns store.ErrVideoGameNotFound if the record does not exist.
func (s *PostgresVideoGameStore) GetByID(ctx context.Context, id int64) (*domain.VideoGame, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, platform, developer, publisher
		FROM video_games
		WHERE id = $1
	`

	var game domain.VideoGame
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID,
		&game.Title,
		&game.Platform,
		&game.Developer,
		&game.Publisher,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("video game not found", slog.Int64("game_id", id))
			return nil, store.ErrVideoGameNotFound
		}
		log.Error("failed to get video game by ID",
			slog.String("error", err.Error()),
			slog.Int64("game_id", id))
		return nil, MapError(err)
	}

	return &game, nil
}

// Titles implements store.VideoGameStore.Titles
// The projection keeps duplicates: no DISTINCT.
func (s *PostgresVideoGameStore) Titles(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx, `SELECT title FROM video_games`)
}

// Developers implements store.VideoGameStore.Developers
func (s *PostgresVideoGameStore) Developers(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx, `SELECT developer FROM video_games`)
}

// Publishers implements store.VideoGameStore.Publishers
func (s *PostgresVideoGameStore) Publishers(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx, `SELECT publisher FROM video_games`)
}

// FindByDeveloper implements store.VideoGameStore.FindByDeveloper
// The comparison is a case-insensitive exact match.
func (s *PostgresVideoGameStore) FindByDeveloper(ctx context.Context, name string) ([]*domain.VideoGame, error) {
	query := `
		SELECT id, title, platform, developer, publisher
		FROM video_games
		WHERE LOWER(developer) = LOWER($1)
	`
	return s.queryGames(ctx, query, name)
}

// FindByPlatform implements store.VideoGameStore.FindByPlatform
// The comparison is a case-insensitive exact match.
func (s *PostgresVideoGameStore) FindByPlatform(ctx context.Context, name string) ([]*domain.VideoGame, error) {
	query := `
		SELECT id, title, platform, developer, publisher
		FROM video_games
		WHERE LOWER(platform) = LOWER($1)
	`
	return s.queryGames(ctx, query, name)
}

// Create implements store.VideoGameStore.Create
// The database assigns the ID; any value already on the entity is ignored.
func (s *PostgresVideoGameStore) Create(ctx context.Context, game *domain.VideoGame) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO video_games (title, platform, developer, publisher)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		game.Title,
		game.Platform,
		game.Developer,
		game.Publisher,
	).Scan(&game.ID)

	if err != nil {
		log.Error("failed to create video game",
			slog.String("error", err.Error()),
			slog.String("title", game.Title))
		return MapError(err)
	}

	log.Info("video game created",
		slog.Int64("game_id", game.ID),
		slog.String("title", game.Title))
	return nil
}

// Update implements store.VideoGameStore.Update
// It overwrites all four text fields unconditionally.
// Returns store.ErrVideoGameNotFound if the record does not exist.
func (s *PostgresVideoGameStore) Update(ctx context.Context, game *domain.VideoGame) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE video_games
		SET title = $1, platform = $2, developer = $3, publisher = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		game.Title,
		game.Platform,
		game.Developer,
		game.Publisher,
		game.ID,
	)

	if err != nil {
		log.Error("failed to update video game",
			slog.String("error", err.Error()),
			slog.Int64("game_id", game.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrVideoGameNotFound); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("video game not found for update", slog.Int64("game_id", game.ID))
		} else {
			log.Error("failed to check rows affected",
				slog.String("error", err.Error()),
				slog.Int64("game_id", game.ID))
		}
		return err
	}

	log.Info("video game updated", slog.Int64("game_id", game.ID))
	return nil
}

// Delete implements store.VideoGameStore.Delete
// It removes the record and returns it, in a single statement.
// Returns store.ErrVideoGameNotFound if the record does not exist.
func (s *PostgresVideoGameStore) Delete(ctx context.Context, id int64) (*domain.VideoGame, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM video_games
		WHERE id = $1
		RETURNING id, title, platform, developer, publisher
	`

	var game domain.VideoGame
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID,
		&game.Title,
		&game.Platform,
		&game.Developer,
		&game.Publisher,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("video game not found for delete", slog.Int64("game_id", id))
			return nil, store.ErrVideoGameNotFound
		}
		log.Error("failed to delete video game",
			slog.String("error", err.Error()),
			slog.Int64("game_id", id))
		return nil, MapError(err)
	}

	log.Info("video game deleted", slog.Int64("game_id", id))
	return &game, nil
}

// queryGames runs a query whose rows scan into full VideoGame records.
func (s *PostgresVideoGameStore) queryGames(ctx context.Context, query string, args ...any) ([]*domain.VideoGame, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query video games", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var games []*domain.VideoGame
	for rows.Next() {
		var game domain.VideoGame
		err := rows.Scan(
			&game.ID,
			&game.Title,
			&game.Platform,
			&game.Developer,
			&game.Publisher,
		)
		if err != nil {
			log.Error("failed to scan video game row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("video_game", "query", "failed to scan row", err)
		}
		games = append(games, &game)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("video_game", "query", "row iteration failed", err)
	}

	// Return empty slice instead of nil if no games found
	if games == nil {
		games = []*domain.VideoGame{}
	}

	return games, nil
}

// queryStrings runs a single-column projection query.
func (s *PostgresVideoGameStore) queryStrings(ctx context.Context, query string) ([]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query projection", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			log.Error("failed to scan projection row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("video_game", "projection", "failed to scan row", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("video_game", "projection", "row iteration failed", err)
	}

	if values == nil {
		values = []string{}
	}

	return values, nil
}
