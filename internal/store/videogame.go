package store

import (
	"context"

	"github.com/gamedex/gamedex-api/internal/domain"
)

// VideoGameStore defines the interface for video game data persistence.
// Every operation maps to exactly one storage statement; there is no
// ambient change tracking, callers pass fully populated entities.
type VideoGameStore interface {
	// List retrieves every video game in the store, in storage default
	// order. Returns an empty slice when the store is empty.
	List(ctx context.Context) ([]*domain.VideoGame, error)

	// GetByID retrieves a video game by its unique ID.
	// Returns ErrVideoGameNotFound if the record does not exist.
	GetByID(ctx context.Context, id int64) (*domain.VideoGame, error)

	// Titles returns the title of every record. Duplicates are
	// included: the projection is not deduplicated.
	Titles(ctx context.Context) ([]string, error)

	// Developers returns the developer of every record, duplicates
	// included.
	Developers(ctx context.Context) ([]string, error)

	// Publishers returns the publisher of every record, duplicates
	// included.
	Publishers(ctx context.Context) ([]string, error)

	// FindByDeveloper retrieves all records whose developer matches the
	// given name, compared case-insensitively. An empty result is not
	// an error; callers decide how to surface it.
	FindByDeveloper(ctx context.Context, name string) ([]*domain.VideoGame, error)

	// FindByPlatform retrieves all records whose platform matches the
	// given name, compared case-insensitively.
	FindByPlatform(ctx context.Context, name string) ([]*domain.VideoGame, error)

	// Create persists a new video game and assigns its ID, populating
	// game.ID before returning. Any ID already set on the entity is
	// ignored.
	Create(ctx context.Context, game *domain.VideoGame) error

	// Update overwrites all four text fields of the record identified
	// by game.ID. There are no partial-update semantics.
	// Returns ErrVideoGameNotFound if the record does not exist.
	Update(ctx context.Context, game *domain.VideoGame) error

	// Delete removes the record with the given ID and returns it.
	// Returns ErrVideoGameNotFound if the record does not exist.
	Delete(ctx context.Context, id int64) (*domain.VideoGame, error)
}
