// Package memory provides an in-memory implementation of the store
// interfaces, guarded by an explicit mutex so it is safe under
// concurrent writers. It backs the service when no database URL is
// configured and keeps handler tests free of external dependencies.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/gamedex/gamedex-api/internal/domain"
	"github.com/gamedex/gamedex-api/internal/store"
)

// VideoGameStore implements store.VideoGameStore with a process-local
// map. All access goes through the RWMutex; the id counter mimics the
// storage engine's auto-increment (one greater than the last assigned).
type VideoGameStore struct {
	mu     sync.RWMutex
	games  map[int64]*domain.VideoGame
	order  []int64
	nextID int64
}

// NewVideoGameStore creates an empty in-memory store.
func NewVideoGameStore() *VideoGameStore {
	return &VideoGameStore{
		games:  make(map[int64]*domain.VideoGame),
		nextID: 1,
	}
}

// Ensure VideoGameStore implements store.VideoGameStore interface
var _ store.VideoGameStore = (*VideoGameStore)(nil)

// List implements store.VideoGameStore.List
// Records come back in insertion order, the closest analogue to the
// storage-engine default order of the SQL backend.
func (s *VideoGameStore) List(ctx context.Context) ([]*domain.VideoGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*domain.VideoGame, 0, len(s.order))
	for _, id := range s.order {
		games = append(games, copyGame(s.games[id]))
	}
	return games, nil
}

// GetByID implements store.VideoGameStore.GetByID
func (s *VideoGameStore) GetByID(ctx context.Context, id int64) (*domain.VideoGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return nil, store.ErrVideoGameNotFound
	}
	return copyGame(game), nil
}

// Titles implements store.VideoGameStore.Titles
// Duplicates are included, matching the SQL projection.
func (s *VideoGameStore) Titles(ctx context.Context) ([]string, error) {
	return s.project(func(g *domain.VideoGame) string { return g.Title }), nil
}

// Developers implements store.VideoGameStore.Developers
func (s *VideoGameStore) Developers(ctx context.Context) ([]string, error) {
	return s.project(func(g *domain.VideoGame) string { return g.Developer }), nil
}

// Publishers implements store.VideoGameStore.Publishers
func (s *VideoGameStore) Publishers(ctx context.Context) ([]string, error) {
	return s.project(func(g *domain.VideoGame) string { return g.Publisher }), nil
}

// FindByDeveloper implements store.VideoGameStore.FindByDeveloper
func (s *VideoGameStore) FindByDeveloper(ctx context.Context, name string) ([]*domain.VideoGame, error) {
	return s.filter(func(g *domain.VideoGame) bool {
		return strings.EqualFold(g.Developer, name)
	}), nil
}

// FindByPlatform implements store.VideoGameStore.FindByPlatform
func (s *VideoGameStore) FindByPlatform(ctx context.Context, name string) ([]*domain.VideoGame, error) {
	return s.filter(func(g *domain.VideoGame) bool {
		return strings.EqualFold(g.Platform, name)
	}), nil
}

// Create implements store.VideoGameStore.Create
// The store assigns the next ID; any ID on the entity is ignored.
func (s *VideoGameStore) Create(ctx context.Context, game *domain.VideoGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game.ID = s.nextID
	s.nextID++

	s.games[game.ID] = copyGame(game)
	s.order = append(s.order, game.ID)
	return nil
}

// Update implements store.VideoGameStore.Update
// All four text fields are overwritten unconditionally.
func (s *VideoGameStore) Update(ctx context.Context, game *domain.VideoGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.games[game.ID]
	if !ok {
		return store.ErrVideoGameNotFound
	}

	existing.Title = game.Title
	existing.Platform = game.Platform
	existing.Developer = game.Developer
	existing.Publisher = game.Publisher
	return nil
}

// Delete implements store.VideoGameStore.Delete
func (s *VideoGameStore) Delete(ctx context.Context, id int64) (*domain.VideoGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[id]
	if !ok {
		return nil, store.ErrVideoGameNotFound
	}

	delete(s.games, id)
	for i, existingID := range s.order {
		if existingID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return copyGame(game), nil
}

// Seed inserts the given records with their existing IDs, advancing the
// id counter past the highest seeded ID. It mirrors the seed migration
// of the SQL backend and is used at startup and in tests.
func (s *VideoGameStore) Seed(games ...*domain.VideoGame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, game := range games {
		s.games[game.ID] = copyGame(game)
		s.order = append(s.order, game.ID)
		if game.ID >= s.nextID {
			s.nextID = game.ID + 1
		}
	}
}

func (s *VideoGameStore) project(field func(*domain.VideoGame) string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([]string, 0, len(s.order))
	for _, id := range s.order {
		values = append(values, field(s.games[id]))
	}
	return values
}

func (s *VideoGameStore) filter(match func(*domain.VideoGame) bool) []*domain.VideoGame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*domain.VideoGame, 0)
	for _, id := range s.order {
		if match(s.games[id]) {
			games = append(games, copyGame(s.games[id]))
		}
	}
	return games
}

// copyGame returns a shallow copy so callers never share the store's
// internal pointers.
func copyGame(game *domain.VideoGame) *domain.VideoGame {
	copied := *game
	return &copied
}
