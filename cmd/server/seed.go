package main

import (
	"github.com/gamedex/gamedex-api/internal/domain"
	"github.com/gamedex/gamedex-api/internal/platform/memory"
)

// seedGames is the fixed example catalog. The in-memory backend seeds
// it directly; the SQL backend gets the same records from the seed
// migration, so both start from identical state.
var seedGames = []*domain.VideoGame{
	{ID: 1, Title: "The Legend of Zelda: Breath of the Wild", Platform: "Switch", Developer: "Nintendo EPD", Publisher: "Nintendo"},
	{ID: 2, Title: "Elden Ring", Platform: "PS5", Developer: "FromSoftware", Publisher: "Bandai Namco"},
	{ID: 3, Title: "Halo Infinite", Platform: "Xbox Series X", Developer: "343 Industries", Publisher: "Xbox Game Studios"},
}

// newSeededMemoryStore builds the in-memory store pre-populated with
// the example catalog.
func newSeededMemoryStore() *memory.VideoGameStore {
	s := memory.NewVideoGameStore()
	s.Seed(seedGames...)
	return s
}
