package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedex/gamedex-api/internal/domain"
)

// Delete hands back a copy, never the map's own pointer, matching the
// copy discipline of every read path.
func TestDeleteReturnsDetachedCopy(t *testing.T) {
	ctx := context.Background()
	s := NewVideoGameStore()

	game := domain.NewVideoGame("A", "PC", "Dev", "Pub")
	require.NoError(t, s.Create(ctx, game))

	internal := s.games[game.ID]
	require.NotNil(t, internal)

	deleted, err := s.Delete(ctx, game.ID)
	require.NoError(t, err)

	assert.NotSame(t, internal, deleted)
	assert.Equal(t, *internal, *deleted)
}
