package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gamedex/gamedex-api/internal/store"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, store.IsNotFoundError(store.ErrNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrVideoGameNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("lookup: %w", store.ErrVideoGameNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrInvalidEntity))
	assert.False(t, store.IsNotFoundError(errors.New("other")))
	assert.False(t, store.IsNotFoundError(nil))
}

func TestStoreError(t *testing.T) {
	t.Run("message_includes_context", func(t *testing.T) {
		cause := errors.New("driver: bad connection")
		err := store.NewStoreError("video_game", "query", "failed to scan row", cause)

		assert.Equal(t, "query operation on video_game failed: failed to scan row: driver: bad connection", err.Error())
	})

	t.Run("message_without_cause", func(t *testing.T) {
		err := store.NewStoreError("video_game", "create", "rejected", nil)

		assert.Equal(t, "create operation on video_game failed: rejected", err.Error())
	})

	t.Run("unwraps_to_cause", func(t *testing.T) {
		err := store.NewStoreError("video_game", "delete", "lookup failed", store.ErrVideoGameNotFound)

		assert.ErrorIs(t, err, store.ErrVideoGameNotFound)
		assert.True(t, store.IsNotFoundError(err))

		var storeErr *store.StoreError
		assert.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "video_game", storeErr.Entity)
		assert.Equal(t, "delete", storeErr.Operation)
	})
}
