package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gamedex/gamedex-api/internal/api"
	"github.com/gamedex/gamedex-api/internal/domain"
	"github.com/gamedex/gamedex-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "video_game_not_found",
			err:      store.ErrVideoGameNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped_not_found",
			err:      fmt.Errorf("fetching record: %w", store.ErrVideoGameNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "empty_payload",
			err:      domain.ErrEmptyPayload,
			expected: http.StatusBadRequest,
		},
		{
			name:     "id_mismatch",
			err:      domain.ErrIDMismatch,
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid_id",
			err:      domain.ErrInvalidID,
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid_entity",
			err:      store.ErrInvalidEntity,
			expected: http.StatusBadRequest,
		},
		{
			name:     "unknown_error",
			err:      errors.New("storage exploded"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "video_game_not_found",
			err:      store.ErrVideoGameNotFound,
			expected: "Video game not found",
		},
		{
			name:     "id_mismatch",
			err:      domain.ErrIDMismatch,
			expected: "Payload ID does not match path ID",
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: "An unexpected error occurred",
		},
		{
			name:     "internal_details_are_not_leaked",
			err:      errors.New("pq: connection refused at 10.0.0.5:5432"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, api.GetSafeErrorMessage(tt.err))
		})
	}
}
