package api

import (
	"errors"
	"net/http"

	"github.com/gamedex/gamedex-api/internal/domain"
	"github.com/gamedex/gamedex-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrEmptyPayload),
		errors.Is(err, domain.ErrIDMismatch),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrVideoGameNotFound):
		return "Video game not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, domain.ErrEmptyPayload):
		return "Request body is required"

	case errors.Is(err, domain.ErrIDMismatch):
		return "Payload ID does not match path ID"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}
