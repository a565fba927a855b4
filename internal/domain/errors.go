// Package domain defines the core catalog entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrIDMismatch is returned when the ID in a request payload does
	// not match the ID addressed by the request path.
	ErrIDMismatch = errors.New("payload ID does not match path ID")

	// ErrEmptyPayload is returned when a request that requires a body
	// arrives without one.
	ErrEmptyPayload = errors.New("request payload cannot be empty")
)
