// Package store defines the persistence interfaces for the catalog.
//
// Each entity gets an explicit interface with one method per storage
// operation; implementations live under internal/platform. Handlers
// depend only on these interfaces, never on a concrete backend.
package store
