// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces, using hand-written SQL over database/sql with the
// pgx driver. Each store method issues exactly one statement.
package postgres
