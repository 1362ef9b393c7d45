// Package database defines the driver boundary: the minimal contract a
// client library must meet to back a dialect, and the tabular result shape
// every query returns.
package database

import "context"

// Driver is the uniform surface over an underlying database client library.
// A driver is owned by a single connection facade; it is not shared between
// callers and needs no internal locking.
type Driver interface {
	// Connect establishes a connection to the database.
	Connect(ctx context.Context, dsn string) error

	// Ping checks if the connection is alive.
	Ping(ctx context.Context) error

	// Query runs a SQL statement and returns its result. Statements that
	// return no rows yield a Result with no columns.
	Query(ctx context.Context, sql string) (*Result, error)

	// Close closes the database connection.
	Close() error

	// DatabaseName returns the name of the connected database.
	DatabaseName() string
}
