// Package database provides the storage abstraction for HBnB.
//
// The Database interface hides SurrealDB specifics from the repositories:
//   - Query: returns multiple results (SELECT queries returning lists)
//   - QueryOne: returns a single result (SELECT by record id)
//   - Execute: no return value (CREATE/UPDATE/DELETE mutations)
//
// Atomicity is batch-based: statements that must succeed or fail together
// are accumulated in an AtomicBatch (see transaction.go) and executed as a
// single BEGIN TRANSACTION / COMMIT TRANSACTION block. Cascade deletes rely
// on this, so no partially applied cascade is ever observable.
//
// Standard errors are defined for common failure cases; use errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // handle missing record
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique index violation (duplicate email,
	// amenity name, or (author, place) review pair).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
