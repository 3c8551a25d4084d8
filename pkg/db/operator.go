package db

import (
	"context"
	"database/sql"
)

// Operator defines the interface for catalog database management.
// It covers connection lifecycle and schema creation, and exposes the
// underlying *sql.DB for components (importer, searcher) that run
// their own statements.
//
// Indexes are created separately from tables: a bulk import runs
// against bare tables and indexes only after the data is committed.
type Operator interface {
	// Open opens or creates the SQLite file at path.
	Open(ctx context.Context, path string) error

	// Close closes the database handle.
	Close() error

	// DB returns the open handle for components to run transactions
	// and queries. Nil before Open or after Close.
	DB() *sql.DB

	// CreateTables creates every catalog table that does not yet
	// exist.
	CreateTables(ctx context.Context) error

	// CreateIndexes creates the catalog indexes. Called once after a
	// bulk import commits.
	CreateIndexes(ctx context.Context) error

	// HasTables reports whether the catalog tables already exist. The
	// feed-failure fallback uses it to validate a cached database.
	HasTables(ctx context.Context) (bool, error)
}
