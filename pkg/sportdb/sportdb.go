// Package sportdb defines the high-level lifecycle interfaces of the
// catalog: importing feeds into a fresh database and searching the
// live one.
package sportdb

import (
	"context"

	"github.com/sportdb/sportdb/pkg/catalog"
	"github.com/sportdb/sportdb/pkg/consolidate"
)

// Importer runs the full catalog build: fetch feeds, normalize and
// load rows, index, then hand the finished file to the Swapper.
type Importer interface {
	// Load drives the catalog through fetching, loading, indexing and
	// ready. A feed failure falls back to a previously built database
	// when one exists; without one the state is failed and an error
	// returns. Storage failures abort the build.
	Load(ctx context.Context) error

	// State reports the current lifecycle state.
	State() catalog.State
}

// Swapper atomically replaces the live catalog database with a newly
// imported one. The swap must never interleave with a search.
type Swapper interface {
	Swap(ctx context.Context, importPath string) error
}

// Searcher executes queries against the live catalog database.
type Searcher interface {
	Swapper

	// Open opens the live database. Search and Detail require it.
	Open(ctx context.Context) error

	// Close closes the live database handle.
	Close() error

	// State reports Empty while the database is closed, Ready while it
	// is open and idle, Searching while a query runs.
	State() catalog.State

	// Search runs one consolidated query. A search arriving while
	// another search or a swap holds the lock is dropped: ok is false
	// and no rows return.
	Search(ctx context.Context, input string) (rows []catalog.Item, ok bool, err error)

	// Detail runs drill-down mode for one selected row.
	Detail(ctx context.Context, sel catalog.Item) (det *consolidate.Detail, ok bool, err error)
}
