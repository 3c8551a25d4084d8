// Package catalog defines the core domain types shared by the import and
// search paths: catalog lifecycle states, display items and the color
// normalization used while loading catalog rows.
package catalog

import (
	"strings"
)

// State describes the catalog lifecycle. A load moves the catalog through
// Fetching, Loading and Indexing to Ready; Failed is terminal unless a
// previously cached database exists. Searching is a transient read-path
// substate that does not alter persisted data.
type State int

const (
	Empty State = iota
	Failed
	Fetching
	Loading
	Indexing
	Ready
	Searching
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	case Fetching:
		return "fetching"
	case Loading:
		return "loading"
	case Indexing:
		return "indexing"
	case Ready:
		return "ready"
	case Searching:
		return "searching"
	}
	return "unknown"
}

// Sink receives a no-argument "state or progress changed" signal on every
// state transition and every progress tick. The sink's execution context
// is the caller's responsibility; it must return quickly.
type Sink func()

// UnknownBrand is the sentinel brand recorded for items whose title
// yields no brand at all.
const UnknownBrand = "?"

// Item is one display row of a search or drill-down result. A blank Brand
// or blank Price signals "ambiguous - selecting this row should drill
// down with the row's known fields as filters".
type Item struct {
	Serial string
	Brand  string
	Title  string
	Price  string
	Color  string
	Size   string
}

// StrippedTitle returns the title with one trailing parenthetical
// (typically the brand annotation) removed.
func (it Item) StrippedTitle() string {
	if !strings.HasSuffix(it.Title, ")") {
		return it.Title
	}
	stripped := it.Title
	parts := strings.Split(stripped, "(")
	if len(parts) > 1 {
		stripped = strings.TrimSpace(strings.Join(parts[:len(parts)-1], "("))
	}
	stripped = strings.TrimSuffix(stripped, ")")
	return stripped
}
