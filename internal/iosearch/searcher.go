// Package iosearch implements the Searcher interface over the live
// catalog database. One mutex guards the search path and the hot
// swap: concurrent searches are dropped, never queued, and a swap can
// never interleave with an in-flight search.
package iosearch

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sportdb/sportdb/pkg/catalog"
	"github.com/sportdb/sportdb/pkg/config"
	"github.com/sportdb/sportdb/pkg/consolidate"
	"github.com/sportdb/sportdb/pkg/query"
	"github.com/sportdb/sportdb/pkg/sportdb"
)

type searcher struct {
	mu   sync.Mutex
	db   *sql.DB
	path string

	// Read outside the search lock, so atomic.
	state atomic.Int32
}

// New creates a Searcher for the configured live database file.
func New(cfg *config.Config) sportdb.Searcher {
	return &searcher{path: cfg.DatabasePath()}
}

func (s *searcher) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open(ctx)
}

func (s *searcher) open(ctx context.Context) error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return openError(s.path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return openError(s.path, err)
	}
	s.db = db
	s.setState(catalog.Ready)
	return nil
}

func (s *searcher) State() catalog.State {
	return catalog.State(s.state.Load())
}

func (s *searcher) setState(st catalog.State) {
	s.state.Store(int32(st))
}

func (s *searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.close()
}

func (s *searcher) close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.setState(catalog.Empty)
	if err != nil {
		return closeError(s.path, err)
	}
	return nil
}

// Search runs one consolidated query. First caller wins: a call
// arriving while the lock is held is dropped with ok false.
func (s *searcher) Search(
	ctx context.Context,
	input string,
) ([]catalog.Item, bool, error) {
	if !s.mu.TryLock() {
		return nil, false, nil
	}
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, true, notOpenError()
	}
	s.setState(catalog.Searching)
	defer s.setState(catalog.Ready)

	start := time.Now()
	q := query.Build(input)
	if q.ListBrands {
		rows, err := s.listBrands(ctx, q)
		return rows, true, err
	}

	raw, err := s.scanItems(ctx, q)
	if err != nil {
		return nil, true, err
	}
	result := consolidate.Consolidate(raw)
	slog.Info("Search complete",
		"query", input,
		"rows", len(raw),
		"shown", len(result),
		"latency", time.Since(start),
	)
	return result, true, nil
}

// Detail runs drill-down mode for one selected row.
func (s *searcher) Detail(
	ctx context.Context,
	sel catalog.Item,
) (*consolidate.Detail, bool, error) {
	if !s.mu.TryLock() {
		return nil, false, nil
	}
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, true, notOpenError()
	}
	s.setState(catalog.Searching)
	defer s.setState(catalog.Ready)

	q := query.BuildDetail(sel)
	rows, err := s.db.QueryContext(ctx, q.SQL, queryArgs(q)...)
	if err != nil {
		return nil, true, queryError(err)
	}
	defer rows.Close()

	var raw []catalog.Item
	for rows.Next() {
		var it catalog.Item
		err = rows.Scan(&it.Brand, &it.Title, &it.Serial,
			&it.Price, &it.Color, &it.Size)
		if err != nil {
			return nil, true, queryError(err)
		}
		it.Price = catalog.Currency(it.Price)
		raw = append(raw, it)
	}
	if err := rows.Err(); err != nil {
		return nil, true, queryError(err)
	}
	det := consolidate.DrillDown(sel, raw)
	return &det, true, nil
}

// Swap replaces the live database file with a finished import. It
// waits for the lock, so it never interleaves with a search.
func (s *searcher) Swap(ctx context.Context, importPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasOpen := s.db != nil
	if err := s.close(); err != nil {
		return err
	}
	if err := os.Rename(importPath, s.path); err != nil {
		return swapError(importPath, s.path, err)
	}
	if wasOpen {
		return s.open(ctx)
	}
	return nil
}

func (s *searcher) listBrands(
	ctx context.Context,
	q query.Query,
) ([]catalog.Item, error) {
	rows, err := s.db.QueryContext(ctx, q.SQL)
	if err != nil {
		return nil, queryError(err)
	}
	defer rows.Close()

	var result []catalog.Item
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, queryError(err)
		}
		if brand == catalog.UnknownBrand {
			continue
		}
		result = append(result, catalog.Item{Brand: brand})
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(err)
	}
	return result, nil
}

func (s *searcher) scanItems(
	ctx context.Context,
	q query.Query,
) ([]catalog.Item, error) {
	rows, err := s.db.QueryContext(ctx, q.SQL, queryArgs(q)...)
	if err != nil {
		return nil, queryError(err)
	}
	defer rows.Close()

	var raw []catalog.Item
	for rows.Next() {
		var it catalog.Item
		var serial string
		err = rows.Scan(&it.Brand, &it.Title, &it.Price, &serial)
		if err != nil {
			return nil, queryError(err)
		}
		it.Price = catalog.Currency(it.Price)
		// Result rows carry the serial filter, not the row serial, so
		// drill-down keeps constraining by it.
		it.Serial = q.Serial
		raw = append(raw, it)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(err)
	}
	return raw, nil
}

func queryArgs(q query.Query) []any {
	args := make([]any, len(q.Args))
	for i, a := range q.Args {
		args[i] = a
	}
	return args
}
