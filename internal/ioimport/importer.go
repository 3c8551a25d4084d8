// Package ioimport implements the Importer interface: it fetches the
// catalog and metadata feeds, rebuilds the catalog database from
// scratch and hands the finished file over for the hot swap.
package ioimport

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"

	"github.com/sportdb/sportdb/internal/iodb"
	"github.com/sportdb/sportdb/internal/iometa"
	"github.com/sportdb/sportdb/pkg/catalog"
	"github.com/sportdb/sportdb/pkg/config"
	"github.com/sportdb/sportdb/pkg/feeds"
	"github.com/sportdb/sportdb/pkg/metadata"
	"github.com/sportdb/sportdb/pkg/sportdb"
)

type importer struct {
	cfg     *config.Config
	set     *feeds.FeedSet
	fetcher feeds.Fetcher
	swapper sportdb.Swapper
	sink    catalog.Sink

	mu    sync.Mutex
	state catalog.State
}

// New creates an Importer. The sink may be nil; a non-nil sink is
// invoked on every state change and progress tick and must return
// quickly.
func New(
	cfg *config.Config,
	set *feeds.FeedSet,
	fetcher feeds.Fetcher,
	swapper sportdb.Swapper,
	sink catalog.Sink,
) sportdb.Importer {
	return &importer{
		cfg:     cfg,
		set:     set,
		fetcher: fetcher,
		swapper: swapper,
		sink:    sink,
		state:   catalog.Empty,
	}
}

func (im *importer) State() catalog.State {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.state
}

func (im *importer) setState(s catalog.State) {
	im.mu.Lock()
	im.state = s
	im.mu.Unlock()
	im.notify()
}

func (im *importer) notify() {
	if im.sink != nil {
		im.sink()
	}
}

// Load runs the whole pipeline: fetching, loading, indexing, swap.
// Runs to completion or fails; there is no mid-import cancellation
// beyond the passed context.
func (im *importer) Load(ctx context.Context) error {
	start := time.Now()
	im.setState(catalog.Fetching)

	slog.Info("Fetching catalog feed", "source", im.set.Catalog)
	data, err := im.fetcher.Fetch(ctx, im.set.Catalog)
	if err != nil {
		return im.fallback(ctx, catalogFetchError(im.set.Catalog, err))
	}

	slog.Info("Fetching metadata feeds")
	tables, err := iometa.Load(ctx, im.fetcher, im.set, im.cfg.JobsNumber)
	if err != nil {
		return im.fallback(ctx, metadataFetchError(err))
	}

	rows := catalogLines(data)
	importPath, stats, err := im.build(ctx, tables, rows)
	if err != nil {
		im.setState(catalog.Failed)
		return err
	}

	if err := im.swapper.Swap(ctx, importPath); err != nil {
		im.setState(catalog.Failed)
		return err
	}
	im.setState(catalog.Ready)

	slog.Info("Catalog ready",
		"rows", humanize.Comma(int64(stats.rows)),
		"items", humanize.Comma(int64(stats.items)),
		"rejected", stats.rejected,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// fallback resolves a feed failure against a previously built
// database: the catalog is ready on stale data when the file exists
// and its tables are intact, failed otherwise.
func (im *importer) fallback(ctx context.Context, err error) error {
	live := im.cfg.DatabasePath()
	if cachedCatalog(ctx, live) {
		slog.Warn("Feed unreachable, serving cached catalog",
			"database", live, "error", err)
		im.setState(catalog.Ready)
		return nil
	}
	im.setState(catalog.Failed)
	return err
}

// cachedCatalog reports whether path holds a previously built catalog
// with its tables in place.
func cachedCatalog(ctx context.Context, path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	op := iodb.New()
	if err := op.Open(ctx, path); err != nil {
		return false
	}
	defer op.Close()
	has, err := op.HasTables(ctx)
	return err == nil && has
}

// build creates a fresh import database, loads all rows in one
// transaction and indexes it. Returns the path of the finished file.
func (im *importer) build(
	ctx context.Context,
	tables *metadata.Tables,
	rows []string,
) (string, loadStats, error) {
	var stats loadStats
	dataDir := im.cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", stats, importCreateError(dataDir, err)
	}
	clearStaleImports(dataDir)
	path := filepath.Join(dataDir,
		config.ImportFilePrefix+uuid.New().String()+".sqlite")

	op := iodb.New()
	if err := op.Open(ctx, path); err != nil {
		return "", stats, err
	}
	defer op.Close()
	if err := op.CreateTables(ctx); err != nil {
		return "", stats, err
	}

	im.setState(catalog.Loading)
	stats, err := im.loadRows(ctx, op.DB(), tables, rows)
	if err != nil {
		return "", stats, err
	}

	im.setState(catalog.Indexing)
	slog.Info("Indexing catalog")
	if err := op.CreateIndexes(ctx); err != nil {
		return "", stats, err
	}
	if err := op.Close(); err != nil {
		return "", stats, err
	}
	return path, stats, nil
}

// clearStaleImports removes leftovers of crashed loads. Failures are
// ignored; the new import file has a unique name anyway.
func clearStaleImports(dataDir string) {
	stale, err := filepath.Glob(
		filepath.Join(dataDir, config.ImportFilePrefix+"*.sqlite"))
	if err != nil {
		return
	}
	for _, f := range stale {
		os.Remove(f)
	}
}

// catalogLines splits the catalog feed into data rows, dropping the
// header line, comment lines and empty lines.
func catalogLines(data []byte) []string {
	all := strings.Split(
		strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	var rows []string
	for i, line := range all {
		if i == 0 || line == "" || line[0] == '#' {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}
