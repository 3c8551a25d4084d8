package iosearch_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportdb/sportdb/internal/iodb"
	"github.com/sportdb/sportdb/internal/iosearch"
	"github.com/sportdb/sportdb/pkg/catalog"
	"github.com/sportdb/sportdb/pkg/config"
	"github.com/sportdb/sportdb/pkg/sportdb"
)

func seedDatabase(t *testing.T, path string) {
	t.Helper()
	ctx := context.Background()

	op := iodb.New()
	require.NoError(t, op.Open(ctx, path))
	require.NoError(t, op.CreateTables(ctx))

	db := op.DB()
	exec := func(query string, args ...any) {
		_, err := db.ExecContext(ctx, query, args...)
		require.NoError(t, err)
	}
	for _, brand := range []string{"NIKE", "ADIDAS"} {
		exec("insert into brand ( brand ) values ( ? )", brand)
	}
	for _, title := range []string{"RUN TEE (NIKE)", "RUN TEE (ADIDAS)"} {
		exec("insert into title ( title ) values ( ? )", title)
	}
	exec("insert into color ( color, numeric ) values ( ?, ? )", "RED", "")
	exec("insert into color ( color, numeric ) values ( ?, ? )", "BLUE", "")
	for _, size := range []string{"M", "L"} {
		exec("insert into size ( size ) values ( ? )", size)
	}
	items := []struct {
		serial                          string
		price                           string
		brandID, titleID, colorID, size int64
	}{
		{"1001", "25.00", 1, 1, 1, 1},
		{"1002", "25.00", 1, 1, 1, 2},
		{"2001", "22.00", 2, 2, 2, 1},
	}
	for _, it := range items {
		exec("insert into item ( serial, price, brandId, titleId, colorId, sizeId )"+
			" values ( ?, ?, ?, ?, ?, ? )",
			it.serial, it.price, it.brandID, it.titleID, it.colorID, it.size)
	}
	require.NoError(t, op.CreateIndexes(ctx))
	require.NoError(t, op.Close())
}

func openSearcher(t *testing.T) sportdb.Searcher {
	t.Helper()
	ctx := context.Background()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDataDir(t.TempDir()),
	})
	seedDatabase(t, cfg.DatabasePath())

	s := iosearch.New(cfg)
	require.NoError(t, s.Open(ctx))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSearchConsolidates(t *testing.T) {
	ctx := context.Background()
	s := openSearcher(t)

	// Two brands of the same product collapse into one row.
	rows, ok, err := s.Search(ctx, "TEE")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Brand)
	assert.Equal(t, "RUN TEE", rows[0].Title)
	assert.Equal(t, "", rows[0].Price)
}

func TestSearchBrandFilter(t *testing.T) {
	ctx := context.Background()
	s := openSearcher(t)

	rows, ok, err := s.Search(ctx, "TEE /NIKE")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "NIKE", rows[0].Brand)
	assert.Equal(t, "RUN TEE (NIKE)", rows[0].Title)
	assert.Equal(t, "25.00", rows[0].Price)
}

func TestSearchCarriesSerialFilter(t *testing.T) {
	ctx := context.Background()
	s := openSearcher(t)

	rows, ok, err := s.Search(ctx, "TEE #100 /NIKE")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "%100%", rows[0].Serial)
}

func TestSearchBrandList(t *testing.T) {
	ctx := context.Background()
	s := openSearcher(t)

	rows, ok, err := s.Search(ctx, "/")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "ADIDAS", rows[0].Brand)
	assert.Equal(t, "NIKE", rows[1].Brand)
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	s := openSearcher(t)

	sel := catalog.Item{
		Brand: "NIKE", Title: "RUN TEE (NIKE)", Price: "25.00",
	}
	det, ok, err := s.Detail(ctx, sel)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, det.Rows, 2)
	assert.Equal(t, "1001", det.Rows[0].Serial)
	assert.Equal(t, "M", det.Rows[0].Size)
	assert.Equal(t, "1002", det.Rows[1].Serial)
	assert.Equal(t, "L", det.Rows[1].Size)
}

func TestState(t *testing.T) {
	ctx := context.Background()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDataDir(t.TempDir()),
	})
	seedDatabase(t, cfg.DatabasePath())

	s := iosearch.New(cfg)
	assert.Equal(t, catalog.Empty, s.State())

	require.NoError(t, s.Open(ctx))
	assert.Equal(t, catalog.Ready, s.State())

	// The searching substate ends with the query.
	_, ok, err := s.Search(ctx, "TEE")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, catalog.Ready, s.State())

	require.NoError(t, s.Close())
	assert.Equal(t, catalog.Empty, s.State())
}

func TestSearchNotOpen(t *testing.T) {
	ctx := context.Background()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDataDir(t.TempDir()),
	})

	s := iosearch.New(cfg)
	_, ok, err := s.Search(ctx, "TEE")
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestSwap(t *testing.T) {
	ctx := context.Background()
	s := openSearcher(t)

	// Build a replacement database with one more brand.
	importPath := filepath.Join(t.TempDir(), "import-next.sqlite")
	seedDatabase(t, importPath)
	db, err := sql.Open("sqlite", importPath)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		"insert into brand ( brand ) values ( ? )", "BROOKS")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		"insert into item ( serial, price, brandId, titleId, colorId, sizeId )"+
			" values ( ?, ?, ?, ?, ?, ? )", "3001", "120.00", 3, 1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	require.NoError(t, s.Swap(ctx, importPath))

	rows, ok, err := s.Search(ctx, "/")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, rows, 3)
	assert.Equal(t, "BROOKS", rows[1].Brand)
}
