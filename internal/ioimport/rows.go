package ioimport

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/sportdb/sportdb/pkg/catalog"
	"github.com/sportdb/sportdb/pkg/metadata"
	"github.com/sportdb/sportdb/pkg/normalize"
)

type loadStats struct {
	rows     int
	items    int
	rejected int
}

type insertStmts struct {
	item  *sql.Stmt
	brand *sql.Stmt
	title *sql.Stmt
	color *sql.Stmt
	size  *sql.Stmt
}

func (s *insertStmts) close() {
	for _, stmt := range []*sql.Stmt{
		s.item, s.brand, s.title, s.color, s.size,
	} {
		if stmt != nil {
			stmt.Close()
		}
	}
}

// loadRows imports every catalog row inside one explicit transaction.
// Index creation happens afterward, outside any transaction.
func (im *importer) loadRows(
	ctx context.Context,
	db *sql.DB,
	tables *metadata.Tables,
	rows []string,
) (loadStats, error) {
	var stats loadStats
	norm := normalize.New(tables)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return stats, beginError(err)
	}
	defer tx.Rollback()

	stmts, err := prepareInserts(ctx, tx)
	if err != nil {
		return stats, err
	}
	defer stmts.close()

	cache := newImportCache()
	bar := pb.Full.Start(len(rows))
	bar.Set("prefix", "Loading catalog: ")
	bar.Set(pb.CleanOnFinish, true)

	every := im.cfg.Import.ProgressEvery
	if every <= 0 {
		every = 1000
	}
	for i, line := range rows {
		if err := im.importRow(ctx, line, norm, stmts, cache, &stats); err != nil {
			bar.Finish()
			return stats, err
		}
		stats.rows++
		bar.Increment()
		if (i+1)%every == 0 {
			im.notify()
		}
	}
	bar.Finish()

	if err := tx.Commit(); err != nil {
		return stats, commitError(err)
	}
	return stats, nil
}

func prepareInserts(ctx context.Context, tx *sql.Tx) (*insertStmts, error) {
	var s insertStmts
	for _, p := range []struct {
		dst **sql.Stmt
		sql string
	}{
		{&s.item, "insert into item ( serial, price, brandId, titleId, colorId, sizeId ) values ( ?, ?, ?, ?, ?, ? )"},
		{&s.brand, "insert into brand ( brand ) values ( ? )"},
		{&s.title, "insert into title ( title ) values ( ? )"},
		{&s.color, "insert into color ( color, numeric ) values ( ?, ? )"},
		{&s.size, "insert into size ( size ) values ( ? )"},
	} {
		stmt, err := tx.PrepareContext(ctx, p.sql)
		if err != nil {
			s.close()
			return nil, prepareError(p.sql, err)
		}
		*p.dst = stmt
	}
	return &s, nil
}

// importRow normalizes one catalog row and inserts one item per
// resolved brand, guarded by the dedup caches.
func (im *importer) importRow(
	ctx context.Context,
	line string,
	norm *normalize.Normalizer,
	stmts *insertStmts,
	cache *importCache,
	stats *loadStats,
) error {
	fields := strings.Split(strings.ToUpper(line), ",")
	if len(fields) < 6 {
		slog.Warn("Skipping short catalog row", "line", line)
		return nil
	}
	serial := fields[0]
	title := norm.Normalize(fields[1])

	listPrice, errList := strconv.ParseFloat(fields[2], 64)
	salePrice, errSale := strconv.ParseFloat(fields[3], 64)
	if errList != nil || errSale != nil {
		slog.Warn("Skipping row with unparsable price", "line", line)
		return nil
	}
	// Bad feed rows carry the discount in the wrong column; the list
	// field wins whenever the sale field undercuts it.
	price := fields[3]
	if salePrice < listPrice {
		price = fields[2]
	}
	// Stored in display form so drill-down can match on equality.
	price = catalog.Currency(price)

	colorField := strings.Fields(fields[4])
	colorTok := ""
	if len(colorField) > 0 {
		colorTok = colorField[0]
	}
	color, numeric := catalog.NormalizeColor(colorTok)
	size := strings.ReplaceAll(fields[5], "\n", "")

	preKey := dedupKey(title, price, color, size)
	if _, ok := cache.itemIDs[preKey]; ok {
		return nil
	}
	if cache.itemKeys[preKey] {
		return nil
	}

	colorID, err := insertID(ctx, stmts.color, cache.colorIDs, color,
		color, numeric)
	if err != nil {
		return insertError("color", err)
	}
	sizeID, err := insertID(ctx, stmts.size, cache.sizeIDs, size, size)
	if err != nil {
		return insertError("size", err)
	}

	res := norm.ResolveBrands(title)
	for _, brand := range res.Brands {
		brandID, err := insertID(ctx, stmts.brand, cache.brandIDs, brand,
			brand)
		if err != nil {
			return insertError("brand", err)
		}

		brandedTitle := res.Title
		mark, hasMark := res.Marks[brand]
		if hasMark {
			brandedTitle = strings.TrimSpace(mark + " " + res.Title)
		}
		if invalidTitle(brandedTitle, hasMark) {
			slog.Warn("Rejecting row with invalid title",
				"title", brandedTitle, "line", line)
			stats.rejected++
			continue
		}
		if brand != catalog.UnknownBrand {
			brandedTitle += " (" + brand + ")"
		}

		titleID, err := insertID(ctx, stmts.title, cache.titleIDs,
			brandedTitle, brandedTitle)
		if err != nil {
			return insertError("title", err)
		}

		key := dedupKey(brandedTitle, price, color, size)
		if _, ok := cache.itemIDs[key]; ok {
			continue
		}
		if cache.itemKeys[key] {
			continue
		}
		resItem, err := stmts.item.ExecContext(ctx,
			serial, price, brandID, titleID, colorID, sizeID)
		if err != nil {
			return insertError("item", err)
		}
		itemID, err := resItem.LastInsertId()
		if err != nil {
			return insertError("item", err)
		}
		cache.itemIDs[key] = itemID
		cache.itemKeys[key] = true
		stats.items++
	}
	return nil
}

// insertID returns the cached row id for key or inserts a new row and
// caches its id.
func insertID(
	ctx context.Context,
	stmt *sql.Stmt,
	cache map[string]int64,
	key string,
	args ...any,
) (int64, error) {
	if id, ok := cache[key]; ok {
		return id, nil
	}
	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	cache[key] = id
	return id, nil
}

// invalidTitle rejects composed titles that carry no product text: a
// bare numeric value ("INFINITY" is a real product line and passes),
// a fraction of two numeric parts, or nothing at all without a mark.
func invalidTitle(title string, hasMark bool) bool {
	if title == "" {
		return !hasMark
	}
	if title != "INFINITY" {
		if _, err := strconv.ParseFloat(title, 64); err == nil {
			return true
		}
	}
	parts := strings.Split(title, "/")
	if len(parts) == 2 {
		_, err1 := strconv.ParseFloat(parts[0], 64)
		_, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 == nil && err2 == nil {
			return true
		}
	}
	return false
}
