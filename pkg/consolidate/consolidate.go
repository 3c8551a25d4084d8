// Package consolidate folds raw catalog query rows into the minimal
// set of display rows. A blank brand or price on an output row means
// the row is ambiguous and should be drilled into with its remaining
// fields as filters.
package consolidate

import "github.com/sportdb/sportdb/pkg/catalog"

// Consolidate reduces an ordered result set in two passes. The first
// folds duplicate and ambiguous rows, blanking the price of a row that
// reappears with another price or brand. The second collapses
// consecutive rows that differ only in brand into one row carrying the
// stripped title.
func Consolidate(rows []catalog.Item) []catalog.Item {
	titleBrands := make(map[string]map[string]bool)
	for _, it := range rows {
		if titleBrands[it.Title] == nil {
			titleBrands[it.Title] = make(map[string]bool)
		}
		titleBrands[it.Title][it.Brand] = true
	}

	var folded []catalog.Item
	for _, it := range rows {
		if len(folded) > 0 {
			prev := &folded[len(folded)-1]
			if it.Brand == prev.Brand &&
				it.StrippedTitle() == prev.StrippedTitle() &&
				it.Price == prev.Price {
				continue
			}
			if it.Title == prev.Title {
				if it.Price != prev.Price {
					prev.Price = ""
					continue
				}
				if it.Brand != prev.Brand {
					prev.Price = ""
				}
				continue
			}
		}
		if len(titleBrands[it.Title]) > 1 {
			it.Brand = ""
			it.Price = ""
		}
		folded = append(folded, it)
	}

	var out []catalog.Item
	for _, it := range folded {
		stripped := it.StrippedTitle()
		if len(out) > 0 {
			prev := &out[len(out)-1]
			if it.Brand != prev.Brand && stripped == prev.StrippedTitle() {
				prev.Brand = ""
				prev.Title = stripped
				prev.Price = ""
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// Detail is the classified outcome of a drill-down query.
type Detail struct {
	Rows []catalog.Item

	// Distinct values present in the raw rows, in encounter order.
	Brands []string
	Prices []string
	Colors []string

	// Color is the pinned color: either carried in from the selected
	// row or set once the rows narrow to a single color.
	Color string
}

// DrillDown classifies the ordered rows of a detail query for the
// selected search row. More than one brand collapses to one row per
// brand with the stripped title; more than one price to one row per
// price; more than one color to one row per color unless a color is
// already pinned. Otherwise the full rows come through at serial and
// size granularity.
func DrillDown(search catalog.Item, rows []catalog.Item) Detail {
	d := Detail{Color: search.Color}

	var prevBrand, prevPrice, prevColor string
	for i, it := range rows {
		if i == 0 || it.Brand != prevBrand {
			d.Brands = append(d.Brands, it.Brand)
		}
		prevBrand = it.Brand
		if i == 0 || it.Price != prevPrice {
			d.Prices = append(d.Prices, it.Price)
		}
		prevPrice = it.Price
		if i == 0 || it.Color != prevColor {
			d.Colors = append(d.Colors, it.Color)
		}
		prevColor = it.Color
	}

	prevBrand, prevPrice, prevColor = "", "", ""
	for i, it := range rows {
		brand, price, color := it.Brand, it.Price, it.Color
		switch {
		case len(d.Brands) > 1:
			it.Title = it.StrippedTitle()
			it.Price = ""
			it.Color = ""
			it.Size = ""
			if i == 0 || brand != prevBrand {
				it.Serial = search.Serial
				d.Rows = append(d.Rows, it)
			}
		case len(d.Prices) > 1:
			it.Color = ""
			it.Size = ""
			if price != prevPrice {
				it.Serial = search.Serial
				d.Rows = append(d.Rows, it)
			}
		case len(d.Colors) > 1:
			if color == d.Color {
				it.Serial = search.Serial
				d.Rows = append(d.Rows, it)
			} else if d.Color == "" && color != prevColor {
				it.Serial = search.Serial
				d.Rows = append(d.Rows, it)
			}
		default:
			d.Color = color
			d.Rows = append(d.Rows, it)
		}
		prevBrand, prevPrice, prevColor = brand, price, color
	}
	return d
}
