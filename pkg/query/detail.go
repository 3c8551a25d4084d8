package query

import (
	"strings"

	"github.com/sportdb/sportdb/pkg/catalog"
)

const detailSQL = "select brand, title, serial, price, color, size from item" +
	" join brand on brandId = brand.id" +
	" join title on titleId = title.id" +
	" join color on colorId = color.id" +
	" join size on sizeId = size.id"

// BuildDetail builds the drill-down statement for a selected result
// row. A blank price means the selection was ambiguous: the title
// matches as a prefix and the other known fields constrain further.
// With a price pinned the title and price match exactly.
func BuildDetail(sel catalog.Item) Query {
	var clauses []string
	var args []string

	if sel.Price == "" {
		if sel.Brand != "" {
			clauses = append(clauses, "brand = ?")
			args = append(args, sel.Brand)
		}
		clauses = append(clauses, "title like ?")
		args = append(args, sel.Title+"%")
		if sel.Serial != "" {
			clauses = append(clauses, "serial like ?")
			args = append(args, sel.Serial)
		}
		return Query{
			SQL: detailSQL +
				" where " + strings.Join(clauses, " and ") +
				" order by brand, title, price, color, sizeId, serial",
			Args:   args,
			Brand:  sel.Brand,
			Serial: sel.Serial,
		}
	}

	if sel.Brand != "" {
		clauses = append(clauses, "brand = ?")
		args = append(args, sel.Brand)
	}
	if sel.Color != "" {
		clauses = append(clauses, "color = ?")
		args = append(args, sel.Color)
	}
	if sel.Serial != "" {
		clauses = append(clauses, "serial like ?")
		args = append(args, sel.Serial)
	}
	clauses = append(clauses, "title = ?", "price = ?")
	args = append(args, sel.Title, sel.Price)
	return Query{
		SQL: detailSQL +
			" where " + strings.Join(clauses, " and ") +
			" order by brand, colorId, sizeId, serial",
		Args:   args,
		Brand:  sel.Brand,
		Serial: sel.Serial,
	}
}
