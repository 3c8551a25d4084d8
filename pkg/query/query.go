// Package query turns a free-text search string into a parameterized
// SQL statement over the catalog schema. All user terms are bound as
// parameters, never spliced into the statement text.
package query

import "strings"

const (
	brandListSQL = "select brand from item" +
		" join brand on brandId = brand.id" +
		" group by brandId order by brand"

	searchSQL = "select brand, title, price, serial from item" +
		" join title on titleId = title.id" +
		" join brand on brandId = brand.id"

	searchSuffix = " group by brandId, titleId, price" +
		" order by title, brand, price"
)

// Query is a ready-to-run search statement.
type Query struct {
	SQL  string
	Args []string

	// ListBrands marks the "/" mode: one row per brand name.
	ListBrands bool

	// Brand and Serial keep the bound filter patterns so result rows
	// can carry them into drill-down.
	Brand  string
	Serial string
}

// Build classifies each term of the search input and assembles the
// statement. "*" matches everything, "/" lists brands. A trailing
// space switches the final term to whole-word matching and any brand
// filter to exact equality.
func Build(input string) Query {
	trailing := strings.HasSuffix(input, " ") &&
		!strings.HasPrefix(input, "#")
	stripped := strings.ToUpper(strings.TrimSpace(input))
	if stripped == "*" {
		stripped = ""
	}
	if stripped == "/" {
		return Query{SQL: brandListSQL, ListBrands: true}
	}

	var (
		patterns     []string
		brand        string
		serial       string
		mens         string
		trailingWord string
	)
	tokens := strings.Fields(stripped)
	for i, tok := range tokens {
		// A backslash marks an escaped space inside a term.
		tok = strings.ReplaceAll(tok, `\`, " ")
		if tok == "VNECK" {
			tok = "V-NECK"
		}
		switch tok {
		case "MEN", "MENS", "MEN’S", "MENS’":
			// Anchored so "WOMEN'S" titles do not match.
			mens = "MEN’S %"
			continue
		case "WOMEN", "WOMENS", "WOMENS’":
			tok = "WOMEN’S"
		case "BOY", "BOYS", "BOYS’":
			tok = "BOY’S"
		case "GIRL", "GIRLS", "GIRLS’":
			tok = "GIRL’S"
		}
		if trailing && i == len(tokens)-1 {
			if strings.HasPrefix(tok, "/") {
				brand = tok[1:]
				continue
			}
			trailingWord = tok
			continue
		}
		if strings.HasPrefix(tok, "/") {
			brand = tok[1:] + "%"
			continue
		}
		if strings.HasPrefix(tok, "#") {
			serial = "%" + tok[1:] + "%"
			continue
		}
		patterns = append(patterns, "%"+tok+"%")
	}

	var clauses []string
	var args []string
	for _, p := range patterns {
		clauses = append(clauses, "title like ?")
		args = append(args, plainQuotes(p))
	}
	if mens != "" {
		clauses = append(clauses, "(title like ? or title like ?)")
		args = append(args, plainQuotes(mens), plainQuotes(" "+mens))
	}
	if trailingWord != "" {
		clauses = append(clauses,
			"(title like ? or title like ? or title like ?)")
		args = append(args,
			plainQuotes(trailingWord+" %"),
			plainQuotes("% "+trailingWord+" %"),
			plainQuotes("% "+trailingWord),
		)
	}
	if brand != "" {
		op := "like"
		if trailing {
			op = "="
		}
		clauses = append(clauses, "brand "+op+" ?")
		args = append(args, brand)
	}
	if serial != "" {
		clauses = append(clauses, "serial like ?")
		args = append(args, serial)
	}

	sql := searchSQL
	if len(clauses) > 0 {
		sql += " where " + strings.Join(clauses, " and ")
	}
	sql += searchSuffix
	return Query{SQL: sql, Args: args, Brand: brand, Serial: serial}
}

// plainQuotes folds smart quotes to an ASCII apostrophe so bound
// patterns match the stored titles.
func plainQuotes(s string) string {
	s = strings.ReplaceAll(s, "”", "'")
	return strings.ReplaceAll(s, "’", "'")
}
