// Package metadata builds the lookup tables that drive title
// normalization and brand resolution. The four feeds (aliases,
// title-hints, brand-hints, brand-marks) are parsed into one Tables
// value which is immutable for the remainder of a load.
package metadata

import (
	"strings"
)

// Tables holds the parsed metadata lookup tables plus the phrase-length
// bounds used by the bounded-window scanners.
type Tables struct {
	// Alias maps a phrase to its canonical replacement. An empty
	// replacement means "delete this phrase".
	Alias map[string]string

	// TitleHints marks words that justify keeping a dash-suffix.
	TitleHints map[string]bool

	// NotBrands holds phrases that resemble brand names but must be
	// excluded from brand extraction.
	NotBrands map[string]bool

	// BrandNames holds true brand names.
	BrandNames map[string]bool

	// BrandAlias maps an alias phrase to its brand.
	BrandAlias map[string]string

	// BrandMark maps a product-line mark phrase to its brand.
	BrandMark map[string]string

	// MaxAliasWords is the longest alias phrase, in words.
	MaxAliasWords int

	// MaxBrandWords is the longest brand or not-brand phrase, in words.
	MaxBrandWords int

	// MaxProductWords is the longest brand field of the brand-marks feed,
	// in words.
	MaxProductWords int
}

// New returns empty metadata tables.
func New() *Tables {
	return &Tables{
		Alias:      make(map[string]string),
		TitleHints: make(map[string]bool),
		NotBrands:  make(map[string]bool),
		BrandNames: make(map[string]bool),
		BrandAlias: make(map[string]string),
		BrandMark:  make(map[string]string),
	}
}

// ParseAliases reads the aliases feed: "canonical,phrase1,phrase2,...".
// A line starting with a comma has an empty canonical, which turns its
// phrases into deletions. Malformed lines are skipped.
func (t *Tables) ParseAliases(lines []string) {
	for _, raw := range lines {
		line := strings.ToUpper(strings.TrimSpace(raw))
		if line == "" || line[0] == '#' {
			continue
		}
		fields := splitCSV(line)
		canonical := ""
		if line[0] != ',' && len(fields) > 0 {
			canonical = fields[0]
			fields = fields[1:]
		}
		for _, phrase := range fields {
			if phrase == "" {
				continue
			}
			n := len(strings.Fields(phrase))
			if n > t.MaxAliasWords {
				t.MaxAliasWords = n
			}
			t.Alias[phrase] = canonical
		}
	}
}

// ParseTitleHints reads the title-hints feed: one token per line.
// Literal backslashes are stripped.
func (t *Tables) ParseTitleHints(lines []string) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		line = strings.ReplaceAll(line, `\`, "")
		line = strings.ToUpper(line)
		if line == "" || line[0] == '#' {
			continue
		}
		t.TitleHints[line] = true
	}
}

// ParseBrandHints reads the brand-hints feed: "brand,alias1,..." or
// "!notbrand,alias1,...". A leading '!' marks the first field as an
// excluded phrase whose aliases route to the not-brand's canonical
// spelling through the generic alias map.
func (t *Tables) ParseBrandHints(lines []string) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		line = strings.ReplaceAll(line, `"`, "")
		line = strings.ToUpper(line)
		if line == "" || line[0] == '#' {
			continue
		}
		fields := splitCSV(line)
		if len(fields) == 0 {
			continue
		}
		maybeBrand := fields[0]
		fields = fields[1:]
		numWords := len(strings.Fields(maybeBrand))
		if strings.HasPrefix(maybeBrand, "!") {
			maybeBrand = maybeBrand[1:]
			if maybeBrand == "" {
				continue
			}
			if numWords > t.MaxBrandWords {
				t.MaxBrandWords = numWords
			}
			t.NotBrands[maybeBrand] = true
			for _, alias := range fields {
				if alias == "" {
					continue
				}
				n := len(strings.Fields(alias))
				if n > t.MaxAliasWords {
					t.MaxAliasWords = n
				}
				t.Alias[alias] = maybeBrand
			}
			continue
		}
		if numWords > t.MaxBrandWords {
			t.MaxBrandWords = numWords
		}
		t.BrandNames[maybeBrand] = true
		for _, alias := range fields {
			if alias == "" {
				continue
			}
			t.BrandAlias[alias] = maybeBrand
		}
	}
}

// ParseBrandMarks reads the brand-marks feed: "brand,mark1,mark2,...".
// Each mark phrase maps to its brand.
func (t *Tables) ParseBrandMarks(lines []string) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		line = strings.ReplaceAll(line, `"`, "")
		line = strings.ToUpper(line)
		if line == "" || line[0] == '#' {
			continue
		}
		fields := splitCSV(line)
		if len(fields) == 0 {
			continue
		}
		brand := fields[0]
		if brand == "" {
			continue
		}
		numWords := len(strings.Fields(brand))
		if numWords > t.MaxProductWords {
			t.MaxProductWords = numWords
		}
		for _, mark := range fields[1:] {
			if mark == "" {
				continue
			}
			t.BrandMark[mark] = brand
		}
	}
}

// splitCSV splits a feed line on commas, trims surrounding whitespace
// from each field and drops empty fields.
func splitCSV(line string) []string {
	parts := strings.Split(line, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		res = append(res, p)
	}
	return res
}
