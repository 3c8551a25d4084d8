package normalize

import (
	"sort"
	"strings"

	"github.com/sportdb/sportdb/pkg/catalog"
)

// Resolution is the outcome of brand extraction: the brands found in a
// title, the title with brand and mark phrases removed, and the mark
// phrase recorded for each brand discovered through a product-line mark.
type Resolution struct {
	// Brands is sorted ascending so downstream insertion order is
	// deterministic. Never empty: {"?"} when nothing matched.
	Brands []string

	// Title is the working title after brand and mark removal.
	Title string

	// Marks maps brand to the mark phrase that identified it.
	Marks map[string]string
}

// ResolveBrands scans the normalized title with a bounded window,
// substituting brand aliases in place, stripping brand names and mark
// phrases out of the title and accumulating the brand set.
//
// Within one window pass the candidate phrase is first rewritten by the
// brand-alias map (or recorded and removed as a mark), and the rewritten
// candidate is then checked against the brand-name and not-brand sets.
// Positions rewind after a removal so phrases that straddle the removed
// text are still seen; the rewind floors at zero.
func (n *Normalizer) ResolveBrands(title string) Resolution {
	brands := make(map[string]bool)
	marks := make(map[string]string)
	words := strings.Fields(title)
	max := n.meta.MaxBrandWords
	if max < 1 {
		max = 1
	}

	i := 0
	for i < len(words) {
		moved := false
		for l := max; l >= 1; l-- {
			if i+l > len(words) {
				continue
			}
			cand := strings.Join(words[i:i+l], " ")
			if alias, ok := n.meta.BrandAlias[cand]; ok {
				title = replacePhrase(title, cand, alias)
				words = strings.Fields(title)
				i += len(strings.Fields(alias)) - l + 1
				if i < 0 {
					i = 0
				}
				cand = alias
				moved = true
			} else if brand, ok := n.meta.BrandMark[cand]; ok {
				marks[brand] = cand
				title = removePhrase(title, cand)
				words = strings.Fields(title)
				i -= l
				if i < 0 {
					i = 0
				}
				moved = true
			}
			candWords := len(strings.Fields(cand))
			if n.meta.BrandNames[cand] {
				title = removePhrase(title, cand)
				words = strings.Fields(title)
				i -= candWords
				if i < 0 {
					i = 0
				}
				brands[cand] = true
				moved = true
				break
			}
			if n.meta.NotBrands[cand] {
				// Skip the whole excluded phrase.
				i += candWords
				moved = true
				break
			}
			if candWords == 1 {
				i++
				moved = true
			}
		}
		if !moved {
			i++
		}
	}

	// Brands identified by a mark count even without a name match.
	for brand := range marks {
		brands[brand] = true
	}
	if len(brands) == 0 {
		brands[catalog.UnknownBrand] = true
	}

	sorted := make([]string, 0, len(brands))
	for brand := range brands {
		sorted = append(sorted, brand)
	}
	sort.Strings(sorted)

	return Resolution{Brands: sorted, Title: title, Marks: marks}
}

// replacePhrase substitutes every word-aligned occurrence of phrase
// inside title.
func replacePhrase(title, phrase, repl string) string {
	padded := " " + title + " "
	padded = strings.ReplaceAll(padded, " "+phrase+" ", " "+repl+" ")
	return strings.Join(strings.Fields(padded), " ")
}

// removePhrase deletes every word-aligned occurrence of phrase from
// title.
func removePhrase(title, phrase string) string {
	return replacePhrase(title, phrase, "")
}
