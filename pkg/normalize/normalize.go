// Package normalize turns noisy free-text product titles into canonical
// display titles and extracts brand information from them. Both
// transforms are pure functions of the metadata tables built once per
// load.
package normalize

import (
	"strings"

	"github.com/sportdb/sportdb/pkg/metadata"
)

// Normalizer applies the metadata-driven title transforms.
type Normalizer struct {
	meta *metadata.Tables
}

// New creates a Normalizer over the given metadata tables.
func New(meta *metadata.Tables) *Normalizer {
	return &Normalizer{meta: meta}
}

// Normalize converts a raw title field into its canonical display form:
// dash-suffix trimming, bounded-window alias substitution, then the
// suffix rewrite table. The input is uppercased and trimmed first, so
// the result is a pure function of the metadata tables.
func (n *Normalizer) Normalize(raw string) string {
	title := strings.ToUpper(strings.TrimSpace(raw))
	title = n.trimDashSuffix(title)
	title = n.substituteAliases(title)
	return rewriteSuffix(title)
}

// trimDashSuffix decides whether the final dash-separated segment of the
// title is extraneous annotation. The segment survives only when its
// first word is a title hint or a brand-alias key; a segment starting
// with whitespace is left alone. Doubled single quotes become one double
// quote before splitting.
func (n *Normalizer) trimDashSuffix(title string) string {
	fixed := strings.ReplaceAll(strings.TrimSpace(title), "''", `"`)
	parts := splitNonEmpty(fixed, "-")
	if len(parts) <= 1 {
		return stripTrailing(fixed, '-')
	}
	last := parts[len(parts)-1]
	if last[0] == ' ' || last[0] == '\t' {
		return stripTrailing(fixed, '-')
	}
	firstWord := strings.Fields(last)[0]
	_, isBrandAlias := n.meta.BrandAlias[firstWord]
	if !n.meta.TitleHints[firstWord] && !isBrandAlias {
		kept := strings.Join(parts[:len(parts)-1], "-")
		return stripTrailing(strings.TrimSpace(kept), '-')
	}
	return stripTrailing(strings.TrimSpace(strings.Join(parts, "-")), '-')
}

// substituteAliases scans words left to right, trying window lengths
// from MaxAliasWords down to one. Not-brand phrases pass through
// verbatim; alias phrases are replaced by their canonical form, which
// may be empty (deletion); single words fall through unchanged.
func (n *Normalizer) substituteAliases(title string) string {
	words := strings.Fields(title)
	max := n.meta.MaxAliasWords
	if max < 1 {
		max = 1
	}
	var out []string
	i := 0
	for i < len(words) {
		for l := max; l >= 1; l-- {
			if i+l > len(words) {
				continue
			}
			phrase := strings.Join(words[i:i+l], " ")
			if n.meta.NotBrands[phrase] {
				out = append(out, phrase)
				i += l
				break
			}
			if alias, ok := n.meta.Alias[phrase]; ok {
				if alias != "" {
					out = append(out, alias)
				}
				i += l
				break
			}
			if l == 1 {
				out = append(out, phrase)
				i++
			}
		}
	}
	res := strings.Join(out, " ")
	if strings.HasSuffix(res, "-") {
		res = res[:len(res)-1]
	}
	return res
}

// suffixRules drive the final rewrite: the first matching suffix either
// appends text or drops a fixed number of trailing characters.
var suffixRules = []struct {
	suffixes []string
	appendix string
	drop     int
}{
	{suffixes: []string{" 1/4", " 1/2", " 3/4"}, appendix: " ZIP"},
	{suffixes: []string{"2T"}, drop: 2},
	{suffixes: []string{"4/7", "46X"}, drop: 3},
	{suffixes: []string{"2T/4"}, drop: 4},
	{suffixes: []string{"2T/4T", "1224M"}, drop: 5},
}

// rewriteSuffix applies the first matching suffix rule, then strips
// dangling trailing slashes per word.
func rewriteSuffix(title string) string {
rules:
	for _, rule := range suffixRules {
		for _, suffix := range rule.suffixes {
			if strings.HasSuffix(title, suffix) {
				if rule.appendix != "" {
					title += rule.appendix
				} else {
					title = title[:len(title)-rule.drop]
				}
				break rules
			}
		}
	}
	return stripTrailing(title, '/')
}

// stripTrailing removes trailing occurrences of c from every word,
// drops words that become empty and rejoins with single spaces.
func stripTrailing(title string, c byte) string {
	words := strings.Fields(title)
	var out []string
	for _, word := range words {
		for len(word) > 0 && word[len(word)-1] == c {
			word = word[:len(word)-1]
		}
		if word == "" {
			continue
		}
		out = append(out, word)
	}
	return strings.Join(out, " ")
}

// splitNonEmpty splits on sep and drops empty segments, matching the
// way shortened segments collapse during dash trimming.
func splitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	res := parts[:0]
	for _, p := range parts {
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
