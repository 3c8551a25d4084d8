// Package feeds defines the schema for feeds.yaml, which names the
// five data feeds a catalog build needs: the inventory CSV and the
// four metadata feeds that drive normalization. Each entry is either
// an HTTP(S) URL or a local file path.
package feeds

import (
	"errors"
	"strings"

	"github.com/gnames/gn"
	"gopkg.in/yaml.v3"

	"github.com/sportdb/sportdb/pkg/errcode"
)

// FeedSet is the parsed feeds.yaml file.
type FeedSet struct {
	// Catalog is the inventory CSV feed.
	Catalog string `yaml:"catalog"`

	// Aliases is the token-substitution feed.
	Aliases string `yaml:"aliases"`

	// TitleHints marks tokens that belong to titles rather than
	// brand names.
	TitleHints string `yaml:"title_hints"`

	// BrandHints lists brand names, their aliases, and excluded
	// phrases.
	BrandHints string `yaml:"brand_hints"`

	// BrandMarks maps product-line marks to their brands.
	BrandMarks string `yaml:"brand_marks"`
}

// Parse decodes feeds.yaml content and validates it.
func Parse(data []byte) (*FeedSet, error) {
	var fs FeedSet
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, &gn.Error{
			Code: errcode.FeedSetReadError,
			Msg:  "Cannot parse feed set",
			Err:  err,
		}
	}
	if err := fs.Validate(); err != nil {
		return nil, err
	}
	return &fs, nil
}

// Validate checks that every feed is present.
func (fs *FeedSet) Validate() error {
	missing := fs.missing()
	if len(missing) == 0 {
		return nil
	}
	return &gn.Error{
		Code: errcode.FeedSetValidationError,
		Msg:  "Feed set is missing <em>%s</em>",
		Vars: []any{strings.Join(missing, ", ")},
		Err:  errors.New("incomplete feed set"),
	}
}

func (fs *FeedSet) missing() []string {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"catalog", fs.Catalog},
		{"aliases", fs.Aliases},
		{"title_hints", fs.TitleHints},
		{"brand_hints", fs.BrandHints},
		{"brand_marks", fs.BrandMarks},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
