// Package iometa fetches the four metadata feeds and builds the
// lookup tables for a load. The feeds download concurrently; parsing
// runs after the barrier so the tables never see concurrent writes.
package iometa

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sportdb/sportdb/pkg/feeds"
	"github.com/sportdb/sportdb/pkg/metadata"
)

// Load downloads the aliases, title-hints, brand-hints and brand-marks
// feeds and parses them into one immutable Tables value. At most jobs
// fetches run at once. The first fetch failure fails the whole load.
func Load(
	ctx context.Context,
	f feeds.Fetcher,
	set *feeds.FeedSet,
	jobs int,
) (*metadata.Tables, error) {
	var aliases, titleHints, brandHints, brandMarks []byte

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	g.Go(func() (err error) {
		aliases, err = f.Fetch(ctx, set.Aliases)
		return err
	})
	g.Go(func() (err error) {
		titleHints, err = f.Fetch(ctx, set.TitleHints)
		return err
	})
	g.Go(func() (err error) {
		brandHints, err = f.Fetch(ctx, set.BrandHints)
		return err
	})
	g.Go(func() (err error) {
		brandMarks, err = f.Fetch(ctx, set.BrandMarks)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The aliases and brand-hints parsers both write the alias map,
	// so parsing stays sequential.
	t := metadata.New()
	t.ParseAliases(lines(aliases))
	t.ParseTitleHints(lines(titleHints))
	t.ParseBrandHints(lines(brandHints))
	t.ParseBrandMarks(lines(brandMarks))
	return t, nil
}

func lines(data []byte) []string {
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
}
