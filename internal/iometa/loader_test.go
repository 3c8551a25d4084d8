package iometa_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportdb/sportdb/internal/iometa"
	"github.com/sportdb/sportdb/pkg/feeds"
)

type fakeFetcher map[string][]byte

func (f fakeFetcher) Fetch(
	_ context.Context, source string,
) ([]byte, error) {
	data, ok := f[source]
	if !ok {
		return nil, errors.New("unknown source: " + source)
	}
	return data, nil
}

func testSet() *feeds.FeedSet {
	return &feeds.FeedSet{
		Catalog:    "catalog",
		Aliases:    "aliases",
		TitleHints: "title-hints",
		BrandHints: "brand-hints",
		BrandMarks: "brand-marks",
	}
}

func TestLoad(t *testing.T) {
	fetcher := fakeFetcher{
		"aliases":     []byte("PANT,PNT\r\n,LOGO\r\n"),
		"title-hints": []byte("ZIP\nWOOL\n"),
		"brand-hints": []byte("NIKE,NIKE INC\n!TEAM USA\n"),
		"brand-marks": []byte("NIKE,DRI-FIT\n"),
	}

	tables, err := iometa.Load(context.Background(), fetcher, testSet(), 2)
	require.NoError(t, err)

	assert.Equal(t, "PANT", tables.Alias["PNT"])
	assert.Equal(t, "", tables.Alias["LOGO"])
	assert.True(t, tables.TitleHints["ZIP"])
	assert.True(t, tables.BrandNames["NIKE"])
	assert.Equal(t, "NIKE", tables.BrandAlias["NIKE INC"])
	assert.True(t, tables.NotBrands["TEAM USA"])
	assert.Equal(t, "NIKE", tables.BrandMark["DRI-FIT"])
}

func TestLoadFetchFailure(t *testing.T) {
	fetcher := fakeFetcher{
		"aliases":     []byte(""),
		"title-hints": []byte(""),
		"brand-marks": []byte(""),
	}

	_, err := iometa.Load(context.Background(), fetcher, testSet(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brand-hints")
}
