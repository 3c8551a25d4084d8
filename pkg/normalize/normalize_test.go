package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportdb/sportdb/pkg/metadata"
	"github.com/sportdb/sportdb/pkg/normalize"
)

func testTables() *metadata.Tables {
	tables := metadata.New()
	tables.ParseAliases([]string{
		"PANT,PNT,PNTS",
		"QUARTER ZIP,1/4 ZIP FRONT",
		",LOGO,NWT",
	})
	tables.ParseTitleHints([]string{
		"ZIP",
		"WOOL",
	})
	tables.ParseBrandHints([]string{
		"NIKE,NIKE INC",
		"UNDER ARMOUR,UA",
		"ADIDAS",
		"!TEAM USA",
	})
	tables.ParseBrandMarks([]string{
		"NIKE,DRI-FIT",
		"UNDER ARMOUR,HEATGEAR",
	})
	return tables
}

func TestNormalize(t *testing.T) {
	norm := normalize.New(testTables())

	tests := []struct {
		msg   string
		title string
		want  string
	}{
		{
			msg:   "uppercases and trims",
			title: "  mens run tee ",
			want:  "MENS RUN TEE",
		},
		{
			msg:   "drops color annotation after dash",
			title: "MOCK NECK-GREY HTR",
			want:  "MOCK NECK",
		},
		{
			msg:   "keeps dash suffix led by a title hint",
			title: "SOCKS-WOOL BLEND",
			want:  "SOCKS-WOOL BLEND",
		},
		{
			msg:   "substitutes single-word alias",
			title: "MENS PNT-BLK",
			want:  "MENS PANT",
		},
		{
			msg:   "substitutes multi-word alias",
			title: "HOODIE 1/4 ZIP FRONT",
			want:  "HOODIE QUARTER ZIP",
		},
		{
			msg:   "deletes phrases with empty canonical",
			title: "RUN TEE LOGO",
			want:  "RUN TEE",
		},
		{
			msg:   "appends ZIP after fraction suffix",
			title: "HOODIE 1/2",
			want:  "HOODIE 1/2 ZIP",
		},
		{
			msg:   "drops toddler size suffix",
			title: "TEE 2T",
			want:  "TEE",
		},
		{
			msg:   "drops age range suffix",
			title: "SHORT 4/7",
			want:  "SHORT",
		},
		{
			msg:   "strips dangling slashes",
			title: "TEE RED/",
			want:  "TEE RED",
		},
		{
			msg:   "empty input stays empty",
			title: "",
			want:  "",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, norm.Normalize(v.title), v.msg)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	norm := normalize.New(testTables())

	titles := []string{
		"MENS PNT-BLK",
		"HOODIE 1/4 ZIP FRONT",
		"MOCK NECK-GREY HTR",
		"RUN TEE LOGO",
	}
	for _, title := range titles {
		once := norm.Normalize(title)
		assert.Equal(t, once, norm.Normalize(once), title)
	}
}

func TestResolveBrands(t *testing.T) {
	norm := normalize.New(testTables())

	tests := []struct {
		msg    string
		title  string
		brands []string
		want   string
	}{
		{
			msg:    "extracts a leading brand",
			title:  "NIKE RUN TEE",
			brands: []string{"NIKE"},
			want:   "RUN TEE",
		},
		{
			msg:    "extracts a trailing brand",
			title:  "RUN TEE ADIDAS",
			brands: []string{"ADIDAS"},
			want:   "RUN TEE",
		},
		{
			msg:    "expands an alias before matching",
			title:  "UA MENS TEE",
			brands: []string{"UNDER ARMOUR"},
			want:   "MENS TEE",
		},
		{
			msg:    "expands a multi-word alias",
			title:  "NIKE INC RUN SHORT",
			brands: []string{"NIKE"},
			want:   "RUN SHORT",
		},
		{
			msg:    "collects several brands",
			title:  "NIKE ADIDAS TEE",
			brands: []string{"ADIDAS", "NIKE"},
			want:   "TEE",
		},
		{
			msg:    "excluded phrase yields no brand",
			title:  "TEAM USA JERSEY",
			brands: []string{"?"},
			want:   "TEAM USA JERSEY",
		},
		{
			msg:    "no match falls back to unknown",
			title:  "RUN TEE",
			brands: []string{"?"},
			want:   "RUN TEE",
		},
	}

	for _, v := range tests {
		res := norm.ResolveBrands(v.title)
		assert.Equal(t, v.brands, res.Brands, v.msg)
		assert.Equal(t, v.want, res.Title, v.msg)
	}
}

func TestResolveBrandMarks(t *testing.T) {
	norm := normalize.New(testTables())

	res := norm.ResolveBrands("DRI-FIT TEE")
	assert.Equal(t, []string{"NIKE"}, res.Brands)
	assert.Equal(t, "TEE", res.Title)
	assert.Equal(t, "DRI-FIT", res.Marks["NIKE"])

	// A mark and the brand name together yield one brand.
	res = norm.ResolveBrands("NIKE DRI-FIT TEE")
	assert.Equal(t, []string{"NIKE"}, res.Brands)
	assert.Equal(t, "TEE", res.Title)
}
