package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportdb/sportdb/pkg/catalog"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state catalog.State
		want  string
	}{
		{catalog.Empty, "empty"},
		{catalog.Failed, "failed"},
		{catalog.Fetching, "fetching"},
		{catalog.Loading, "loading"},
		{catalog.Indexing, "indexing"},
		{catalog.Ready, "ready"},
		{catalog.Searching, "searching"},
		{catalog.State(42), "unknown"},
	}
	for _, v := range tests {
		assert.Equal(t, v.want, v.state.String())
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		msg     string
		color   string
		want    string
		numeric string
	}{
		{"plain name passes through", "RED", "RED", ""},
		{"digit gains a color name", "2", "BROWN.2", "2"},
		{"digit prefix keeps the raw token", "6HTR", "RED.6HTR", "6"},
		{"zero maps to black", "0", "BLACK.0", "0"},
		{"empty stays empty", "", "", ""},
	}
	for _, v := range tests {
		name, numeric := catalog.NormalizeColor(v.color)
		assert.Equal(t, v.want, name, v.msg)
		assert.Equal(t, v.numeric, numeric, v.msg)
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"80", "80.00"},
		{"80.5", "80.50"},
		{"80.55", "80.55"},
		{"", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.want, catalog.Currency(v.price))
	}
}

func TestStrippedTitle(t *testing.T) {
	tests := []struct {
		msg   string
		title string
		want  string
	}{
		{
			msg:   "removes the brand annotation",
			title: "RUN TEE (NIKE)",
			want:  "RUN TEE",
		},
		{
			msg:   "keeps titles without a trailing parenthetical",
			title: "RUN TEE",
			want:  "RUN TEE",
		},
		{
			msg:   "strips the closer of an inner parenthetical too",
			title: "TEE (RED) (NIKE)",
			want:  "TEE (RED",
		},
	}
	for _, v := range tests {
		it := catalog.Item{Title: v.title}
		assert.Equal(t, v.want, it.StrippedTitle(), v.msg)
	}
}
