package iofeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportdb/sportdb/internal/iofeed"
)

func TestFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("serial,title\n1001,NIKE TEE\n"))
		}))
	defer srv.Close()

	f := iofeed.New()
	data, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "serial,title\n1001,NIKE TEE\n", string(data))
}

func TestFetchHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
	defer srv.Close()

	f := iofeed.New()
	_, err := f.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("1001,TEE\n"), 0644))

	f := iofeed.New()
	data, err := f.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "1001,TEE\n", string(data))

	_, err = f.Fetch(context.Background(), path+".missing")
	assert.Error(t, err)
}

func TestLoadSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	content := `catalog: ./catalog.csv
aliases: ./aliases.csv
title_hints: ./title-hints.csv
brand_hints: ./brand-hints.csv
brand_marks: ./brand-marks.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	set, err := iofeed.LoadSet(path)
	require.NoError(t, err)
	assert.Equal(t, "./catalog.csv", set.Catalog)

	_, err = iofeed.LoadSet(path + ".missing")
	assert.Error(t, err)
}
