// Package iofeed fetches catalog and metadata feeds over HTTP or from
// the local file system.
package iofeed

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sportdb/sportdb/pkg/feeds"
)

type fetcher struct {
	client *http.Client
}

// New creates a feed fetcher.
func New() feeds.Fetcher {
	return &fetcher{
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

func (f *fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://") {
		return f.fetchHTTP(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fetchError(source, err)
	}
	return data, nil
}

func (f *fetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fetchError(url, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fetchError(url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, httpStatusError(url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fetchError(url, err)
	}
	return data, nil
}

// LoadSet reads and validates a feeds.yaml file.
func LoadSet(path string) (*feeds.FeedSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, setReadError(path, err)
	}
	return feeds.Parse(data)
}
