package iofeed

import (
	"fmt"

	"github.com/gnames/gn"

	"github.com/sportdb/sportdb/pkg/errcode"
)

func fetchError(source string, err error) error {
	return &gn.Error{
		Code: errcode.FeedFetchError,
		Msg:  "Cannot fetch feed <em>%s</em>",
		Vars: []any{source},
		Err:  fmt.Errorf("cannot fetch feed: %w", err),
	}
}

func httpStatusError(url string, status int) error {
	return &gn.Error{
		Code: errcode.FeedHTTPStatusError,
		Msg:  "Feed <em>%s</em> returned HTTP status %d",
		Vars: []any{url, status},
		Err:  fmt.Errorf("feed %s: unexpected status %d", url, status),
	}
}

func setReadError(path string, err error) error {
	return &gn.Error{
		Code: errcode.FeedSetReadError,
		Msg:  "Cannot read feed set <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read feed set: %w", err),
	}
}
