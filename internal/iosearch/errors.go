package iosearch

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"

	"github.com/sportdb/sportdb/pkg/errcode"
)

func openError(path string, err error) error {
	return &gn.Error{
		Code: errcode.DBOpenError,
		Msg:  "Cannot open catalog database <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open catalog: %w", err),
	}
}

func closeError(path string, err error) error {
	return &gn.Error{
		Code: errcode.DBCloseError,
		Msg:  "Cannot close catalog database <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot close catalog: %w", err),
	}
}

func notOpenError() error {
	return &gn.Error{
		Code: errcode.DBNotOpenError,
		Msg:  "No catalog database is open. Run <em>sportdb load</em> first.",
		Err:  errors.New("search on closed database"),
	}
}

func queryError(err error) error {
	return &gn.Error{
		Code: errcode.SearchQueryError,
		Msg:  "Catalog query failed",
		Err:  fmt.Errorf("catalog query: %w", err),
	}
}

func swapError(from, to string, err error) error {
	return &gn.Error{
		Code: errcode.SearchSwapError,
		Msg:  "Cannot swap catalog database <em>%s</em> into place",
		Vars: []any{from},
		Err:  fmt.Errorf("cannot rename %s to %s: %w", from, to, err),
	}
}
