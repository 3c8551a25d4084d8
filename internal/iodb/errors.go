package iodb

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
		Err:  fmt.Errorf("cannot open sqlite file: %w", err),
	}
}

func closeError(path string, err error) error {
	return &gn.Error{
		Code: errcode.DBCloseError,
		Msg:  "Cannot close catalog database <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot close sqlite file: %w", err),
	}
}

func notOpenError() error {
	return &gn.Error{
		Code: errcode.DBNotOpenError,
		Msg:  "Catalog database is not open",
		Err:  errors.New("operation on closed database"),
	}
}

func createTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBCreateTableError,
		Msg:  "Cannot create table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("cannot create table %s: %w", table, err),
	}
}

func createIndexError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBCreateIndexError,
		Msg:  "Cannot create indexes for <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("cannot create indexes for %s: %w", table, err),
	}
}
