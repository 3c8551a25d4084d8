package ioimport

import (
	"fmt"

	"github.com/gnames/gn"

	"github.com/sportdb/sportdb/pkg/errcode"
)

func catalogFetchError(source string, err error) error {
	return &gn.Error{
		Code: errcode.ImportCatalogFetchError,
		Msg:  "Cannot fetch catalog feed <em>%s</em>",
		Vars: []any{source},
		Err:  fmt.Errorf("catalog feed: %w", err),
	}
}

func metadataFetchError(err error) error {
	return &gn.Error{
		Code: errcode.ImportMetadataFetchError,
		Msg:  "Cannot fetch metadata feeds",
		Err:  fmt.Errorf("metadata feeds: %w", err),
	}
}

func importCreateError(dir string, err error) error {
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create import directory <em>%s</em>",
		Vars: []any{dir},
		Err:  fmt.Errorf("cannot create import directory: %w", err),
	}
}

func beginError(err error) error {
	return &gn.Error{
		Code: errcode.ImportBeginError,
		Msg:  "Cannot begin import transaction",
		Err:  fmt.Errorf("cannot begin transaction: %w", err),
	}
}

func prepareError(sql string, err error) error {
	return &gn.Error{
		Code: errcode.DBPrepareError,
		Msg:  "Cannot prepare import statement",
		Err:  fmt.Errorf("cannot prepare %q: %w", sql, err),
	}
}

func insertError(table string, err error) error {
	return &gn.Error{
		Code: errcode.ImportInsertError,
		Msg:  "Cannot insert into <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("cannot insert into %s: %w", table, err),
	}
}

func commitError(err error) error {
	return &gn.Error{
		Code: errcode.ImportCommitError,
		Msg:  "Cannot commit import transaction",
		Err:  fmt.Errorf("cannot commit transaction: %w", err),
	}
}
