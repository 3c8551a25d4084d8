// Package iodb implements the db.Operator interface for a
// single-file SQLite catalog using the modernc.org/sqlite driver.
package iodb

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/sportdb/sportdb/pkg/db"
	"github.com/sportdb/sportdb/pkg/schema"
)

type operator struct {
	db   *sql.DB
	path string
}

// New creates a SQLite database operator.
func New() db.Operator {
	return &operator{}
}

func (o *operator) Open(ctx context.Context, path string) error {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return openError(path, err)
	}
	// The importer is the only writer and a crash means a full
	// rebuild, so durability is traded for bulk-insert speed.
	pragmas := []string{
		"PRAGMA journal_mode=MEMORY",
		"PRAGMA synchronous=OFF",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, p); err != nil {
			sqlDB.Close()
			return openError(path, err)
		}
	}
	o.db = sqlDB
	o.path = path
	return nil
}

func (o *operator) Close() error {
	if o.db == nil {
		return nil
	}
	err := o.db.Close()
	o.db = nil
	if err != nil {
		return closeError(o.path, err)
	}
	return nil
}

func (o *operator) DB() *sql.DB {
	return o.db
}

func (o *operator) CreateTables(ctx context.Context) error {
	if o.db == nil {
		return notOpenError()
	}
	for _, ent := range schema.Entities() {
		if _, err := o.db.ExecContext(ctx, ent.CreateDDL); err != nil {
			return createTableError(ent.Name, err)
		}
	}
	return nil
}

func (o *operator) CreateIndexes(ctx context.Context) error {
	if o.db == nil {
		return notOpenError()
	}
	for _, ent := range schema.Entities() {
		for _, ddl := range ent.IndexDDLs {
			if _, err := o.db.ExecContext(ctx, ddl); err != nil {
				return createIndexError(ent.Name, err)
			}
		}
	}
	return nil
}

func (o *operator) HasTables(ctx context.Context) (bool, error) {
	if o.db == nil {
		return false, notOpenError()
	}
	row := o.db.QueryRowContext(ctx,
		"select count(*) from sqlite_master where type = 'table' and name = 'item'",
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, openError(o.path, err)
	}
	return count > 0, nil
}
