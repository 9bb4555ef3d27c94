// Package sqlite provides the embedded SQLite storage used for local runs and tests.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"school-schedule/internal/storage/sqlstore"
	"school-schedule/pkg/response"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// New opens (or creates) the database at path with foreign keys enabled.
func New(path string) (*sqlstore.Store, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// one writer avoids SQLITE_BUSY between concurrent requests
	db.SetMaxOpenConns(1)

	store, err := sqlstore.New(db, sqlstore.Dialect{
		Name:   "sqlite",
		MapErr: mapError,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return store, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func mapError(err error) error {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return err
	}

	switch sqlErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %s", response.ErrConflict, sqlErr.Error())
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %s", response.ErrNotFound, sqlErr.Error())
	}

	// primary result code only, when extended codes are off
	if sqlErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqlErr.Error(), "UNIQUE") {
		return fmt.Errorf("%w: %s", response.ErrConflict, sqlErr.Error())
	}

	return err
}
