// Package storage picks the configured database driver.
package storage

import (
	"fmt"

	"school-schedule/internal/storage/postgres"
	"school-schedule/internal/storage/sqlite"
	"school-schedule/internal/storage/sqlstore"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func Open(driver, dsn string) (*sqlstore.Store, error) {
	const op = "storage.Open"

	switch driver {
	case DriverPostgres:
		return postgres.New(dsn)
	case DriverSQLite:
		return sqlite.New(dsn)
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, driver)
	}
}
