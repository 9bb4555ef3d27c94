// Package sqlstore implements schedule storage over database/sql. Driver
// packages supply a Dialect for placeholder style and error translation.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"school-schedule/pkg/response"
)

type Dialect struct {
	Name string
	// Rebind rewrites '?' placeholders into the driver's style. Nil keeps them.
	Rebind func(query string) string
	// MapErr translates driver errors into response sentinels. Nil keeps them.
	MapErr func(err error) error
}

type Store struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// New pings the database and applies the schema.
func New(db *sql.DB, dialect Dialect) (*Store, error) {
	const op = "storage.sqlstore.New"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%s: ping %s: %w", op, dialect.Name, err)
	}

	s := &Store{db: db, dialect: dialect, now: time.Now}

	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func (s *Store) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return s.db.BeginTx(ctx, nil)
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn runs statements inside tx when one is given.
func (s *Store) conn(tx *sql.Tx) querier {
	if tx != nil {
		return tx
	}
	return s.db
}

func (s *Store) q(query string) string {
	if s.dialect.Rebind == nil {
		return query
	}
	return s.dialect.Rebind(query)
}

func (s *Store) mapErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return response.ErrNotFound
	}
	if s.dialect.MapErr == nil {
		return err
	}
	return s.dialect.MapErr(err)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func parseTimestamp(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
