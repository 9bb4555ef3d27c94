package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"school-schedule/internal/storage/sqlstore"
	"school-schedule/pkg/response"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func New(storagePath string) (*sqlstore.Store, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	store, err := sqlstore.New(db, Dialect())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return store, nil
}

func Dialect() sqlstore.Dialect {
	return sqlstore.Dialect{
		Name:   "postgres",
		Rebind: Rebind,
		MapErr: mapError,
	}
}

// Rebind turns '?' placeholders into $1, $2, ...
func Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

func mapError(err error) error {
	var sqlErr *pq.Error
	if !errors.As(err, &sqlErr) {
		return err
	}

	switch sqlErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", response.ErrConflict, sqlErr.Message)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", response.ErrNotFound, sqlErr.Message)
	default:
		return err
	}
}
