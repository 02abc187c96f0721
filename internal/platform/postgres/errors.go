package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quizforge/quizforge-api/internal/store"
)

// PostgreSQL error codes this package cares about.
const (
	uniqueViolationCode  = "23505"
	notNullViolationCode = "23502"
)

// MapError maps a database error to a store-level error, wrapping the
// original for context. All database operations in this package route
// their errors through here.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("duplicate row (%s): %w", pgErr.ConstraintName, err)
		case notNullViolationCode:
			return fmt.Errorf("not null violation (%s): %w", pgErr.ColumnName, err)
		}
	}

	return err
}
