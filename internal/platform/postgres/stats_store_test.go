package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/quizforge/quizforge-api/internal/store"
)

func TestNewStatsStorePanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() {
		NewStatsStore(nil, nil)
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		check  func(t *testing.T, got error)
	}{
		{
			name: "nil passes through",
			err:  nil,
			check: func(t *testing.T, got error) {
				assert.NoError(t, got)
			},
		},
		{
			name: "no rows becomes not found",
			err:  sql.ErrNoRows,
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, store.ErrNotFound)
			},
		},
		{
			name: "unique violation keeps constraint name",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "model_stats_pkey"},
			check: func(t *testing.T, got error) {
				assert.Contains(t, got.Error(), "model_stats_pkey")
			},
		},
		{
			name: "unmapped errors pass through",
			err:  errors.New("connection reset"),
			check: func(t *testing.T, got error) {
				assert.EqualError(t, got, "connection reset")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, MapError(tc.err))
		})
	}
}
