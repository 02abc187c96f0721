package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/store"
)

// StatsStore implements store.StatsStore against the model_stats table.
type StatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStatsStore creates a PostgreSQL-backed stats store. It accepts a
// database connection or transaction managed by the caller. A nil
// logger falls back to the default.
func NewStatsStore(db store.DBTX, logger *slog.Logger) *StatsStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

var _ store.StatsStore = (*StatsStore)(nil)

// Record implements store.StatsStore.Record with a single upsert, so
// concurrent generations never race on read-modify-write.
func (s *StatsStore) Record(ctx context.Context, model string, elapsedMs int64, at time.Time) error {
	query := `
		INSERT INTO model_stats (model, count, total_ms, fastest_ms, slowest_ms, last_used_at)
		VALUES ($1, 1, $2, $2, $2, $3)
		ON CONFLICT (model) DO UPDATE SET
			count        = model_stats.count + 1,
			total_ms     = model_stats.total_ms + EXCLUDED.total_ms,
			fastest_ms   = LEAST(model_stats.fastest_ms, EXCLUDED.fastest_ms),
			slowest_ms   = GREATEST(model_stats.slowest_ms, EXCLUDED.slowest_ms),
			last_used_at = EXCLUDED.last_used_at
	`

	if _, err := s.db.ExecContext(ctx, query, model, elapsedMs, at); err != nil {
		s.logger.ErrorContext(ctx, "failed to record model stats",
			slog.String("model", model),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to record model stats: %w", MapError(err))
	}
	return nil
}

// Get implements store.StatsStore.Get.
func (s *StatsStore) Get(ctx context.Context, model string) (*domain.ModelStats, error) {
	query := `
		SELECT model, count, total_ms, fastest_ms, slowest_ms, last_used_at
		FROM model_stats
		WHERE model = $1
	`

	var stats domain.ModelStats
	err := s.db.QueryRowContext(ctx, query, model).Scan(
		&stats.Model,
		&stats.Count,
		&stats.TotalMs,
		&stats.FastestMs,
		&stats.SlowestMs,
		&stats.LastUsedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			return nil, store.ErrModelStatsNotFound
		}
		return nil, fmt.Errorf("failed to get model stats: %w", mapped)
	}

	if stats.Count > 0 {
		stats.AverageMs = stats.TotalMs / stats.Count
	}
	return &stats, nil
}

// List implements store.StatsStore.List.
func (s *StatsStore) List(ctx context.Context) ([]domain.ModelStats, error) {
	query := `
		SELECT model, count, total_ms, fastest_ms, slowest_ms, last_used_at
		FROM model_stats
		ORDER BY last_used_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list model stats: %w", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	var out []domain.ModelStats
	for rows.Next() {
		var stats domain.ModelStats
		if err := rows.Scan(
			&stats.Model,
			&stats.Count,
			&stats.TotalMs,
			&stats.FastestMs,
			&stats.SlowestMs,
			&stats.LastUsedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan model stats row: %w", MapError(err))
		}
		if stats.Count > 0 {
			stats.AverageMs = stats.TotalMs / stats.Count
		}
		out = append(out, stats)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate model stats rows: %w", MapError(err))
	}
	return out, nil
}
