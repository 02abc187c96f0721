// Package store defines persistence interfaces consumed by the service
// layer, keeping callers independent of the storage backend.
package store

import (
	"context"
	"time"

	"github.com/quizforge/quizforge-api/internal/domain"
)

// StatsStore persists per-model generation timing aggregates.
type StatsStore interface {
	// Record folds one completed generation into the aggregate for
	// model. The first observation for a model creates the aggregate.
	Record(ctx context.Context, model string, elapsedMs int64, at time.Time) error

	// Get retrieves the aggregate for a model.
	// Returns ErrModelStatsNotFound if the model has never been recorded.
	Get(ctx context.Context, model string) (*domain.ModelStats, error)

	// List retrieves all recorded aggregates, most recently used first.
	List(ctx context.Context) ([]domain.ModelStats, error)
}
