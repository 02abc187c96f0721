// Package stats tracks per-model generation timings and turns them
// into human-readable wait estimates.
package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/store"
)

// NoHistory is the estimate reported for a model that has never
// completed a generation.
const NoHistory = "no history yet"

// Tracker aggregates generation timings per model. It keeps a local
// cache in front of the store so estimates never block on the database.
type Tracker struct {
	mu     sync.RWMutex
	store  store.StatsStore
	cache  map[string]domain.ModelStats
	logger *slog.Logger
	now    func() time.Time
}

// NewTracker creates a tracker backed by the given store. A nil logger
// falls back to the default.
func NewTracker(s store.StatsStore, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		store:  s,
		cache:  make(map[string]domain.ModelStats),
		logger: logger.With(slog.String("component", "stats_tracker")),
		now:    time.Now,
	}
}

// Warm preloads the cache from the store. Called once at startup so
// estimates survive restarts.
func (t *Tracker) Warm(ctx context.Context) error {
	all, err := t.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to warm stats cache: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, entry := range all {
		t.cache[entry.Model] = entry
	}
	return nil
}

// Record folds one completed generation into the model's aggregate.
// The cache is updated even when the store write fails, so a flaky
// database degrades estimates to process-local rather than losing them.
func (t *Tracker) Record(ctx context.Context, model string, elapsed time.Duration) error {
	elapsedMs := elapsed.Milliseconds()
	at := t.now()

	t.mu.Lock()
	entry, ok := t.cache[model]
	if !ok {
		entry = domain.ModelStats{
			Model:     model,
			FastestMs: elapsedMs,
			SlowestMs: elapsedMs,
		}
	}
	entry.Count++
	entry.TotalMs += elapsedMs
	entry.AverageMs = entry.TotalMs / entry.Count
	if elapsedMs < entry.FastestMs {
		entry.FastestMs = elapsedMs
	}
	if elapsedMs > entry.SlowestMs {
		entry.SlowestMs = elapsedMs
	}
	entry.LastUsedAt = at
	t.cache[model] = entry
	t.mu.Unlock()

	if err := t.store.Record(ctx, model, elapsedMs, at); err != nil {
		return fmt.Errorf("failed to persist model stats: %w", err)
	}
	return nil
}

// Estimate returns a human-readable expected duration for the model,
// like "~45s" or "~3-5 min".
func (t *Tracker) Estimate(ctx context.Context, model string) string {
	t.mu.RLock()
	entry, ok := t.cache[model]
	t.mu.RUnlock()

	if !ok {
		stored, err := t.store.Get(ctx, model)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				t.logger.WarnContext(ctx, "failed to load model stats",
					slog.String("model", model),
					slog.String("error", err.Error()))
			}
			return NoHistory
		}
		entry = *stored
		t.mu.Lock()
		t.cache[model] = entry
		t.mu.Unlock()
	}

	if entry.Count == 0 {
		return NoHistory
	}
	return describe(entry)
}

// describe buckets an aggregate into a phrase. Slow models get a range
// because their variance is what users actually feel.
func describe(entry domain.ModelStats) string {
	avg := entry.AverageMs
	switch {
	case avg < 60_000:
		secs := (avg + 500) / 1000
		if secs < 1 {
			secs = 1
		}
		return fmt.Sprintf("~%ds", secs)
	case avg < 120_000:
		return "~1 min"
	case avg < 300_000:
		return fmt.Sprintf("~%d min", (avg+30_000)/60_000)
	default:
		fastest := entry.FastestMs / 60_000
		if fastest < 1 {
			fastest = 1
		}
		slowest := (entry.SlowestMs + 59_999) / 60_000
		if slowest <= fastest {
			slowest = fastest + 1
		}
		return fmt.Sprintf("~%d-%d min", fastest, slowest)
	}
}
