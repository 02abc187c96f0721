package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/quizforge/quizforge-api/internal/domain"
)

// MemoryStatsStore is an in-memory StatsStore. It backs deployments
// that run without a database; aggregates reset on restart.
type MemoryStatsStore struct {
	mu    sync.RWMutex
	stats map[string]*domain.ModelStats
}

// NewMemoryStatsStore creates an empty in-memory stats store.
func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{stats: make(map[string]*domain.ModelStats)}
}

var _ StatsStore = (*MemoryStatsStore)(nil)

// Record implements StatsStore.Record.
func (s *MemoryStatsStore) Record(_ context.Context, model string, elapsedMs int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.stats[model]
	if !ok {
		s.stats[model] = &domain.ModelStats{
			Model:      model,
			Count:      1,
			TotalMs:    elapsedMs,
			AverageMs:  elapsedMs,
			FastestMs:  elapsedMs,
			SlowestMs:  elapsedMs,
			LastUsedAt: at,
		}
		return nil
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
	return nil
}

// Get implements StatsStore.Get.
func (s *MemoryStatsStore) Get(_ context.Context, model string) (*domain.ModelStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.stats[model]
	if !ok {
		return nil, ErrModelStatsNotFound
	}
	copied := *entry
	return &copied, nil
}

// List implements StatsStore.List.
func (s *MemoryStatsStore) List(_ context.Context) ([]domain.ModelStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ModelStats, 0, len(s.stats))
	for _, entry := range s.stats {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUsedAt.After(out[j].LastUsedAt)
	})
	return out, nil
}
