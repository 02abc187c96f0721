package service

import (
	"context"
	"sync"
	"time"

	"github.com/quizforge/quizforge-api/internal/generation"
)

// availabilityTTL is how long a probe result is trusted before the
// provider is probed again.
const availabilityTTL = 30 * time.Second

type availabilityEntry struct {
	checkedAt time.Time
	err       error
}

// availabilityCache memoizes provider availability probes so a burst of
// requests does not hammer a local runtime with health checks.
type availabilityCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]availabilityEntry
	now     func() time.Time
}

func newAvailabilityCache() *availabilityCache {
	return &availabilityCache{
		ttl:     availabilityTTL,
		entries: make(map[string]availabilityEntry),
		now:     time.Now,
	}
}

// check returns the cached probe result for the provider when fresh,
// probing and re-caching otherwise. Failures are cached too; a down
// provider answers fast instead of timing out on every request.
func (c *availabilityCache) check(ctx context.Context, p generation.Provider) error {
	c.mu.Lock()
	entry, ok := c.entries[p.Name()]
	fresh := ok && c.now().Sub(entry.checkedAt) < c.ttl
	c.mu.Unlock()

	if fresh {
		return entry.err
	}

	err := p.Available(ctx)

	c.mu.Lock()
	c.entries[p.Name()] = availabilityEntry{checkedAt: c.now(), err: err}
	c.mu.Unlock()
	return err
}
