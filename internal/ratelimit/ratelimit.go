// Package ratelimit provides a sliding-window request limiter keyed by
// caller identity.
package ratelimit

import (
	"sync"
	"time"
)

// DefaultRequestsPerMinute is the ceiling applied when configuration
// does not override it.
const DefaultRequestsPerMinute = 60

// window is the span requests are counted over.
const window = time.Minute

// Limiter admits at most `limit` requests per source per sliding
// minute. It is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	entries map[string][]time.Time
	now     func() time.Time
}

// New returns a limiter with the given per-minute ceiling. A
// non-positive limit falls back to the default.
func New(limit int) *Limiter {
	if limit <= 0 {
		limit = DefaultRequestsPerMinute
	}
	return &Limiter{
		limit:   limit,
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Limit returns the configured per-minute ceiling.
func (l *Limiter) Limit() int {
	return l.limit
}

// Allow records a request from sourceID and reports whether it is
// within the ceiling. Timestamps older than the window are discarded on
// each call, so the map only grows with distinct active sources.
func (l *Limiter) Allow(sourceID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	recent := l.entries[sourceID][:0]
	for _, ts := range l.entries[sourceID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.limit {
		l.entries[sourceID] = recent
		return false
	}

	l.entries[sourceID] = append(recent, now)
	return true
}
