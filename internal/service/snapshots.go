package service

import (
	"sync"
	"time"

	"github.com/quizforge/quizforge-api/internal/domain"
)

// snapshotTTL is how long a pre-rewrite clue image stays undoable.
const snapshotTTL = 5 * time.Minute

// snapshotStore holds pre-rewrite clue images keyed by clue ID.
// Expired entries are swept on every write, so the map stays bounded by
// rewrite activity within the TTL.
type snapshotStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]domain.ClueSnapshot
	now     func() time.Time
}

func newSnapshotStore() *snapshotStore {
	return &snapshotStore{
		ttl:     snapshotTTL,
		entries: make(map[string]domain.ClueSnapshot),
		now:     time.Now,
	}
}

// save records the pre-image for a clue, replacing any earlier one.
func (s *snapshotStore) save(snap domain.ClueSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for id, entry := range s.entries {
		if entry.TakenAt.Before(cutoff) {
			delete(s.entries, id)
		}
	}

	snap.TakenAt = s.now()
	s.entries[snap.ClueID] = snap
}

// pop removes and returns the snapshot for a clue. Undo is one-shot; a
// second undo for the same rewrite has nothing to restore.
func (s *snapshotStore) pop(clueID string) (domain.ClueSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.entries[clueID]
	if !ok {
		return domain.ClueSnapshot{}, false
	}
	delete(s.entries, clueID)

	if s.now().Sub(snap.TakenAt) > s.ttl {
		return domain.ClueSnapshot{}, false
	}
	return snap, true
}
