// Package snapshot caches the most recently fetched copy of each resource
// collection so list endpoints can serve stale data when the booking backend
// is unreachable.
package snapshot

import (
	"sync"
	"time"
)

// Store holds one resource collection snapshot. It is safe for concurrent
// use.
type Store[T any] struct {
	mu         sync.RWMutex
	records    []T
	capturedAt time.Time
	populated  bool
}

// New creates an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// Put replaces the snapshot with a fresh copy.
func (s *Store[T]) Put(records []T) {
	copied := make([]T, len(records))
	copy(copied, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = copied
	s.capturedAt = time.Now().UTC()
	s.populated = true
}

// Get returns the snapshot, its capture time, and whether one exists.
func (s *Store[T]) Get() ([]T, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.populated {
		return nil, time.Time{}, false
	}
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out, s.capturedAt, true
}

// Age returns how old the snapshot is.
func (s *Store[T]) Age(now time.Time) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.populated {
		return 0, false
	}
	return now.Sub(s.capturedAt), true
}
