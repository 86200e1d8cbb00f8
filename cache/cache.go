// Package cache provides the in-process TTL store backing the restaurant
// routes. Entries live for a fixed TTL, expire lazily on read, and die with
// the process; the key space (three cities plus viewed place ids) is small
// enough that no eviction is needed.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Store is a key→value cache with a fixed TTL. One instance is created per
// route kind (city lists, place details); instances are independent.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

func New[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock overrides the time source. Tests use this to advance time past
// the TTL without sleeping.
func (s *Store[V]) WithClock(now func() time.Time) *Store[V] {
	s.now = now
	return s
}

// Get returns the cached value for key. An entry older than the TTL is
// treated as absent; it is left in place and overwritten by the next Set.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || s.now().Sub(e.storedAt) >= s.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, unconditionally overwriting any existing
// entry and stamping the current time. Concurrent requests that both miss
// on a cold key each fetch and each Set; the last write wins, which is
// acceptable for idempotent upstream reads.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry[V]{value: value, storedAt: s.now()}
}
