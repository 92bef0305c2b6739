package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps event timestamps per key in memory. Suitable for a
// single-instance deployment; use the Redis store behind a load
// balancer.
type MemoryStore struct {
	mu     sync.Mutex
	events map[string][]time.Time
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string][]time.Time),
		now:    time.Now,
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.prune(key, now, window)
	kept = append(kept, now)
	s.events[key] = kept
	return len(kept), nil
}

func (s *MemoryStore) Count(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.prune(key, s.now(), window)
	if len(kept) == 0 {
		delete(s.events, key)
	} else {
		s.events[key] = kept
	}
	return len(kept), nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.events, key)
	return nil
}

// prune drops events older than the window. Caller must hold the lock.
func (s *MemoryStore) prune(key string, now time.Time, window time.Duration) []time.Time {
	cutoff := now.Add(-window)
	var kept []time.Time
	for _, t := range s.events[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
