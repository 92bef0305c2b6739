package ratelimit

import (
	"context"
	"time"
)

// Store counts events per key inside a sliding window. Implementations
// must be safe for concurrent use.
type Store interface {
	// Incr records one event for the key and returns how many events
	// fall inside the window, including this one.
	Incr(ctx context.Context, key string, window time.Duration) (int, error)
	// Count returns how many events fall inside the window without
	// recording a new one.
	Count(ctx context.Context, key string, window time.Duration) (int, error)
	// Reset discards all events for the key.
	Reset(ctx context.Context, key string) error
}
