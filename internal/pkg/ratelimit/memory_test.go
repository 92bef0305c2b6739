package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedStore(start time.Time) (*MemoryStore, *time.Time) {
	current := start
	store := NewMemoryStore()
	store.now = func() time.Time { return current }
	return store, &current
}

func TestMemoryStoreIncrCounts(t *testing.T) {
	store, _ := newClockedStore(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		count, err := store.Incr(ctx, "login:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	count, err := store.Count(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemoryStoreKeysAreIndependent(t *testing.T) {
	store, _ := newClockedStore(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := store.Incr(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)

	count, err := store.Count(ctx, "login:5.6.7.8", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryStoreWindowSlides(t *testing.T) {
	store, clock := newClockedStore(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)

	*clock = clock.Add(30 * time.Second)
	count, err := store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// The first event falls out of the window, the second survives.
	*clock = clock.Add(45 * time.Second)
	count, err = store.Count(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	*clock = clock.Add(time.Minute)
	count, err = store.Count(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryStoreReset(t *testing.T) {
	store, _ := newClockedStore(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Incr(ctx, "k", time.Minute)
		require.NoError(t, err)
	}
	require.NoError(t, store.Reset(ctx, "k"))

	count, err := store.Count(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
