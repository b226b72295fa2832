package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testConfig = ratelimiter.Config{
	Capacity:       3,
	RefillRate:     1,
	RefillInterval: time.Minute,
}

// storeFactory builds a store driven by clock.
type storeFactory func(t *testing.T, clock *fakeClock) ratelimiter.Store

func memoryFactory(t *testing.T, clock *fakeClock) ratelimiter.Store {
	t.Helper()
	s := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	t.Cleanup(s.Close)
	return s
}

func TestNewBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{Capacity: 0, RefillRate: 1, RefillInterval: time.Second}},
		{"zero rate", ratelimiter.Config{Capacity: 1, RefillRate: 0, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), tt.cfg)
			require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestBucket_MemoryStore(t *testing.T) {
	t.Parallel()
	runBucketSuite(t, memoryFactory)
}

func runBucketSuite(t *testing.T, factory storeFactory) {
	t.Helper()
	ctx := context.Background()

	t.Run("admits up to capacity then rejects", func(t *testing.T) {
		clock := newFakeClock()
		b, err := ratelimiter.NewBucket(factory(t, clock), testConfig)
		require.NoError(t, err)

		for want := 2; want >= 0; want-- {
			res, err := b.Allow(ctx, "ip-1")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := b.Allow(ctx, "ip-1")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, clock.Now().Add(time.Minute).Unix(), res.ResetAt.Unix())
	})

	t.Run("rejected requests consume nothing", func(t *testing.T) {
		clock := newFakeClock()
		b, err := ratelimiter.NewBucket(factory(t, clock), testConfig)
		require.NoError(t, err)

		res, err := b.AllowN(ctx, "k", 5)
		require.NoError(t, err)
		assert.False(t, res.Allowed())

		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("refills whole intervals", func(t *testing.T) {
		clock := newFakeClock()
		b, err := ratelimiter.NewBucket(factory(t, clock), testConfig)
		require.NoError(t, err)

		_, err = b.AllowN(ctx, "k", 3)
		require.NoError(t, err)

		clock.Advance(90 * time.Second)
		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining)

		// The half interval carried over completes the second token.
		clock.Advance(30 * time.Second)
		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)

		clock.Advance(time.Hour)
		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("keys are independent and resettable", func(t *testing.T) {
		clock := newFakeClock()
		b, err := ratelimiter.NewBucket(factory(t, clock), testConfig)
		require.NoError(t, err)

		_, err = b.AllowN(ctx, "a", 3)
		require.NoError(t, err)

		res, err := b.Allow(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)

		require.NoError(t, b.Reset(ctx, "a"))
		res, err = b.Allow(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("invalid token count", func(t *testing.T) {
		clock := newFakeClock()
		b, err := ratelimiter.NewBucket(factory(t, clock), testConfig)
		require.NoError(t, err)
		_, err = b.AllowN(ctx, "k", 0)
		require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})

	t.Run("cancelled context", func(t *testing.T) {
		clock := newFakeClock()
		b, err := ratelimiter.NewBucket(factory(t, clock), testConfig)
		require.NoError(t, err)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = b.Allow(cctx, "k")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()
	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := b.Allow(context.Background(), "shared")
			if err == nil && res.Allowed() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
	assert.Equal(t, 1, store.Len())
}

func TestResult(t *testing.T) {
	t.Parallel()

	ok := &ratelimiter.Result{Remaining: 0, ResetAt: time.Now().Add(time.Minute)}
	assert.True(t, ok.Allowed())
	assert.Zero(t, ok.RetryAfter())

	denied := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(time.Minute)}
	assert.False(t, denied.Allowed())
	assert.InDelta(t, time.Minute.Seconds(), denied.RetryAfter().Seconds(), 1)

	past := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Minute)}
	assert.Zero(t, past.RetryAfter())
}
