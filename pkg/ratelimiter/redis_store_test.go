package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
)

func redisFactory(t *testing.T, clock *fakeClock) ratelimiter.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return ratelimiter.NewRedisStore(client, "test", ratelimiter.WithRedisClock(clock.Now))
}

func TestBucket_RedisStore(t *testing.T) {
	t.Parallel()
	runBucketSuite(t, redisFactory)
}

func TestRedisStore_KeysAndTTL(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := ratelimiter.NewRedisStore(client, "rl")
	b, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)

	_, err = b.Allow(context.Background(), "send:1.2.3.4")
	require.NoError(t, err)

	assert.True(t, mr.Exists("rl:send:1.2.3.4"))
	assert.Greater(t, mr.TTL("rl:send:1.2.3.4"), time.Duration(0))

	require.NoError(t, b.Reset(context.Background(), "send:1.2.3.4"))
	assert.False(t, mr.Exists("rl:send:1.2.3.4"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	b, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client, "rl"), testConfig)
	require.NoError(t, err)
	_, err = b.Allow(context.Background(), "k")
	require.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
}
