// Package ratelimiter implements token bucket rate limiting with in-memory and
// Redis stores plus an HTTP middleware.
//
//	store := ratelimiter.NewRedisStore(client, "signaturecraft:rl")
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.Composite(ratelimiter.Prefix("send"), ratelimiter.ByIP()))).
//		Post("/api/signatures/{id}/send", h.send)
//
// A request that would take the bucket below zero is rejected and consumes
// nothing. Both stores refill in whole intervals and keep partial progress.
package ratelimiter
