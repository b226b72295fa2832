package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state. ConsumeTokens takes tokens only when enough are
// available and returns what would remain; tokens == 0 reads the state.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
