package ratelimiter

import (
	"fmt"
	"time"
)

// Result is the outcome of a limiter check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; negative when the request was rejected
	ResetAt   time.Time // next refill
}

// Allowed reports whether the request was admitted.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is the wait until the next refill for rejected requests.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Config describes a token bucket.
type Config struct {
	Capacity       int           `env:"CAPACITY" envDefault:"10"`
	RefillRate     int           `env:"REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"1m"`
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// ttl is how long an idle bucket needs to refill completely.
func (c Config) ttl() time.Duration {
	intervals := (c.Capacity + c.RefillRate - 1) / c.RefillRate
	return time.Duration(intervals+1) * c.RefillInterval
}

// refill adds whole elapsed intervals to tokens and advances last by the
// intervals consumed.
func (c Config) refill(tokens int, last, now time.Time) (int, time.Time) {
	if now.Before(last) {
		return tokens, last
	}
	elapsed := int64(now.Sub(last) / c.RefillInterval)
	if elapsed <= 0 {
		return tokens, last
	}
	// Cap to avoid overflow for long idle buckets.
	capped := min(elapsed, int64(c.Capacity/c.RefillRate+1))
	tokens = min(tokens+int(capped)*c.RefillRate, c.Capacity)
	return tokens, last.Add(time.Duration(elapsed) * c.RefillInterval)
}
