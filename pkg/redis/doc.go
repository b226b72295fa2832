// Package redis connects to Redis with go-redis/v9. The client backs the
// distributed rate limiter store; when REDIS_URL is unset the application
// falls back to in-memory limiting.
package redis
