package ratelimiter

import (
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/clientip"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
)

// maxKeyLength bounds storage keys; longer composite keys are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByIP keys requests by client IP.
func ByIP() KeyFunc {
	return clientip.GetIP
}

// Prefix returns a constant key part, used to separate limits per route.
func Prefix(p string) KeyFunc {
	return func(*http.Request) string { return p }
}

// Composite joins the non-empty parts of several key functions with ":".
// Keys longer than 64 bytes are replaced by their FNV-1a hash.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// ErrorResponder writes the rejection response.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, result *Result)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	responder ErrorResponder
	log       *slog.Logger
}

// WithErrorResponder replaces the default JSON 429 response.
func WithErrorResponder(fn ErrorResponder) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.responder = fn
		}
	}
}

// WithLogger sets the logger for store failures.
func WithLogger(log *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// Middleware rejects requests whose key has no tokens left and sets the
// X-RateLimit-* headers. Requests with an empty key pass through. Store
// failures let the request through and are logged.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{responder: jsonTooManyRequests, log: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				cfg.log.WarnContext(r.Context(), "rate limiter unavailable",
					logger.Component("ratelimiter"),
					logger.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if retry := int(result.RetryAfter().Seconds()); retry > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(retry))
				}
				cfg.responder(w, r, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func jsonTooManyRequests(w http.ResponseWriter, _ *http.Request, _ *Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    "too_many_requests",
			"message": http.StatusText(http.StatusTooManyRequests),
		},
	})
}
