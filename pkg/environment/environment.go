package environment

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Environment is the deployment stage the service runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps APP_ENV values, including the short forms dev, stage and prod.
// Unknown values are treated as development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }

// IsProduction reports whether e is production.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether e is development.
func (e Environment) IsDevelopment() bool { return e == Development }

type contextKey struct{}

// WithContext returns a copy of ctx carrying env.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or Development.
func FromContext(ctx context.Context) Environment {
	if ctx != nil {
		if env, ok := ctx.Value(contextKey{}).(Environment); ok {
			return env
		}
	}
	return Development
}

// Middleware stores env in every request context.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}

// LoggerAttr returns the env attribute added to every log record.
func (e Environment) LoggerAttr() slog.Attr {
	return slog.String("env", string(e))
}
