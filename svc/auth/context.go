package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type userIDKey struct{}

// WithUserID stores the authenticated user id in ctx.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromContext returns the id stored by the session middleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// LoggerExtractor adds user_id to log records of authenticated requests.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := UserIDFromContext(ctx); ok {
			return slog.String("user_id", id.String()), true
		}
		return slog.Attr{}, false
	}
}

// CurrentUserID is UserIDFromContext for handlers: it returns ErrUnauthenticated
// when the request carries no user.
func CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	if id, ok := UserIDFromContext(ctx); ok {
		return id, nil
	}
	return uuid.Nil, ErrUnauthenticated
}
