package account

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

// welcome sends the welcome email. Delivery failures never fail a sign-up.
func welcome(ctx context.Context, mailer WelcomeMailer, log *slog.Logger, user *auth.User) {
	if mailer == nil {
		return
	}
	if err := mailer.SendWelcome(ctx, user.Email, user.Name); err != nil {
		log.WarnContext(ctx, "failed to send welcome email",
			logger.Component("account"),
			logger.UserID(user.ID),
			logger.Error(err),
		)
	}
}

// limitLogins returns the login rate limit middleware, or nothing when l is nil.
func limitLogins(l ratelimiter.RateLimiter, log *slog.Logger) []func(http.Handler) http.Handler {
	if l == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{
		ratelimiter.Middleware(l,
			ratelimiter.Composite(ratelimiter.Prefix("login"), ratelimiter.ByIP()),
			ratelimiter.WithLogger(log),
		),
	}
}
