package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

// OAuthFlow runs an OAuth authorization code flow.
type OAuthFlow interface {
	Begin(w http.ResponseWriter) (string, error)
	Complete(ctx context.Context, w http.ResponseWriter, r *http.Request) (*auth.User, error)
}

// GoogleHandler serves /google/login and /google/callback.
type GoogleHandler struct {
	flow         OAuthFlow
	sessions     SessionManager
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewGoogleHandler creates the Google sign-in handler.
func NewGoogleHandler(flow OAuthFlow, sessions SessionManager, log *slog.Logger) *GoogleHandler {
	if log == nil {
		log = slog.Default()
	}
	return &GoogleHandler{
		flow:         flow,
		sessions:     sessions,
		log:          log,
		errorHandler: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{}),
	}
}

func (h *GoogleHandler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/login", handler.Wrap(h.begin,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	r.Get("/callback", handler.Wrap(h.callback,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	return r
}

func (h *GoogleHandler) begin(ctx handler.Context, _ struct{}) handler.Response {
	target, err := h.flow.Begin(ctx.ResponseWriter())
	if err != nil {
		return handler.Fail(err)
	}
	return handler.Redirect(target)
}

func (h *GoogleHandler) callback(ctx handler.Context, _ struct{}) handler.Response {
	user, err := h.flow.Complete(ctx, ctx.ResponseWriter(), ctx.Request())
	if err != nil {
		h.log.WarnContext(ctx, "google sign-in failed",
			logger.Component("account"),
			logger.Event("oauth_callback"),
			logger.Error(err),
		)
		switch {
		case errors.Is(err, auth.ErrInvalidState), errors.Is(err, auth.ErrInvalidCode):
			return handler.Fail(handler.ErrBadRequest)
		case errors.Is(err, auth.ErrUnverifiedEmail), errors.Is(err, auth.ErrNoPrimaryEmail):
			return handler.Fail(handler.ErrForbidden)
		}
		return handler.Fail(err)
	}

	if err := h.sessions.Start(ctx.ResponseWriter(), user); err != nil {
		return handler.Fail(err)
	}
	h.log.InfoContext(ctx, "user signed in",
		logger.Component("account"),
		logger.UserID(user.ID),
		logger.Event("login"),
		slog.String("provider", auth.ProviderGoogle),
	)
	return handler.Redirect(HomePath)
}
