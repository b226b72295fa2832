package account

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/binder"
	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

// UserLookup loads the signed-in user.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

// APIHandler serves the JSON variant of sign-up and sign-in under /api/auth.
// Sessions use the same cookie as the pages.
type APIHandler struct {
	passwords    Authenticator
	sessions     SessionManager
	users        UserLookup
	mailer       WelcomeMailer
	loginLimiter ratelimiter.RateLimiter
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewAPIHandler creates the JSON auth handler. mailer and loginLimiter may be nil.
func NewAPIHandler(passwords Authenticator, sessions SessionManager, users UserLookup, mailer WelcomeMailer, loginLimiter ratelimiter.RateLimiter, log *slog.Logger) *APIHandler {
	if log == nil {
		log = slog.Default()
	}
	return &APIHandler{
		passwords:    passwords,
		sessions:     sessions,
		users:        users,
		mailer:       mailer,
		loginLimiter: loginLimiter,
		log:          log,
		errorHandler: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{}),
	}
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *APIHandler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/register", handler.Wrap(h.register,
		handler.WithBinders[handler.Context, credentials](binder.JSON()),
		handler.WithErrorHandler[handler.Context, credentials](h.errorHandler),
	))
	r.With(limitLogins(h.loginLimiter, h.log)...).Post("/login", handler.Wrap(h.login,
		handler.WithBinders[handler.Context, credentials](binder.JSON()),
		handler.WithErrorHandler[handler.Context, credentials](h.errorHandler),
	))
	r.Post("/logout", handler.Wrap(h.logout,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	r.Get("/me", handler.Wrap(h.me,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	return r
}

var apiErrors = []handler.ErrorRule{
	{Target: auth.ErrInvalidCredentials, As: handler.ErrUnauthorized},
	{Target: auth.ErrUnauthenticated, As: handler.ErrUnauthorized},
	{Target: auth.ErrUserNotFound, As: handler.ErrUnauthorized},
	{Target: auth.ErrEmailTaken, As: handler.ValidationError{"email": {"is already registered"}}},
}

func (h *APIHandler) register(ctx handler.Context, req credentials) handler.Response {
	user, err := h.passwords.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return h.fail(ctx, err)
	}
	welcome(ctx, h.mailer, h.log, user)
	if err := h.sessions.Start(ctx.ResponseWriter(), user); err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(user, handler.WithJSONStatus(http.StatusCreated))
}

func (h *APIHandler) login(ctx handler.Context, req credentials) handler.Response {
	user, err := h.passwords.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return h.fail(ctx, err)
	}
	if err := h.sessions.Start(ctx.ResponseWriter(), user); err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(user)
}

func (h *APIHandler) logout(ctx handler.Context, _ struct{}) handler.Response {
	h.sessions.End(ctx.ResponseWriter())
	return handler.Empty()
}

func (h *APIHandler) me(ctx handler.Context, _ struct{}) handler.Response {
	id, err := auth.CurrentUserID(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}
	user, err := h.users.GetUserByID(ctx, id)
	if err != nil {
		return h.fail(ctx, err)
	}
	return handler.JSON(user)
}

func (h *APIHandler) fail(ctx handler.Context, err error) handler.Response {
	mapped := handler.MapError(err, apiErrors...)
	if handler.StatusCode(mapped) >= http.StatusInternalServerError {
		h.log.ErrorContext(ctx, "auth request failed", logger.Component("account"), logger.Error(err))
	}
	return handler.JSONError(mapped)
}
