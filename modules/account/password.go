package account

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signaturecraft/binder"
	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

// PasswordHandler serves the login, registration and logout pages.
type PasswordHandler struct {
	passwords    Authenticator
	sessions     SessionManager
	mailer       WelcomeMailer
	views        *PasswordViews
	loginLimiter ratelimiter.RateLimiter
	googleLogin  string
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// PasswordViews renders the password pages. Page components render a full
// document, Form components only the form region patched by datastar.
type PasswordViews struct {
	LoginPage    func(LoginParams) templ.Component
	LoginForm    func(LoginParams) templ.Component
	RegisterPage func(RegisterParams) templ.Component
	RegisterForm func(RegisterParams) templ.Component
}

// PasswordOption configures a PasswordHandler.
type PasswordOption func(*PasswordHandler)

// WithViews replaces the default views.
func WithViews(v *PasswordViews) PasswordOption {
	return func(h *PasswordHandler) {
		h.views = v
	}
}

// WithLoginLimiter limits login attempts per client IP.
func WithLoginLimiter(l ratelimiter.RateLimiter) PasswordOption {
	return func(h *PasswordHandler) {
		h.loginLimiter = l
	}
}

// WithGoogleLogin links the login page to the Google sign-in route.
func WithGoogleLogin(path string) PasswordOption {
	return func(h *PasswordHandler) {
		h.googleLogin = path
	}
}

// WithLogger sets the handler logger.
func WithLogger(log *slog.Logger) PasswordOption {
	return func(h *PasswordHandler) {
		h.log = log
	}
}

// NewPasswordHandler creates the password pages handler. mailer may be nil.
func NewPasswordHandler(passwords Authenticator, sessions SessionManager, mailer WelcomeMailer, opts ...PasswordOption) *PasswordHandler {
	h := &PasswordHandler{
		passwords: passwords,
		sessions:  sessions,
		mailer:    mailer,
		views:     DefaultPasswordViews(),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.errorHandler = handler.NewErrorHandler(h.log, handler.ErrorHandlerConfig{})
	return h
}

func (h *PasswordHandler) Handle() http.Handler {
	r := chi.NewRouter()

	login := handler.Wrap(h.login,
		handler.WithBinders[handler.Context, LoginRequest](
			binder.Query(),
			binder.Form(), // not applicable for GET
		),
		handler.WithErrorHandler[handler.Context, LoginRequest](h.errorHandler),
	)
	r.Get("/login", login)
	r.With(limitLogins(h.loginLimiter, h.log)...).Post("/login", login)

	r.HandleFunc("/register", handler.Wrap(h.register,
		handler.WithBinders[handler.Context, RegisterRequest](
			binder.Query(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, RegisterRequest](h.errorHandler),
	))

	r.Post("/logout", handler.Wrap(h.logout,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))

	return r
}

// LoginRequest handles both GET (query params) and POST (form data).
type LoginRequest struct {
	Email    string `form:"email" query:"email"`
	Password string `form:"password"`
	Next     string `form:"next" query:"next"`
}

// LoginParams is the data of the login page and form.
type LoginParams struct {
	Email       string
	Next        string
	Error       string
	GoogleLogin string
}

func (h *PasswordHandler) login(ctx handler.Context, req LoginRequest) handler.Response {
	params := LoginParams{Email: req.Email, Next: req.Next, GoogleLogin: h.googleLogin}
	if ctx.Request().Method != http.MethodPost {
		return h.loginView(params)
	}

	user, err := h.passwords.Authenticate(ctx, req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		params.Error = "Invalid email or password"
		return h.loginView(params)
	}
	if err != nil {
		return handler.Fail(err)
	}
	if err := h.sessions.Start(ctx.ResponseWriter(), user); err != nil {
		return handler.Fail(err)
	}

	h.log.InfoContext(ctx, "user signed in",
		logger.Component("account"),
		logger.UserID(user.ID),
		logger.Event("login"),
	)
	return handler.Redirect(handler.SafeRedirectPath(req.Next, HomePath))
}

func (h *PasswordHandler) loginView(p LoginParams) handler.Response {
	return handler.TemplPartial(h.views.LoginForm(p), h.views.LoginPage(p), handler.WithTarget("#login-form"))
}

// RegisterRequest handles both GET (query params) and POST (form data).
type RegisterRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email" query:"email"`
	Password string `form:"password"`
	Next     string `form:"next" query:"next"`
}

// RegisterParams is the data of the registration page and form.
type RegisterParams struct {
	Name   string
	Email  string
	Next   string
	Error  string
	Fields handler.ValidationError
}

func (h *PasswordHandler) register(ctx handler.Context, req RegisterRequest) handler.Response {
	params := RegisterParams{Name: req.Name, Email: req.Email, Next: req.Next}
	if ctx.Request().Method != http.MethodPost {
		return h.registerView(params)
	}

	user, err := h.passwords.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if ve, ok := handler.AsValidationError(err); ok {
			params.Fields = ve
			return h.registerView(params)
		}
		if errors.Is(err, auth.ErrEmailTaken) {
			params.Fields = handler.ValidationError{"email": {"is already registered"}}
			return h.registerView(params)
		}
		return handler.Fail(err)
	}

	welcome(ctx, h.mailer, h.log, user)
	if err := h.sessions.Start(ctx.ResponseWriter(), user); err != nil {
		return handler.Fail(err)
	}
	return handler.Redirect(handler.SafeRedirectPath(req.Next, HomePath))
}

func (h *PasswordHandler) registerView(p RegisterParams) handler.Response {
	return handler.TemplPartial(h.views.RegisterForm(p), h.views.RegisterPage(p), handler.WithTarget("#register-form"))
}

func (h *PasswordHandler) logout(ctx handler.Context, _ struct{}) handler.Response {
	h.sessions.End(ctx.ResponseWriter())
	return handler.Redirect(auth.LoginPath)
}
