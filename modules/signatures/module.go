package signatures

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/binder"
	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/search"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// Mailer delivers a rendered signature to an inbox.
type Mailer interface {
	SendSignature(ctx context.Context, to, title string, rec signature.ContactRecord, client signature.Client) error
}

// UserLookup resolves the recipient of signature deliveries.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

// Options are the dependencies of the module. Index defaults to search.Noop;
// without a SendLimiter the send endpoint is not rate limited.
type Options struct {
	Store       repository.SignatureStore
	Profiles    repository.ProfileStore
	Index       search.Index
	Mailer      Mailer
	Users       UserLookup
	SendLimiter ratelimiter.RateLimiter
	Logger      *slog.Logger
}

// Module serves /api/signatures. Routes expect the user id in the request
// context (auth.RequireUser).
type Module struct {
	opts   Options
	log    *slog.Logger
	errors handler.ErrorHandler[handler.Context]
}

// New creates the module.
func New(opts Options) *Module {
	if opts.Index == nil {
		opts.Index = search.Noop{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		opts:   opts,
		log:    log,
		errors: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{}),
	}
}

// Handle returns the module router.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", wrap(m, m.list, binder.Query()))
	r.Post("/", wrap(m, m.create, binder.JSON()))
	r.Get("/search", wrap(m, m.search, binder.Query()))

	r.Route("/{id}", func(r chi.Router) {
		path := binder.Path(chi.URLParam)

		r.Get("/", wrap(m, m.get, path))
		r.Put("/", wrap(m, m.update, path, binder.JSON()))
		r.Delete("/", wrap(m, m.delete, path))
		r.Post("/default", wrap(m, m.setDefault, path))
		r.Get("/export", wrap(m, m.export, path, binder.Query()))
		r.Get("/download", wrap(m, m.download, path, binder.Query()))
		r.Get("/text", wrap(m, m.text, path))
		r.Get("/vcard", wrap(m, m.vcard, path))
		r.Get("/qr", wrap(m, m.qr, path, binder.Query()))

		var limits []func(http.Handler) http.Handler
		if m.opts.SendLimiter != nil {
			limits = append(limits, ratelimiter.Middleware(m.opts.SendLimiter,
				ratelimiter.Composite(ratelimiter.Prefix("send"), userKey),
				ratelimiter.WithLogger(m.log),
			))
		}
		r.With(limits...).Post("/send", wrap(m, m.send, path, binder.Query()))
	})

	return r
}

func wrap[R any](m *Module, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](m.errors),
	)
}

// userKey keys rate limits by the authenticated user.
func userKey(r *http.Request) string {
	if id, ok := auth.UserIDFromContext(r.Context()); ok {
		return id.String()
	}
	return ""
}
