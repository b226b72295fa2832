// Package templates serves the template catalogue and renders unsaved records
// for previews. None of its routes require a session.
package templates

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signaturecraft/binder"
	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// Module serves /api/templates and /api/render.
type Module struct {
	log    *slog.Logger
	errors handler.ErrorHandler[handler.Context]
}

// New creates the module.
func New(log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{log: log, errors: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})}
}

// Handle returns the /api/templates router.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", wrap(m, m.list, binder.Query()))
	r.Get("/{id}/preview", wrap(m, m.preview, binder.Path(chi.URLParam), binder.Query()))
	return r
}

// RenderHandler returns the POST /api/render handler.
func (m *Module) RenderHandler() http.HandlerFunc {
	return wrap(m, m.render, binder.JSON())
}

func wrap[R any](m *Module, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](m.errors),
	)
}

var errorRules = []handler.ErrorRule{
	{Target: signature.ErrTemplateNotFound, As: handler.ErrNotFound},
	{Target: signature.ErrUnknownClient, As: handler.ValidationError{"client": {"unknown email client"}}},
}

func (m *Module) fail(ctx handler.Context, err error) handler.Response {
	mapped := handler.MapError(err, errorRules...)
	if handler.StatusCode(mapped) >= http.StatusInternalServerError {
		m.log.ErrorContext(ctx, "template request failed",
			logger.Component("templates"),
			logger.Error(err),
		)
	}
	return handler.JSONError(mapped)
}
