// Package profile serves the default contact values of the signed-in user.
package profile

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signaturecraft/binder"
	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// Module serves /api/profile.
type Module struct {
	store  repository.ProfileStore
	log    *slog.Logger
	errors handler.ErrorHandler[handler.Context]
}

// New creates the module.
func New(store repository.ProfileStore, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		store:  store,
		log:    log,
		errors: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{}),
	}
}

type getRequest struct{}

type putRequest struct {
	Record signature.ContactRecord `json:"record"`
}

// Handle returns the module router.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", handler.Wrap(m.get,
		handler.WithErrorHandler[handler.Context, getRequest](m.errors),
	))
	r.Put("/", handler.Wrap(m.put,
		handler.WithBinders[handler.Context, putRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, putRequest](m.errors),
	))
	return r
}

// get returns the stored profile, or an empty one for users who never saved it.
func (m *Module) get(ctx handler.Context, _ getRequest) handler.Response {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	p, err := m.store.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return handler.JSON(repository.Profile{UserID: userID})
	}
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(p)
}

func (m *Module) put(ctx handler.Context, req putRequest) handler.Response {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	rec := req.Record.Sanitize()
	if err := rec.ValidatePartial(); err != nil {
		return m.fail(ctx, err)
	}

	p := &repository.Profile{UserID: userID, Record: rec}
	if err := m.store.Upsert(ctx, p); err != nil {
		return m.fail(ctx, err)
	}
	m.log.InfoContext(ctx, "profile saved", logger.Component("profile"), logger.UserID(userID))
	return handler.JSON(p)
}

func (m *Module) fail(ctx handler.Context, err error) handler.Response {
	mapped := handler.MapError(err, handler.ErrorRule{Target: auth.ErrUnauthenticated, As: handler.ErrUnauthorized})
	if handler.StatusCode(mapped) >= http.StatusInternalServerError {
		m.log.ErrorContext(ctx, "profile request failed", logger.Component("profile"), logger.Error(err))
	}
	return handler.JSONError(mapped)
}
