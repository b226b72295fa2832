// Package builder serves the interactive signature builder page. Form inputs
// are bound to datastar signals; every change posts the signals back and the
// server patches the rendered signature into the page.
package builder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/binder"
	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// Saver persists signatures built on the page.
type Saver interface {
	Save(ctx context.Context, ownerID, id uuid.UUID, title string, rec signature.ContactRecord) (*repository.Signature, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*repository.Signature, error)
}

// Module serves /builder.
type Module struct {
	saver    Saver
	profiles repository.ProfileStore
	log      *slog.Logger
	errors   handler.ErrorHandler[handler.Context]
}

// New creates the module. profiles may be nil.
func New(saver Saver, profiles repository.ProfileStore, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		saver:    saver,
		profiles: profiles,
		log:      log,
		errors:   handler.NewErrorHandler(log, handler.ErrorHandlerConfig{}),
	}
}

// Handle returns the module router. Routes expect auth.RequireUser.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", handler.Wrap(m.page,
		handler.WithBinders[handler.Context, pageRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, pageRequest](m.errors),
	))
	r.Post("/preview", handler.Wrap(m.preview,
		handler.WithBinders[handler.Context, Signals](binder.Signals()),
		handler.WithErrorHandler[handler.Context, Signals](m.errors),
	))
	r.Post("/save", handler.Wrap(m.save,
		handler.WithBinders[handler.Context, Signals](binder.Signals()),
		handler.WithErrorHandler[handler.Context, Signals](m.errors),
	))
	return r
}

// Signals is the client state of the builder page.
type Signals struct {
	SignatureID string                  `json:"signatureId"`
	Title       string                  `json:"title"`
	Record      signature.ContactRecord `json:"record"`
}

type pageRequest struct {
	Signature string `query:"signature"`
	Template  string `query:"template"`
}

func (m *Module) page(ctx handler.Context, req pageRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return handler.Fail(handler.ErrUnauthorized)
	}

	var state Signals
	if req.Signature != "" {
		id, err := uuid.Parse(req.Signature)
		if err != nil {
			return handler.Fail(handler.ErrNotFound)
		}
		sig, err := m.saver.Get(ctx, ownerID, id)
		if errors.Is(err, repository.ErrNotFound) {
			return handler.Fail(handler.ErrNotFound)
		}
		if err != nil {
			return handler.Fail(err)
		}
		state = Signals{SignatureID: sig.ID.String(), Title: sig.Title, Record: sig.Record}
	} else if m.profiles != nil {
		p, err := m.profiles.Get(ctx, ownerID)
		switch {
		case err == nil:
			state.Record = p.Apply(state.Record)
		case !errors.Is(err, repository.ErrNotFound):
			return handler.Fail(err)
		}
	}

	if req.Template != "" {
		state.Record.TemplateID = req.Template
	}
	if state.Record.TemplateID == "" {
		state.Record.TemplateID = signature.DefaultTemplateID
	}

	return handler.Templ(Page(ctx, state))
}

func (m *Module) preview(ctx handler.Context, s Signals) handler.Response {
	rec := s.Record.Sanitize()
	return handler.TemplMulti(
		handler.Patch(Preview(ctx, rec), handler.WithTarget("#signature-preview"), handler.WithPatchMode(handler.PatchInner)),
		handler.Patch(PlainText(rec), handler.WithTarget("#signature-text"), handler.WithPatchMode(handler.PatchInner)),
		handler.Patch(Errors(nil), handler.WithTarget("#builder-errors"), handler.WithPatchMode(handler.PatchInner)),
	)
}

func (m *Module) save(ctx handler.Context, s Signals) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return handler.Fail(handler.ErrUnauthorized)
	}

	id := uuid.Nil
	if s.SignatureID != "" {
		if id, err = uuid.Parse(s.SignatureID); err != nil {
			return handler.Fail(handler.ErrNotFound)
		}
	}

	sig, err := m.saver.Save(ctx, ownerID, id, s.Title, s.Record)
	if err != nil {
		if ve, ok := handler.AsValidationError(err); ok {
			return handler.Templ(Errors(ve), handler.WithTarget("#builder-errors"), handler.WithPatchMode(handler.PatchInner))
		}
		if errors.Is(err, repository.ErrNotFound) {
			return handler.Fail(handler.ErrNotFound)
		}
		return handler.Fail(err)
	}

	m.log.InfoContext(ctx, "signature saved from builder",
		logger.Component("builder"),
		logger.SignatureID(sig.ID),
	)
	return handler.Redirect("/builder?signature=" + sig.ID.String())
}
