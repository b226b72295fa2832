// Package testdata serves named preview records and seeds them from the
// built-in sample personas.
package testdata

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/binder"
	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/validator"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/samples"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

const maxNameLength = 120

// Module serves /api/test-data.
type Module struct {
	store  repository.TestDataStore
	log    *slog.Logger
	errors handler.ErrorHandler[handler.Context]
}

// New creates the module.
func New(store repository.TestDataStore, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		store:  store,
		log:    log,
		errors: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{}),
	}
}

type emptyRequest struct{}

type idRequest struct {
	ID string `path:"id"`
}

type upsertRequest struct {
	ID     string                  `path:"id" json:"-"`
	Name   string                  `json:"name"`
	Record signature.ContactRecord `json:"record"`
}

// Handle returns the module router.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)

	r.Get("/", wrap(m, m.list))
	r.Post("/", wrap(m, m.create, binder.JSON()))
	r.Post("/seed", wrap(m, m.seed))
	r.Get("/{id}", wrap(m, m.get, path))
	r.Put("/{id}", wrap(m, m.update, path, binder.JSON()))
	r.Delete("/{id}", wrap(m, m.delete, path))
	return r
}

func wrap[R any](m *Module, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](m.errors),
	)
}

func (m *Module) list(ctx handler.Context, _ emptyRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	items, err := m.store.List(ctx, ownerID)
	if err != nil {
		return m.fail(ctx, err)
	}
	if items == nil {
		items = []repository.TestData{}
	}
	return handler.JSON(items)
}

func (m *Module) get(ctx handler.Context, req idRequest) handler.Response {
	td, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(td)
}

func (m *Module) create(ctx handler.Context, req upsertRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	name, rec, err := clean(req)
	if err != nil {
		return m.fail(ctx, err)
	}
	td := &repository.TestData{ID: uuid.New(), OwnerID: ownerID, Name: name, Record: rec}
	if err := m.store.Create(ctx, td); err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(td, handler.WithJSONStatus(http.StatusCreated))
}

func (m *Module) update(ctx handler.Context, req upsertRequest) handler.Response {
	td, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	name, rec, err := clean(req)
	if err != nil {
		return m.fail(ctx, err)
	}
	td.Name, td.Record = name, rec
	if err := m.store.Update(ctx, td); err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(td)
}

func (m *Module) delete(ctx handler.Context, req idRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	id, err := parseID(req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	if err := m.store.Delete(ctx, ownerID, id); err != nil {
		return m.fail(ctx, err)
	}
	return handler.Empty()
}

// seed creates one configuration per sample persona, skipping names the user
// already has.
func (m *Module) seed(ctx handler.Context, _ emptyRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	personas, err := samples.All()
	if err != nil {
		return m.fail(ctx, err)
	}
	existing, err := m.store.List(ctx, ownerID)
	if err != nil {
		return m.fail(ctx, err)
	}
	taken := make(map[string]bool, len(existing))
	for _, td := range existing {
		taken[td.Name] = true
	}

	created := make([]repository.TestData, 0, len(personas))
	for _, p := range personas {
		if taken[p.Label] {
			continue
		}
		td := &repository.TestData{ID: uuid.New(), OwnerID: ownerID, Name: p.Label, Record: p.Record}
		if err := m.store.Create(ctx, td); err != nil {
			return m.fail(ctx, err)
		}
		created = append(created, *td)
	}

	m.log.InfoContext(ctx, "test data seeded",
		logger.Component("testdata"),
		logger.UserID(ownerID),
		slog.Int("created", len(created)),
	)
	return handler.JSON(created, handler.WithJSONStatus(http.StatusCreated))
}

func (m *Module) load(ctx handler.Context, rawID string) (*repository.TestData, error) {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return m.store.Get(ctx, ownerID, id)
}

// clean sanitizes the request. Records may be incomplete so previews can
// exercise placeholders.
func clean(req upsertRequest) (string, signature.ContactRecord, error) {
	name := strings.TrimSpace(req.Name)
	rec := req.Record.Sanitize()

	ve := handler.NewValidationError()
	if err := validator.Apply(
		validator.RequiredString("name", name),
		validator.MaxLenString("name", name, maxNameLength),
	); err != nil {
		ve, _ = handler.AsValidationError(err)
	}
	if err := rec.ValidatePartial(); err != nil {
		rv, ok := handler.AsValidationError(err)
		if !ok {
			return "", rec, err
		}
		for field, msgs := range rv {
			for _, msg := range msgs {
				ve.Add("record."+field, msg)
			}
		}
	}
	if !ve.IsEmpty() {
		return "", rec, ve
	}
	return name, rec, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Join(repository.ErrNotFound, err)
	}
	return id, nil
}

func (m *Module) fail(ctx handler.Context, err error) handler.Response {
	mapped := handler.MapError(err,
		handler.ErrorRule{Target: repository.ErrNotFound, As: handler.ErrNotFound},
		handler.ErrorRule{Target: repository.ErrConflict, As: handler.ErrConflict},
		handler.ErrorRule{Target: auth.ErrUnauthenticated, As: handler.ErrUnauthorized},
	)
	if handler.StatusCode(mapped) >= http.StatusInternalServerError {
		m.log.ErrorContext(ctx, "test data request failed", logger.Component("testdata"), logger.Error(err))
	}
	return handler.JSONError(mapped)
}
