package builder_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/modules/builder"
	"github.com/dmitrymomot/signaturecraft/modules/signatures"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

type env struct {
	handler  http.Handler
	store    *repository.MemorySignatures
	profiles *repository.MemoryProfiles
	userID   uuid.UUID
}

func newEnv(t *testing.T) *env {
	t.Helper()

	log := slog.New(slog.DiscardHandler)
	e := &env{
		store:    repository.NewMemorySignatures(),
		profiles: repository.NewMemoryProfiles(),
		userID:   uuid.New(),
	}
	sigs := signatures.New(signatures.Options{Store: e.store, Profiles: e.profiles, Logger: log})
	h := builder.New(sigs, e.profiles, log).Handle()
	e.handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), e.userID)))
	})
	return e
}

func (e *env) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (e *env) post(target, signals string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(signals))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("blank page uses profile and default template", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		require.NoError(t, e.profiles.Upsert(context.Background(), &repository.Profile{
			UserID: e.userID,
			Record: signature.ContactRecord{Company: "Acme"},
		}))

		rec := e.get("/")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := rec.Body.String()
		assert.Contains(t, body, `id="signature-preview"`)
		assert.Contains(t, body, `id="signature-text"`)
		assert.Contains(t, body, `data-bind="record.name"`)
		assert.Contains(t, body, "Acme")
		assert.Contains(t, body, signature.DefaultTemplateID)
		assert.NotContains(t, body, "/download")
	})

	t.Run("saved signature", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		sig := &repository.Signature{
			OwnerID: e.userID,
			Title:   "Work",
			Record:  signature.ContactRecord{Name: "Jane Doe", Email: "jane@acme.io", TemplateID: signature.TemplateModern},
		}
		require.NoError(t, e.store.Create(context.Background(), sig))

		rec := e.get("/?signature=" + sig.ID.String())
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "Jane Doe")
		assert.Contains(t, rec.Body.String(), "/api/signatures/"+sig.ID.String()+"/download")
	})

	t.Run("unknown signature", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		assert.Equal(t, http.StatusNotFound, e.get("/?signature="+uuid.NewString()).Code)
		assert.Equal(t, http.StatusNotFound, e.get("/?signature=nope").Code)
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	rec := e.post("/preview", `{"record":{"name":"Jane Doe","email":"jane@acme.io","templateId":"minimal"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "#signature-preview")
	assert.Contains(t, body, "#signature-text")
	assert.Contains(t, body, "Jane Doe")
}

func TestSave(t *testing.T) {
	t.Parallel()

	t.Run("validation errors are patched", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		rec := e.post("/save", `{"title":"Work","record":{"email":"not-an-email"}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "#builder-errors")
		assert.Contains(t, body, "name:")

		list, err := e.store.List(context.Background(), e.userID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("creates and redirects", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		rec := e.post("/save", `{"title":"Work","record":{"name":"Jane Doe","email":"jane@acme.io","templateId":"classic"}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		list, err := e.store.List(context.Background(), e.userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Contains(t, rec.Body.String(), "/builder?signature="+list[0].ID.String())
	})

	t.Run("updates existing", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		sig := &repository.Signature{
			OwnerID: e.userID,
			Title:   "Work",
			Record:  signature.ContactRecord{Name: "Jane Doe", Email: "jane@acme.io"},
		}
		require.NoError(t, e.store.Create(context.Background(), sig))

		rec := e.post("/save", `{"signatureId":"`+sig.ID.String()+`","title":"Home","record":{"name":"Jane Roe","email":"jane@acme.io"}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		got, err := e.store.Get(context.Background(), e.userID, sig.ID)
		require.NoError(t, err)
		assert.Equal(t, "Home", got.Title)
		assert.Equal(t, "Jane Roe", got.Record.Name)
	})
}
