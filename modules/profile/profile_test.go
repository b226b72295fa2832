package profile_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/modules/profile"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
)

func do(t *testing.T, h http.Handler, userID uuid.UUID, method, body string) (*httptest.ResponseRecorder, repository.Profile) {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if userID != uuid.Nil {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out struct {
		Data repository.Profile `json:"data"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out.Data
}

func TestProfile(t *testing.T) {
	t.Parallel()

	store := repository.NewMemoryProfiles()
	h := profile.New(store, slog.New(slog.DiscardHandler)).Handle()
	userID := uuid.New()

	rec, p := do(t, h, userID, http.MethodGet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, p.UserID)
	assert.Empty(t, p.Record.Company)

	rec, p = do(t, h, userID, http.MethodPut, `{"record":{"company":" Acme ","primaryColor":"1A365D"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Acme", p.Record.Company)
	assert.Equal(t, "#1a365d", p.Record.PrimaryColor)

	rec, p = do(t, h, userID, http.MethodGet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme", p.Record.Company)

	rec, _ = do(t, h, userID, http.MethodPut, `{"record":{"email":"not-an-email"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, h, uuid.Nil, http.MethodGet, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
