package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/jwt"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

func newSessions(t *testing.T) *auth.Sessions {
	t.Helper()
	tokens, err := jwt.New(testSecret)
	require.NoError(t, err)
	return auth.NewSessions(tokens, newCookies(t), "")
}

func TestSessions(t *testing.T) {
	t.Parallel()

	s := newSessions(t)
	user := &auth.User{ID: uuid.New(), Email: "jane@example.com"}

	rec := httptest.NewRecorder()
	require.NoError(t, s.Start(rec, user))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.DefaultSessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	id, err := s.UserID(r)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	bearer := httptest.NewRequest(http.MethodGet, "/", nil)
	bearer.Header.Set("Authorization", "Bearer "+cookies[0].Value)
	id, err = s.UserID(bearer)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	_, err = s.UserID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	rec = httptest.NewRecorder()
	s.End(rec)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Negative(t, rec.Result().Cookies()[0].MaxAge)
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	s := newSessions(t)
	user := &auth.User{ID: uuid.New(), Email: "jane@example.com"}
	rec := httptest.NewRecorder()
	require.NoError(t, s.Start(rec, user))
	session := rec.Result().Cookies()[0]

	var seen uuid.UUID
	h := auth.RequireUser(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("api without session", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/signatures", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"unauthorized"`)
	})

	t.Run("page without session", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/builder?x=1", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		loc := rec.Header().Get("Location")
		assert.True(t, strings.HasPrefix(loc, auth.LoginPath+"?next="), loc)
	})

	t.Run("with session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/signatures", nil)
		r.AddCookie(session)
		h.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, user.ID, seen)
	})
}

func TestCurrentUserID(t *testing.T) {
	t.Parallel()

	_, err := auth.CurrentUserID(context.Background())
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	id := uuid.New()
	got, err := auth.CurrentUserID(auth.WithUserID(context.Background(), id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
