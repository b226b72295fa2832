package account_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signaturecraft/modules/account"
	"github.com/dmitrymomot/signaturecraft/pkg/cookie"
	"github.com/dmitrymomot/signaturecraft/pkg/jwt"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendWelcome(ctx context.Context, to, name string) error {
	return m.Called(ctx, to, name).Error(0)
}

type fixture struct {
	users     *repository.MemoryUsers
	passwords *auth.PasswordService
	sessions  *auth.Sessions
	mailer    *mockMailer
	log       *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens, err := jwt.New(testSecret)
	require.NoError(t, err)
	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	users := repository.NewMemoryUsers()
	return &fixture{
		users:     users,
		passwords: auth.NewPasswordService(users, auth.WithBcryptCost(bcrypt.MinCost)),
		sessions:  auth.NewSessions(tokens, cookies, ""),
		mailer:    &mockMailer{},
		log:       slog.New(slog.DiscardHandler),
	}
}

func (f *fixture) router() http.Handler {
	return account.Router(account.RouterOptions{
		Password: account.NewPasswordHandler(f.passwords, f.sessions, f.mailer,
			account.WithLogger(f.log),
			account.WithGoogleLogin("/account/google/login"),
		),
	})
}

func postForm(h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.DefaultSessionCookie {
			return c
		}
	}
	return nil
}

func TestLoginPage(t *testing.T) {
	t.Parallel()

	h := newFixture(t).router()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login?next=/builder&email=jane@acme.io", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="login-form"`)
	assert.Contains(t, body, `value="jane@acme.io"`)
	assert.Contains(t, body, `name="next"`)
	assert.Contains(t, body, `href="/account/google/login"`)
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	h := f.router()
	f.mailer.On("SendWelcome", mock.Anything, "jane@acme.io", "Jane Doe").Return(errors.New("smtp down")).Once()

	t.Run("weak password shows field errors", func(t *testing.T) {
		rec := postForm(h, "/register", url.Values{"name": {"Jane"}, "email": {"jane@acme.io"}, "password": {"short"}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "field-error")
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("register starts a session", func(t *testing.T) {
		rec := postForm(h, "/register", url.Values{"name": {"Jane Doe"}, "email": {"Jane@Acme.io"}, "password": {"Secr3tPass"}})
		require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
		assert.Equal(t, account.HomePath, rec.Header().Get("Location"))
		assert.NotNil(t, sessionCookie(rec))
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := postForm(h, "/register", url.Values{"name": {"Jane"}, "email": {"jane@acme.io"}, "password": {"Secr3tPass"}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "is already registered")
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postForm(h, "/login", url.Values{"email": {"jane@acme.io"}, "password": {"Wrong1234"}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("login redirects to local next only", func(t *testing.T) {
		rec := postForm(h, "/login", url.Values{"email": {"jane@acme.io"}, "password": {"Secr3tPass"}, "next": {"/api/signatures"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/api/signatures", rec.Header().Get("Location"))
		assert.NotNil(t, sessionCookie(rec))

		rec = postForm(h, "/login", url.Values{"email": {"jane@acme.io"}, "password": {"Secr3tPass"}, "next": {"//evil.example"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, account.HomePath, rec.Header().Get("Location"))
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		rec := postForm(h, "/logout", url.Values{})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, auth.LoginPath, rec.Header().Get("Location"))
		c := sessionCookie(rec)
		require.NotNil(t, c)
		assert.Negative(t, c.MaxAge)
	})

	f.mailer.AssertExpectations(t)
}

type stubFlow struct {
	user *auth.User
	err  error
}

func (s stubFlow) Begin(http.ResponseWriter) (string, error) {
	return "https://accounts.example/auth?state=x", nil
}

func (s stubFlow) Complete(context.Context, http.ResponseWriter, *http.Request) (*auth.User, error) {
	return s.user, s.err
}

func TestGoogleHandler(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := &auth.User{ID: uuid.New(), Email: "jane@acme.io"}

	tests := []struct {
		name     string
		flow     stubFlow
		status   int
		location string
	}{
		{"signed in", stubFlow{user: user}, http.StatusSeeOther, account.HomePath},
		{"bad state", stubFlow{err: auth.ErrInvalidState}, http.StatusBadRequest, ""},
		{"unverified email", stubFlow{err: auth.ErrUnverifiedEmail}, http.StatusForbidden, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := account.Router(account.RouterOptions{
				GoogleOAuth: account.NewGoogleHandler(tt.flow, f.sessions, f.log),
			})
			req := httptest.NewRequest(http.MethodGet, "/google/callback?state=x&code=y", nil)
			req.Header.Set("Accept", "application/json")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}

	t.Run("begin redirects to the provider", func(t *testing.T) {
		t.Parallel()
		h := account.Router(account.RouterOptions{GoogleOAuth: account.NewGoogleHandler(stubFlow{}, f.sessions, f.log)})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/google/login", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "https://accounts.example/auth?state=x", rec.Header().Get("Location"))
	})
}

func TestAPIHandler(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.mailer.On("SendWelcome", mock.Anything, "jane@acme.io", "Jane").Return(nil)
	h := account.NewAPIHandler(f.passwords, f.sessions, f.users, f.mailer, nil, f.log).Handle()

	post := func(target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := post("/register", `{"name":"Jane","email":"jane@acme.io","password":"Secr3tPass"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotNil(t, sessionCookie(rec))

	var created struct {
		Data auth.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "jane@acme.io", created.Data.Email)

	rec = post("/register", `{"name":"Jane","email":"jane@acme.io","password":"Secr3tPass"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = post("/login", `{"email":"jane@acme.io","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = post("/login", `{"email":"jane@acme.io","password":"Secr3tPass"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	t.Run("me", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Accept", "application/json")
		req = req.WithContext(auth.WithUserID(req.Context(), created.Data.ID))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "jane@acme.io")

		rec = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Accept", "application/json")
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
