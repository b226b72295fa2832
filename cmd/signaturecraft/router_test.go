package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/cookie"
	"github.com/dmitrymomot/signaturecraft/pkg/email"
	"github.com/dmitrymomot/signaturecraft/pkg/environment"
	"github.com/dmitrymomot/signaturecraft/pkg/file"
	"github.com/dmitrymomot/signaturecraft/pkg/jwt"
	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/mailer"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/search"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	log := slog.New(slog.DiscardHandler)
	cfg := appConfig{Name: "SignatureCraft", BaseURL: "http://localhost"}
	cfg.Storage.MaxBytes = 1 << 20
	cfg.Storage.LocalURL = "/uploads/"

	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	tokens, err := jwt.New(testSecret)
	require.NoError(t, err)
	storage, err := file.NewLocalStorage(t.TempDir(), cfg.Storage.LocalURL)
	require.NoError(t, err)

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)
	cfg.LoginLimit = ratelimiter.Config{Capacity: 5, RefillRate: 1, RefillInterval: time.Minute}
	cfg.SendLimit = cfg.LoginLimit
	cfg.LogoLimit = cfg.LoginLimit
	lim, err := newLimiters(store, cfg)
	require.NoError(t, err)

	users := repository.NewMemoryUsers()
	return newRouter(dependencies{
		cfg:        cfg,
		log:        log,
		env:        environment.Development,
		users:      users,
		signatures: repository.NewMemorySignatures(),
		profiles:   repository.NewMemoryProfiles(),
		testData:   repository.NewMemoryTestData(),
		index:      search.Noop{},
		mailer:     mailer.New(email.NewDevSender(t.TempDir()), cfg.Name, cfg.BaseURL, log),
		storage:    storage,
		sessions:   auth.NewSessions(tokens, cookies, ""),
		passwords:  auth.NewPasswordService(users, auth.WithBcryptCost(4)),
		limiters:   lim,
	})
}

func TestRouter(t *testing.T) {
	t.Parallel()

	r := testRouter(t)

	tests := []struct {
		name     string
		method   string
		target   string
		accept   string
		status   int
		location string
	}{
		{name: "liveness", method: http.MethodGet, target: "/health/live", status: http.StatusOK},
		{name: "readiness without probes", method: http.MethodGet, target: "/health/ready", status: http.StatusOK},
		{name: "root redirects to builder", method: http.MethodGet, target: "/", status: http.StatusSeeOther, location: "/builder"},
		{name: "login page", method: http.MethodGet, target: "/account/login", status: http.StatusOK},
		{name: "templates are public", method: http.MethodGet, target: "/api/templates", accept: "application/json", status: http.StatusOK},
		{name: "signatures need a session", method: http.MethodGet, target: "/api/signatures", accept: "application/json", status: http.StatusUnauthorized},
		{name: "profile needs a session", method: http.MethodGet, target: "/api/profile", accept: "application/json", status: http.StatusUnauthorized},
		{name: "builder redirects to login", method: http.MethodGet, target: "/builder", status: http.StatusSeeOther, location: "/account/login?next=%2Fbuilder"},
		{name: "google disabled", method: http.MethodGet, target: "/account/google/login", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get("Location"))
			}
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}
