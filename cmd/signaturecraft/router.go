package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/modules/account"
	"github.com/dmitrymomot/signaturecraft/modules/builder"
	"github.com/dmitrymomot/signaturecraft/modules/logo"
	"github.com/dmitrymomot/signaturecraft/modules/profile"
	"github.com/dmitrymomot/signaturecraft/modules/signatures"
	"github.com/dmitrymomot/signaturecraft/modules/templates"
	"github.com/dmitrymomot/signaturecraft/modules/testdata"
	"github.com/dmitrymomot/signaturecraft/pkg/clientip"
	"github.com/dmitrymomot/signaturecraft/pkg/environment"
	"github.com/dmitrymomot/signaturecraft/pkg/file"
	"github.com/dmitrymomot/signaturecraft/pkg/httpserver"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/requestid"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/mailer"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/search"
)

type dependencies struct {
	cfg        appConfig
	log        *slog.Logger
	env        environment.Environment
	users      auth.Storage
	signatures repository.SignatureStore
	profiles   repository.ProfileStore
	testData   repository.TestDataStore
	index      search.Index
	mailer     *mailer.Mailer
	storage    file.Storage
	sessions   *auth.Sessions
	passwords  *auth.PasswordService
	oauth      *auth.OAuthService // nil when Google sign-in is disabled
	limiters   limiters
	probes     []httpserver.Probe
}

func newRouter(d dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(d.env),
		logger.Middleware(d.log),
		auth.LoadUser(d.sessions),
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.cfg.HTTP.ProbeTimeout, d.probes...))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_ = handler.Redirect(account.HomePath).Render(w, r)
	})

	accountOpts := account.RouterOptions{}
	passwordOpts := []account.PasswordOption{
		account.WithLoginLimiter(d.limiters.login),
		account.WithLogger(d.log),
	}
	if d.oauth != nil {
		accountOpts.GoogleOAuth = account.NewGoogleHandler(d.oauth, d.sessions, d.log)
		passwordOpts = append(passwordOpts, account.WithGoogleLogin("/account/google/login"))
	}
	accountOpts.Password = account.NewPasswordHandler(d.passwords, d.sessions, d.mailer, passwordOpts...)
	r.Mount("/account", account.Router(accountOpts))
	r.Mount("/api/auth", account.NewAPIHandler(d.passwords, d.sessions, d.users, d.mailer, d.limiters.login, d.log).Handle())

	tpl := templates.New(d.log)
	r.Mount("/api/templates", tpl.Handle())
	r.Post("/api/render", tpl.RenderHandler())

	sigs := signatures.New(signatures.Options{
		Store:       d.signatures,
		Profiles:    d.profiles,
		Index:       d.index,
		Mailer:      d.mailer,
		Users:       d.users,
		SendLimiter: d.limiters.send,
		Logger:      d.log,
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(d.sessions))
		r.Mount("/api/signatures", sigs.Handle())
		r.Mount("/api/profile", profile.New(d.profiles, d.log).Handle())
		r.Mount("/api/test-data", testdata.New(d.testData, d.log).Handle())
		r.Mount("/api/logo", logo.New(d.storage,
			logo.WithMaxBytes(d.cfg.Storage.MaxBytes),
			logo.WithRateLimiter(d.limiters.logo),
			logo.WithLogger(d.log),
		).Handle())
		r.Mount("/builder", builder.New(sigs, d.profiles, d.log).Handle())
	})

	if local, ok := d.storage.(*file.LocalStorage); ok {
		r.Handle(strings.TrimSuffix(d.cfg.Storage.LocalURL, "/")+"/*", local.Handler())
	}

	return r
}
