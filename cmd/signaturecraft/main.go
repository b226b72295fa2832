// Command signaturecraft serves the signature builder and its JSON API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/signaturecraft/internal/db/migrations"
	"github.com/dmitrymomot/signaturecraft/pkg/clientip"
	"github.com/dmitrymomot/signaturecraft/pkg/config"
	"github.com/dmitrymomot/signaturecraft/pkg/cookie"
	"github.com/dmitrymomot/signaturecraft/pkg/email"
	"github.com/dmitrymomot/signaturecraft/pkg/environment"
	"github.com/dmitrymomot/signaturecraft/pkg/file"
	"github.com/dmitrymomot/signaturecraft/pkg/httpserver"
	"github.com/dmitrymomot/signaturecraft/pkg/jwt"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/opensearch"
	"github.com/dmitrymomot/signaturecraft/pkg/pg"
	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
	"github.com/dmitrymomot/signaturecraft/pkg/redis"
	"github.com/dmitrymomot/signaturecraft/pkg/requestid"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/mailer"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("signaturecraft stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			auth.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()
	if cfg.PG.AutoMigrate {
		if err := pg.Migrate(ctx, pool, cfg.PG, migrations.FS, log); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	probes := []httpserver.Probe{{Name: "postgres", Check: pg.Healthcheck(pool)}}

	var limiterStore ratelimiter.Store
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		limiterStore = ratelimiter.NewRedisStore(client, "signaturecraft:ratelimit")
		probes = append(probes, httpserver.Probe{Name: "redis", Check: redis.Healthcheck(client)})
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		limiterStore = mem
		log.WarnContext(ctx, "redis is not configured, rate limits are per process", logger.Component("ratelimiter"))
	}
	limiters, err := newLimiters(limiterStore, cfg)
	if err != nil {
		return err
	}

	var index search.Index = search.Noop{}
	if cfg.SearchEnabled {
		client, err := opensearch.New(ctx, cfg.OpenSearch)
		if err != nil {
			return fmt.Errorf("connect opensearch: %w", err)
		}
		idx, err := search.NewOpenSearch(ctx, client, cfg.OpenSearch.Index("signatures"), log)
		if err != nil {
			return fmt.Errorf("setup search index: %w", err)
		}
		index = idx
		probes = append(probes, httpserver.Probe{Name: "opensearch", Check: opensearch.Healthcheck(client)})
	}

	sender, err := email.New(cfg.Email)
	if err != nil {
		return fmt.Errorf("email sender: %w", err)
	}
	if !cfg.Email.UsePostmark() {
		log.InfoContext(ctx, "postmark is not configured, emails are written to disk",
			logger.Component("email"),
			slog.String("dir", cfg.Email.DevDir),
		)
	}

	storage, err := file.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("logo storage: %w", err)
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return fmt.Errorf("cookies: %w", err)
	}
	tokens, err := jwt.New(cfg.SessionSecret, jwt.WithIssuer(cfg.Name))
	if err != nil {
		return fmt.Errorf("session tokens: %w", err)
	}

	users := repository.NewUsers(pool)
	deps := dependencies{
		cfg:        cfg,
		log:        log,
		env:        env,
		users:      users,
		signatures: repository.NewSignatures(pool),
		profiles:   repository.NewProfiles(pool),
		testData:   repository.NewTestDataConfigs(pool),
		index:      index,
		mailer:     mailer.New(sender, cfg.Name, cfg.BaseURL, log),
		storage:    storage,
		sessions:   auth.NewSessions(tokens, cookies, ""),
		passwords:  auth.NewPasswordService(users, auth.WithBcryptCost(cfg.BcryptCost), auth.WithPasswordLogger(log)),
		limiters:   limiters,
		probes:     probes,
	}
	if cfg.Google.Enabled() {
		deps.oauth = auth.NewOAuthService(auth.NewGoogleProvider(cfg.Google), users, cookies, cfg.Google.StateTTL, log)
	}

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, newRouter(deps)); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type limiters struct {
	login ratelimiter.RateLimiter
	send  ratelimiter.RateLimiter
	logo  ratelimiter.RateLimiter
}

func newLimiters(store ratelimiter.Store, cfg appConfig) (limiters, error) {
	var (
		l   limiters
		err error
	)
	if l.login, err = ratelimiter.NewBucket(store, cfg.LoginLimit); err != nil {
		return l, fmt.Errorf("login limiter: %w", err)
	}
	if l.send, err = ratelimiter.NewBucket(store, cfg.SendLimit); err != nil {
		return l, fmt.Errorf("send limiter: %w", err)
	}
	if l.logo, err = ratelimiter.NewBucket(store, cfg.LogoLimit); err != nil {
		return l, fmt.Errorf("logo limiter: %w", err)
	}
	return l, nil
}
