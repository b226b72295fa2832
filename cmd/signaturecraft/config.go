package main

import (
	"github.com/dmitrymomot/signaturecraft/pkg/cookie"
	"github.com/dmitrymomot/signaturecraft/pkg/email"
	"github.com/dmitrymomot/signaturecraft/pkg/file"
	"github.com/dmitrymomot/signaturecraft/pkg/httpserver"
	"github.com/dmitrymomot/signaturecraft/pkg/opensearch"
	"github.com/dmitrymomot/signaturecraft/pkg/pg"
	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
	"github.com/dmitrymomot/signaturecraft/pkg/redis"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Name    string `env:"APP_NAME" envDefault:"SignatureCraft"`
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// SessionSecret signs session tokens and must be at least 32 bytes.
	SessionSecret string `env:"SESSION_SECRET,required"`
	BcryptCost    int    `env:"BCRYPT_COST" envDefault:"12"`

	SearchEnabled bool `env:"SEARCH_ENABLED" envDefault:"false"`

	LoginLimit ratelimiter.Config `envPrefix:"RATE_LIMIT_LOGIN_"`
	SendLimit  ratelimiter.Config `envPrefix:"RATE_LIMIT_SEND_"`
	LogoLimit  ratelimiter.Config `envPrefix:"RATE_LIMIT_LOGO_"`

	HTTP       httpserver.Config
	PG         pg.Config
	Redis      redis.Config
	OpenSearch opensearch.Config
	Email      email.Config
	Storage    file.Config
	Cookie     cookie.Config
	Google     auth.GoogleConfig
}
