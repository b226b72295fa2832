package cookie

import (
	"net/http"
	"strings"
)

// Config is read from COOKIE_* environment variables.
// Secrets is a comma separated list; the first entry signs new cookies and
// the rest are still accepted when reading.
type Config struct {
	Secrets  string `env:"COOKIE_SECRETS,required"`
	Domain   string `env:"COOKIE_DOMAIN"`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:"lax"`
}

// NewFromConfig creates a Manager from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	base := []Option{
		WithSecure(cfg.Secure),
		WithSameSite(parseSameSite(cfg.SameSite)),
	}
	if cfg.Domain != "" {
		base = append(base, WithDomain(cfg.Domain))
	}
	return New(splitSecrets(cfg.Secrets), append(base, opts...)...)
}

func splitSecrets(s string) []string {
	var secrets []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			secrets = append(secrets, part)
		}
	}
	return secrets
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
