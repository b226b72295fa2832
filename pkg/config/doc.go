// Package config loads typed configuration from environment variables.
//
// Values come from the process environment, optionally seeded from .env
// files through godotenv, and are parsed into structs with caarlos0/env tags.
// Each configuration type is parsed once and cached:
//
//	type Config struct {
//		BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Call LoadEnvFiles before the first Load to read files other than ./.env.
package config
