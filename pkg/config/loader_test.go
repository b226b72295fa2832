package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/config"
)

type appConfig struct {
	Name    string `env:"CFGTEST_APP_NAME" envDefault:"SignatureCraft"`
	MaxLogo int    `env:"CFGTEST_LOGO_MAX_BYTES" envDefault:"2097152"`
	Search  bool   `env:"CFGTEST_SEARCH_ENABLED" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"CFGTEST_SESSION_SECRET,required"`
}

type cachedConfig struct {
	Value string `env:"CFGTEST_CACHED" envDefault:"first"`
}

func TestLoad(t *testing.T) {
	config.Reset()
	t.Setenv("CFGTEST_APP_NAME", "Acme Signatures")
	t.Setenv("CFGTEST_SEARCH_ENABLED", "true")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "Acme Signatures", cfg.Name)
	assert.Equal(t, 2097152, cfg.MaxLogo)
	assert.True(t, cfg.Search)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *appConfig
	require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("CFGTEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFGTEST_CACHED", "second")

	var wg sync.WaitGroup
	results := make([]string, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var c cachedConfig
			if err := config.Load(&c); err == nil {
				results[i] = c.Value
			}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "first", r)
	}

	config.Reset()
	var reloaded cachedConfig
	require.NoError(t, config.Load(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}
