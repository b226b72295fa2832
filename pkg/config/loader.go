package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache maps a config type to its parsed value.
	cache   sync.Map
	parseMu sync.Mutex

	envFilesOnce sync.Once
)

// LoadEnvFiles reads the given .env files into the process environment.
// Variables already set are not overridden. With no arguments it reads ./.env
// and ignores a missing file.
func LoadEnvFiles(files ...string) error {
	var err error
	envFilesOnce.Do(func() {
		if len(files) == 0 {
			_ = godotenv.Load()
			return
		}
		if loadErr := godotenv.Load(files...); loadErr != nil {
			err = errors.Join(ErrLoadingFile, loadErr)
		}
	})
	return err
}

// Load parses the environment into v. The first successful parse of a type
// is cached and copied into later calls.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	_ = LoadEnvFiles()

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	parseMu.Lock()
	defer parseMu.Unlock()

	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	parsed, err := env.ParseAs[T]()
	if err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.Store(key, parsed)
	*v = parsed
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops all cached configurations. Used in tests.
func Reset() {
	parseMu.Lock()
	defer parseMu.Unlock()
	cache.Clear()
}
