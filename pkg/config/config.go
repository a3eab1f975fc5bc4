// Package config fills tagged structs from the process environment.
//
// Values come from real environment variables, optionally seeded from .env
// files through github.com/joho/godotenv, and are decoded with
// github.com/caarlos0/env/v11:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load parses each struct type once per process and serves later calls from a
// cache. Parse skips the cache.
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
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> *cacheEntry
)

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ".env" from the working directory and ignores a missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFiles, err)
	}
	return nil
}

// Load fills v from the environment. The default .env file is read on the
// first call. Each type is parsed once; failures are cached as well.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() { _ = LoadEnv() })

	key := reflect.TypeFor[T]()
	actual, _ := cache.LoadOrStore(key, &cacheEntry{})
	entry := actual.(*cacheEntry)
	entry.once.Do(func() {
		var parsed T
		entry.err = Parse(&parsed)
		entry.value = parsed
	})
	if entry.err != nil {
		return entry.err
	}
	*v = entry.value.(T)
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Parse fills v from the current environment, bypassing the cache.
func Parse[T any](v *T, opts ...env.Options) error {
	if v == nil {
		return ErrNilPointer
	}
	var err error
	if len(opts) > 0 {
		err = env.ParseWithOptions(v, opts[0])
	} else {
		err = env.Parse(v)
	}
	if err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Reset drops every cached configuration. Meant for tests.
func Reset() {
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}
