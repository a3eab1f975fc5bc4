package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/uadetect/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedConfig struct {
	Name    string        `env:"CFG_TEST_NAME" envDefault:"default"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type prefixedConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

func TestLoad(t *testing.T) {
	t.Cleanup(config.Reset)

	t.Setenv("CFG_TEST_NAME", "first")
	var cfg cachedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	t.Run("served from cache", func(t *testing.T) {
		t.Setenv("CFG_TEST_NAME", "second")
		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Name)
	})

	t.Run("reset clears the cache", func(t *testing.T) {
		t.Setenv("CFG_TEST_NAME", "third")
		config.Reset()
		var fresh cachedConfig
		require.NoError(t, config.Load(&fresh))
		assert.Equal(t, "third", fresh.Name)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Cleanup(config.Reset)

	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilPointer)

	os.Unsetenv("CFG_TEST_REQUIRED")
	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestParse(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")

	var cfg prefixedConfig
	require.NoError(t, config.Parse(&cfg, env.Options{Prefix: "APP_"}))
	assert.Equal(t, ":9090", cfg.Addr)

	var plain prefixedConfig
	require.NoError(t, config.Parse(&plain))
	assert.Equal(t, ":8080", plain.Addr)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("CFG_TEST_FROM_FILE=from-file\nCFG_TEST_PRESET=file\n"), 0o600))

	t.Setenv("CFG_TEST_PRESET", "process")
	t.Cleanup(func() { os.Unsetenv("CFG_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnv(file))
	assert.Equal(t, "from-file", os.Getenv("CFG_TEST_FROM_FILE"))
	assert.Equal(t, "process", os.Getenv("CFG_TEST_PRESET"))

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(dir, "missing.env")), config.ErrLoadingEnvFiles)
}
