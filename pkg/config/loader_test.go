package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soapkit/pkg/config"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
	"SOAP_DICTIONARY", "SOAP_CLASSIFIER", "SOAP_CACHE_SIZE", "SOAP_CUSTOM_FILTERS",
	"SERIALIZE_INITIAL_CAPACITY", "SERIALIZE_MAX_CAPACITY", "SERIALIZE_COMPRESSION",
}

// clearEnv unsets every config key and restores the previous values afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(key) })
		}
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFormat)
	assert.Equal(t, 256, cfg.Soap.CacheSize)
	assert.Empty(t, cfg.Soap.Dictionary)
	assert.Equal(t, 1024, cfg.Serialize.InitialCapacity)
	assert.Equal(t, 64<<20, cfg.Serialize.MaxCapacity)
	assert.Equal(t, "zstd", cfg.Serialize.Compression)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOAP_CACHE_SIZE", "0")
	t.Setenv("SERIALIZE_MAX_CAPACITY", "4096")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Soap.CacheSize)
	assert.Equal(t, 4096, cfg.Serialize.MaxCapacity)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("testdata/.env.custom")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/soap/dictionary.yaml", cfg.Soap.Dictionary)
	assert.Equal(t, 64, cfg.Soap.CacheSize)
	assert.Equal(t, []string{"unicorn", "rainbow road"}, cfg.Soap.CustomFilters)
	assert.Equal(t, 16, cfg.Serialize.InitialCapacity)
	assert.Equal(t, "lz4", cfg.Serialize.Compression)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOAP_CACHE_SIZE", "8")

	cfg, err := config.Load("testdata/.env.custom")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Soap.CacheSize)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("testdata/.env.missing")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOAP_CACHE_SIZE", "many")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("testdata/.env.invalid")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Soap:      config.Soap{CacheSize: 1},
			Serialize: config.Serialize{InitialCapacity: 8, MaxCapacity: 16, Compression: "none"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"zero initial capacity", func(c *config.Config) { c.Serialize.InitialCapacity = 0 }},
		{"max below initial", func(c *config.Config) { c.Serialize.MaxCapacity = 4 }},
		{"unknown compression", func(c *config.Config) { c.Serialize.Compression = "gzip" }},
		{"negative cache", func(c *config.Config) { c.Soap.CacheSize = -1 }},
		{"unknown log format", func(c *config.Config) { c.LogFormat = "xml" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestMustLoad_Panics(t *testing.T) {
	clearEnv(t)
	assert.Panics(t, func() {
		config.MustLoad("testdata/.env.missing")
	})
}
