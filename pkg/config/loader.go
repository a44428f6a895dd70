package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting consumed by soapkit and its CLI.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`

	Soap      Soap      `envPrefix:"SOAP_"`
	Serialize Serialize `envPrefix:"SERIALIZE_"`
}

// Soap configures the text sanitizer.
type Soap struct {
	Dictionary    string   `env:"DICTIONARY"`
	Classifier    string   `env:"CLASSIFIER"`
	CacheSize     int      `env:"CACHE_SIZE" envDefault:"256"`
	CustomFilters []string `env:"CUSTOM_FILTERS" envSeparator:","`
}

// Serialize configures binary buffers.
type Serialize struct {
	InitialCapacity int    `env:"INITIAL_CAPACITY" envDefault:"1024"`
	MaxCapacity     int    `env:"MAX_CAPACITY" envDefault:"67108864"`
	Compression     string `env:"COMPRESSION" envDefault:"zstd"`
}

var compressions = []string{"none", "lz4", "zstd"}

// Load reads the given .env files (or the default .env when none is given),
// parses the environment and validates the result.
// Variables already present in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		// The default .env file is optional
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(files ...string) *Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Serialize.InitialCapacity <= 0:
		return fmt.Errorf("%w: SERIALIZE_INITIAL_CAPACITY must be positive", ErrInvalidConfig)
	case c.Serialize.MaxCapacity < c.Serialize.InitialCapacity:
		return fmt.Errorf("%w: SERIALIZE_MAX_CAPACITY must be >= SERIALIZE_INITIAL_CAPACITY", ErrInvalidConfig)
	case !slices.Contains(compressions, c.Serialize.Compression):
		return fmt.Errorf("%w: unknown SERIALIZE_COMPRESSION %q", ErrInvalidConfig, c.Serialize.Compression)
	case c.Soap.CacheSize < 0:
		return fmt.Errorf("%w: SOAP_CACHE_SIZE must not be negative", ErrInvalidConfig)
	case c.LogFormat != "" && c.LogFormat != "json" && c.LogFormat != "text":
		return fmt.Errorf("%w: unknown LOG_FORMAT %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
