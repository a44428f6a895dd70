// Package config loads soapkit settings from the process environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Optional `.env` files are loaded first (the default `.env` in the working
//     directory is tried silently when no file is named).
//   - The environment is parsed into Config using struct tags, with nested
//     sections prefixed by SOAP_ and SERIALIZE_.
//   - The result is validated before it is returned.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
//	buf, err := serialize.New(cfg.Serialize.InitialCapacity,
//	    serialize.WithMaxCapacity(cfg.Serialize.MaxCapacity))
//
// # Variables
//
//	APP_ENV                      development | staging | production
//	LOG_LEVEL                    debug | info | warn | error
//	LOG_FORMAT                   json | text (empty = environment preset)
//	SOAP_DICTIONARY              path to a json/yaml/hjson dictionary
//	SOAP_CLASSIFIER              path to a trained tone classifier
//	SOAP_CACHE_SIZE              memoized sanitize results (0 disables)
//	SOAP_CUSTOM_FILTERS          comma separated phrases to filter
//	SERIALIZE_INITIAL_CAPACITY   initial buffer capacity in bytes
//	SERIALIZE_MAX_CAPACITY       growth limit in bytes
//	SERIALIZE_COMPRESSION        none | lz4 | zstd
//
// # Error Handling
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrInvalidConfig and can
// be compared with errors.Is.
package config
