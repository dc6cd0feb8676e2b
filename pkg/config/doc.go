// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - An optional `.env` file in the working directory is read once.
//     LoadEnv reads additional files explicitly.
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags.
//   - Each configuration type is parsed once and cached by value for the
//     life of the process. ResetCache clears the cache in tests.
//
// # Usage
//
//	var cfg hygiene.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – an explicit .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load/MustLoad.
package config
