// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` (optional .env files) and
// `github.com/caarlos0/env/v11` (struct tag parsing):
//
//   - The default `.env` in the working directory is loaded when present.
//     Extra files can be requested with WithEnvFiles; those must exist.
//   - Values already present in the process environment win over .env files.
//   - Any struct implementing Validator is validated right after parsing.
//
// # Usage
//
//	type Config struct {
//	    Capacity  int           `env:"COUNTER_CAPACITY" envDefault:"30"`
//	    BakeTime  time.Duration `env:"BAKE_TIME" envDefault:"1s"`
//	}
//
//	func (c Config) Validate() error { ... }
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Tests can bypass the process environment entirely:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
//	    "COUNTER_CAPACITY": "10",
//	}))
//
// # Error Handling
//
// Sentinel errors are joined with the underlying cause and can be matched with
// errors.Is: ErrParsingConfig, ErrInvalidConfig, ErrLoadingEnvFile and
// ErrNilPointer.
package config
