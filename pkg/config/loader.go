package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by configuration structs that check their own
// invariants after parsing.
type Validator interface {
	Validate() error
}

// Option customises a single Load call.
type Option func(*options)

type options struct {
	files       []string
	prefix      string
	environment map[string]string
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// .env lookup, a missing file is an error.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithPrefix prepends prefix to every variable name looked up.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment parses from vars instead of the process environment.
// No .env files are read in this mode.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		if vars != nil {
			o.environment = vars
		}
	}
}

// Load populates v from environment variables according to its `env` and
// `envDefault` struct tags. An optional .env file in the working directory is
// loaded first; variables already set in the process take precedence.
// If v implements Validator, Validate is called on the parsed value.
//
// Example:
//
//	type Config struct {
//		Capacity int `env:"COUNTER_CAPACITY" envDefault:"30"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.environment == nil {
		if err := loadEnvFiles(o.files); err != nil {
			return err
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}
	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if val, ok := any(v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		// The default .env is optional.
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
