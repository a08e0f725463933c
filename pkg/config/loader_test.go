package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pizzeria/pkg/config"
)

type testConfig struct {
	Capacity int           `env:"CAPACITY" envDefault:"30"`
	Interval time.Duration `env:"INTERVAL" envDefault:"5s"`
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type validatedConfig struct {
	Capacity int `env:"CAPACITY" envDefault:"30"`
}

var errTooSmall = errors.New("capacity too small")

func (c validatedConfig) Validate() error {
	if c.Capacity < 1 {
		return errTooSmall
	}
	return nil
}

type fileConfig struct {
	Capacity int    `env:"TEST_FILE_CAPACITY"`
	Name     string `env:"TEST_FILE_NAME"`
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Capacity)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.True(t, cfg.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
		"CAPACITY": "10",
		"INTERVAL": "250ms",
		"ENABLED":  "false",
	}))

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Capacity)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.False(t, cfg.Enabled)
}

func TestLoad_Prefix(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg,
		config.WithPrefix("PIZZERIA_"),
		config.WithEnvironment(map[string]string{"PIZZERIA_CAPACITY": "7"}),
	)

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Capacity)
}

func TestLoad_ParseError(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"CAPACITY": "lots"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Parallel()

	var cfg requiredConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Validate(t *testing.T) {
	t.Parallel()

	var cfg validatedConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"CAPACITY": "0"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, errTooSmall)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	var cfg *testConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_EnvFile(t *testing.T) {
	var cfg fileConfig
	err := config.Load(&cfg, config.WithEnvFiles("testdata/.env.test"))

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Capacity)
	assert.Equal(t, "quoted value", cfg.Name)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	var cfg fileConfig
	err := config.Load(&cfg, config.WithEnvFiles("testdata/does-not-exist.env"))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoad_Panics(t *testing.T) {
	t.Parallel()

	var cfg requiredConfig
	assert.Panics(t, func() {
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}
