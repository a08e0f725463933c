package pizzeria_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pizzeria/pkg/config"
	"github.com/dmitrymomot/pizzeria/pkg/environment"
	"github.com/dmitrymomot/pizzeria/pkg/pizzeria"
)

func TestConfig_LoadDefaults(t *testing.T) {
	t.Parallel()

	var cfg pizzeria.Config
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, pizzeria.DefaultConfig(), cfg)
}

func TestConfig_LoadOverrides(t *testing.T) {
	t.Parallel()

	var cfg pizzeria.Config
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
		"APP_ENV":             "prod",
		"LOG_LEVEL":           "warn",
		"COUNTER_CAPACITY":    "12",
		"SUPPLIER_THRESHOLD":  "8",
		"PIZZAIOLO_COUNT":     "2",
		"BAKE_TIME":           "10ms",
		"SIMULATION_DURATION": "2s",
	}))
	require.NoError(t, err)

	assert.Equal(t, environment.Production, cfg.Env)
	assert.Equal(t, 12, cfg.Capacity)
	assert.Equal(t, 8, cfg.SupplierThreshold)
	assert.Equal(t, 2, cfg.Pizzaiolos)
	assert.Equal(t, 10*time.Millisecond, cfg.BakeTime)
	assert.Equal(t, 2*time.Second, cfg.SimulationDuration)

	level, ok, err := cfg.Level()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestConfig_LoadRejectsInvalid(t *testing.T) {
	t.Parallel()

	var cfg pizzeria.Config
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
		"SUPPLIER_THRESHOLD": "31",
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, pizzeria.ErrInvalidThreshold)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, pizzeria.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*pizzeria.Config)
		want   error
	}{
		{"zero capacity", func(c *pizzeria.Config) { c.Capacity = 0 }, pizzeria.ErrInvalidCapacity},
		{"threshold above capacity", func(c *pizzeria.Config) { c.SupplierThreshold = 31 }, pizzeria.ErrInvalidThreshold},
		{"zero threshold", func(c *pizzeria.Config) { c.SupplierThreshold = 0 }, pizzeria.ErrInvalidThreshold},
		{"no pizzaiolos", func(c *pizzeria.Config) { c.Pizzaiolos = 0 }, pizzeria.ErrInvalidPizzaiolos},
		{"negative bake time", func(c *pizzeria.Config) { c.BakeTime = -time.Second }, pizzeria.ErrInvalidTiming},
		{"inverted pickup range", func(c *pizzeria.Config) { c.PickupMax = 0 }, pizzeria.ErrInvalidTiming},
		{"zero quality interval", func(c *pizzeria.Config) { c.QualityInterval = 0 }, pizzeria.ErrInvalidTiming},
		{"zero simulation", func(c *pizzeria.Config) { c.SimulationDuration = 0 }, pizzeria.ErrInvalidTiming},
		{"bad log level", func(c *pizzeria.Config) { c.LogLevel = "loud" }, pizzeria.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := pizzeria.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, pizzeria.ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := pizzeria.DefaultConfig()
	cfg.Capacity = 0
	cfg.Pizzaiolos = 0

	err := cfg.Validate()
	assert.ErrorIs(t, err, pizzeria.ErrInvalidCapacity)
	assert.ErrorIs(t, err, pizzeria.ErrInvalidThreshold)
	assert.ErrorIs(t, err, pizzeria.ErrInvalidPizzaiolos)
}

func TestConfig_LevelUnset(t *testing.T) {
	t.Parallel()

	_, ok, err := pizzeria.DefaultConfig().Level()
	require.NoError(t, err)
	assert.False(t, ok)
}
