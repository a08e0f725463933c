package pizzeria

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/pizzeria/pkg/environment"
)

// Config holds the simulation parameters. Defaults are the reference values:
// a 30 item counter, the supplier called at 20, six pizzaiolos and a 40
// second run.
type Config struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel string                  `env:"LOG_LEVEL"`

	Capacity          int `env:"COUNTER_CAPACITY" envDefault:"30"`
	SupplierThreshold int `env:"SUPPLIER_THRESHOLD" envDefault:"20"`
	Pizzaiolos        int `env:"PIZZAIOLO_COUNT" envDefault:"6"`

	BakeTime           time.Duration `env:"BAKE_TIME" envDefault:"1s"`
	PickupMin          time.Duration `env:"PICKUP_MIN" envDefault:"1s"`
	PickupMax          time.Duration `env:"PICKUP_MAX" envDefault:"4s"`
	QualityInterval    time.Duration `env:"QUALITY_INTERVAL" envDefault:"5s"`
	SimulationDuration time.Duration `env:"SIMULATION_DURATION" envDefault:"40s"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Env:                environment.Development,
		Capacity:           30,
		SupplierThreshold:  20,
		Pizzaiolos:         6,
		BakeTime:           time.Second,
		PickupMin:          time.Second,
		PickupMax:          4 * time.Second,
		QualityInterval:    5 * time.Second,
		SimulationDuration: 40 * time.Second,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Capacity < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.Capacity))
	}
	if c.SupplierThreshold < 1 || c.SupplierThreshold > c.Capacity {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidThreshold, c.SupplierThreshold))
	}
	if c.Pizzaiolos < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidPizzaiolos, c.Pizzaiolos))
	}
	if c.BakeTime < 0 {
		errs = append(errs, fmt.Errorf("%w: bake time %s", ErrInvalidTiming, c.BakeTime))
	}
	if c.PickupMin < 0 || c.PickupMax < c.PickupMin {
		errs = append(errs, fmt.Errorf("%w: pickup range [%s, %s]", ErrInvalidTiming, c.PickupMin, c.PickupMax))
	}
	if c.QualityInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: quality interval %s", ErrInvalidTiming, c.QualityInterval))
	}
	if c.SimulationDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: simulation duration %s", ErrInvalidTiming, c.SimulationDuration))
	}
	if _, _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}

// Level parses LogLevel. ok is false when no level was configured, in which
// case the environment preset applies.
func (c Config) Level() (level slog.Level, ok bool, err error) {
	if c.LogLevel == "" {
		return 0, false, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, true, nil
}
