package pizzeria

import "errors"

var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("pizzeria: invalid configuration")

	ErrInvalidCapacity   = errors.New("counter: capacity must be at least 1")
	ErrInvalidThreshold  = errors.New("supplier: threshold must be between 1 and the counter capacity")
	ErrInvalidPizzaiolos = errors.New("pizzaiolos: at least one pizzaiolo is required")
	ErrInvalidTiming     = errors.New("timing: invalid duration")
	ErrInvalidLogLevel   = errors.New("logger: invalid log level")

	// ErrAlreadyRun is returned when Run is called a second time on the same Kitchen.
	ErrAlreadyRun = errors.New("pizzeria: kitchen already ran")
)
