package counter

import "errors"

var (
	// ErrInvalidCapacity is returned by New for a capacity below one.
	ErrInvalidCapacity = errors.New("counter: capacity must be positive")

	// ErrUnknownKind is returned by TryAdd for a kind outside Kinds().
	ErrUnknownKind = errors.New("counter: unknown kind")

	// ErrNegativeCount is returned by Seed for negative quantities.
	ErrNegativeCount = errors.New("counter: quantities must not be negative")

	// ErrOverCapacity is returned by Seed when the quantities exceed capacity.
	ErrOverCapacity = errors.New("counter: quantities exceed capacity")
)
