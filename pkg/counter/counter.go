package counter

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Result describes the outcome of TryAdd.
type Result struct {
	Accepted bool
	// Total is the counter total after the call; unchanged when rejected.
	Total int
}

// Removed holds the quantities taken off the counter by one operation.
type Removed struct {
	Margherita int `yaml:"margherita"`
	Marinara   int `yaml:"marinara"`
}

// Total returns the sum of both kinds.
func (r Removed) Total() int {
	return r.Margherita + r.Marinara
}

// Snapshot is a consistent view of both quantities.
type Snapshot struct {
	Margherita int `yaml:"margherita"`
	Marinara   int `yaml:"marinara"`
}

// Total returns the sum of both kinds.
func (s Snapshot) Total() int {
	return s.Margherita + s.Marinara
}

// Counter is the bounded shared counter. Every read-modify-write of the two
// quantities happens under mu, so 0 <= total <= capacity holds at all times.
type Counter struct {
	mu         sync.Mutex
	margherita int
	marinara   int
	capacity   int
	source     Source

	// total mirrors margherita+marinara and is only stored while mu is held.
	// It lets wait predicates test for room without taking mu.
	total atomic.Int64
}

// Option configures a Counter.
type Option func(*Counter)

// WithSource sets the random source used by ReduceRandom. Nil is ignored.
func WithSource(src Source) Option {
	return func(c *Counter) {
		if src != nil {
			c.source = src
		}
	}
}

// New creates an empty counter holding at most capacity items.
func New(capacity int, opts ...Option) (*Counter, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	c := &Counter{
		capacity: capacity,
		source:   DefaultSource(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Capacity returns the maximum number of items the counter holds.
func (c *Counter) Capacity() int {
	return c.capacity
}

// TryAdd places one item of kind on the counter if there is room.
func (c *Counter) TryAdd(kind Kind) (Result, error) {
	if !kind.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.margherita + c.marinara
	if total >= c.capacity {
		return Result{Accepted: false, Total: total}, nil
	}

	switch kind {
	case Margherita:
		c.margherita++
	case Marinara:
		c.marinara++
	}
	total++
	c.total.Store(int64(total))

	return Result{Accepted: true, Total: total}, nil
}

// DrainAll empties the counter and returns what was on it.
func (c *Counter) DrainAll() Removed {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := Removed{Margherita: c.margherita, Marinara: c.marinara}
	c.margherita, c.marinara = 0, 0
	c.total.Store(0)
	return removed
}

// ReduceRandom removes an independently sampled amount in [0, count] of each
// kind. Removing nothing is a valid outcome.
func (c *Counter) ReduceRandom() Removed {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := Removed{
		Margherita: c.source.IntN(c.margherita + 1),
		Marinara:   c.source.IntN(c.marinara + 1),
	}
	// Guard against sources returning values outside [0, n).
	removed.Margherita = clamp(removed.Margherita, c.margherita)
	removed.Marinara = clamp(removed.Marinara, c.marinara)

	c.margherita -= removed.Margherita
	c.marinara -= removed.Marinara
	c.total.Store(int64(c.margherita + c.marinara))
	return removed
}

// Total returns the current number of items under the counter lock.
func (c *Counter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.margherita + c.marinara
}

// Snapshot returns both quantities read in the same critical section.
func (c *Counter) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Margherita: c.margherita, Marinara: c.marinara}
}

// HasRoom reports whether at least one more item fits. It never blocks on
// the counter lock, so it is safe to call while holding another lock.
func (c *Counter) HasRoom() bool {
	return int(c.total.Load()) < c.capacity
}

// Seed overwrites both quantities. Meant for setting up a known state
// before workers start.
func (c *Counter) Seed(margherita, marinara int) error {
	if margherita < 0 || marinara < 0 {
		return ErrNegativeCount
	}
	if margherita+marinara > c.capacity {
		return fmt.Errorf("%w: %d > %d", ErrOverCapacity, margherita+marinara, c.capacity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.margherita, c.marinara = margherita, marinara
	c.total.Store(int64(margherita + marinara))
	return nil
}

func clamp(v, upper int) int {
	return max(0, min(v, upper))
}
