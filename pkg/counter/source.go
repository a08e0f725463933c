package counter

import "math/rand/v2"

// Source yields uniformly distributed integers in [0, n).
// Implementations used outside the counter lock must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

// globalSource is the process-wide math/rand/v2 generator; safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide random source.
func DefaultSource() Source {
	return globalSource{}
}
