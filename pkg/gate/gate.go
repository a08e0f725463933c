package gate

import "sync"

// Gate pairs a condition variable with its guard lock.
type Gate struct {
	name string
	mu   sync.Mutex
	cond *sync.Cond
}

// New creates a named gate. The name only appears in diagnostics.
func New(name string) *Gate {
	g := &Gate{name: name}
	g.cond = sync.NewCond(&g.mu)
	return g
}

func (g *Gate) Name() string {
	return g.name
}

// Wait blocks until ready returns true. ready is evaluated under the gate
// lock before the first wait and again after every wake, so stale wakes
// and wakes lost to other waiters are tolerated.
// ready must not block or acquire another gate's lock.
func (g *Gate) Wait(ready func() bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for !ready() {
		g.cond.Wait()
	}
}

// Signal wakes one waiter, if any.
func (g *Gate) Signal() {
	g.mu.Lock()
	g.cond.Signal()
	g.mu.Unlock()
}

// Broadcast wakes every waiter.
func (g *Gate) Broadcast() {
	g.mu.Lock()
	g.cond.Broadcast()
	g.mu.Unlock()
}

// Do runs fn while holding the gate lock.
func (g *Gate) Do(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}
