package gate

import "sync"

// Notifier is a single-waiter wake-up with an "already informed" flag.
// Between Raise and Clear at most one notification is delivered, however many
// callers cross the threshold concurrently. The flag shares the notifier's own
// lock and nothing else.
type Notifier struct {
	mu       sync.Mutex
	cond     *sync.Cond
	informed bool
}

// NewNotifier creates a notifier in the not-informed state.
func NewNotifier() *Notifier {
	n := &Notifier{}
	n.cond = sync.NewCond(&n.mu)
	return n
}

// Raise sets the informed flag and wakes the waiter. It returns false, and
// does nothing, when the flag is already set.
func (n *Notifier) Raise() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.informed {
		return false
	}
	n.informed = true
	n.cond.Signal()
	return true
}

// Await blocks until the flag is raised or stop reports true, re-checking
// both after every wake. It returns true when woken by a raised flag.
// The flag stays set until Clear.
func (n *Notifier) Await(stop func() bool) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for !n.informed && !stop() {
		n.cond.Wait()
	}
	return n.informed && !stop()
}

// Clear resets the flag so the next threshold crossing notifies again.
func (n *Notifier) Clear() {
	n.mu.Lock()
	n.informed = false
	n.mu.Unlock()
}

// Informed reports the current flag value.
func (n *Notifier) Informed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.informed
}

// Wake broadcasts to every waiter without touching the flag, so waiters
// re-evaluate their stop condition.
func (n *Notifier) Wake() {
	n.mu.Lock()
	n.cond.Broadcast()
	n.mu.Unlock()
}
