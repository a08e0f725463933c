package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"
)

// Reasons reported by the built-in triggers.
const (
	ReasonTimer   = "simulation time elapsed"
	ReasonContext = "context canceled"
)

// Coordinator owns the process-wide termination flag. The flag moves from
// false to true exactly once; every later trigger is a no-op.
type Coordinator struct {
	terminated atomic.Bool
	once       sync.Once
	done       chan struct{}
	reason     atomic.Value
	hooks      []func()
	logger     *slog.Logger
}

// New creates a coordinator with the flag cleared.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		done:   make(chan struct{}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Shutdown sets the termination flag, closes Done and runs the hooks.
// Only the first call does anything; it is the one that returns true.
func (c *Coordinator) Shutdown(reason string) bool {
	triggered := false
	c.once.Do(func() {
		triggered = true
		c.reason.Store(reason)
		c.terminated.Store(true)
		close(c.done)

		c.logger.Info("graceful shutdown", slog.String("reason", reason))

		for _, h := range c.hooks {
			h()
		}
	})
	return triggered
}

// Terminated reports whether shutdown has been requested.
func (c *Coordinator) Terminated() bool {
	return c.terminated.Load()
}

// Done is closed once shutdown has been requested.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}

// Reason returns the reason passed to the first Shutdown call, or "" if
// shutdown has not happened yet.
func (c *Coordinator) Reason() string {
	if r, ok := c.reason.Load().(string); ok {
		return r
	}
	return ""
}

// Sleep pauses for d unless shutdown happens first. It returns false when
// interrupted by shutdown.
func (c *Coordinator) Sleep(d time.Duration) bool {
	if d <= 0 {
		return !c.Terminated()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return !c.Terminated()
	case <-c.done:
		return false
	}
}

// AfterTimer blocks until d has elapsed and then shuts down, unless shutdown
// already happened or ctx was cancelled. It returns nil in every case so it
// can run inside an errgroup.
func (c *Coordinator) AfterTimer(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		if !c.Terminated() {
			c.Shutdown(ReasonTimer)
		}
	case <-c.done:
	case <-ctx.Done():
	}
	return nil
}

// ListenSignals maps the given OS signals to Shutdown until shutdown happens
// or ctx is cancelled. The signal name is used as the reason.
func (c *Coordinator) ListenSignals(ctx context.Context, sig ...os.Signal) error {
	if len(sig) == 0 {
		return nil
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sig...)
	defer signal.Stop(ch)

	select {
	case s := <-ch:
		c.Shutdown("received " + s.String())
	case <-c.done:
	case <-ctx.Done():
	}
	return nil
}

// Bind shuts down when ctx is cancelled. The returned function detaches the
// binding and reports whether it did so before firing.
func (c *Coordinator) Bind(ctx context.Context) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		c.Shutdown(ReasonContext)
	})
}
