package pizzeria

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pizzeria/pkg/counter"
	"github.com/dmitrymomot/pizzeria/pkg/gate"
	"github.com/dmitrymomot/pizzeria/pkg/logger"
	"github.com/dmitrymomot/pizzeria/pkg/shutdown"
)

// Kitchen is the explicit context shared by every goroutine of one run: the
// counter, both gates, the shutdown coordinator and the run statistics.
type Kitchen struct {
	cfg     Config
	runID   uuid.UUID
	logger  *slog.Logger
	source  counter.Source
	signals []os.Signal
	initial counter.Snapshot

	counter  *counter.Counter
	capacity *gate.Gate
	supplier *gate.Notifier
	coord    *shutdown.Coordinator

	stats   stats
	started atomic.Bool
}

// Option configures a Kitchen.
type Option func(*Kitchen)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(k *Kitchen) {
		if logger != nil {
			k.logger = logger
		}
	}
}

// WithSource sets the random source used for pizza kinds, pickup delays and
// quality control. Nil is ignored.
func WithSource(src counter.Source) Option {
	return func(k *Kitchen) {
		if src != nil {
			k.source = src
		}
	}
}

// WithSignals replaces the OS signals that trigger a graceful shutdown.
// Calling it with no signals disables signal handling.
func WithSignals(sig ...os.Signal) Option {
	return func(k *Kitchen) {
		k.signals = sig
	}
}

// WithInitialStock puts pizzas on the counter before the run starts.
func WithInitialStock(margherita, marinara int) Option {
	return func(k *Kitchen) {
		k.initial = counter.Snapshot{Margherita: margherita, Marinara: marinara}
	}
}

// New validates cfg and builds every shared primitive. A returned error
// names the component that could not be set up.
func New(cfg Config, opts ...Option) (*Kitchen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	k := &Kitchen{
		cfg:     cfg,
		runID:   uuid.New(),
		logger:  slog.Default(),
		source:  counter.DefaultSource(),
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT},
	}
	for _, opt := range opts {
		opt(k)
	}

	c, err := counter.New(cfg.Capacity, counter.WithSource(k.source))
	if err != nil {
		return nil, fmt.Errorf("counter: %w", err)
	}
	if err := c.Seed(k.initial.Margherita, k.initial.Marinara); err != nil {
		return nil, fmt.Errorf("counter: initial stock: %w", err)
	}
	k.counter = c

	k.capacity = gate.New("capacity")
	k.supplier = gate.NewNotifier()
	k.coord = shutdown.New(
		shutdown.WithLogger(k.logger.With(
			logger.Component("shutdown"),
			logger.RunID(k.runID.String()),
		)),
		shutdown.WithOnShutdown(k.capacity.Broadcast, k.supplier.Wake),
	)

	return k, nil
}

// RunID identifies this kitchen's run in logs and in the summary.
func (k *Kitchen) RunID() uuid.UUID {
	return k.runID
}

// Counter exposes the shared counter, e.g. for inspection in tests.
func (k *Kitchen) Counter() *counter.Counter {
	return k.counter
}

// Shutdown requests a graceful shutdown, exactly like an interrupt signal.
// It returns false if shutdown was already requested.
func (k *Kitchen) Shutdown(reason string) bool {
	return k.coord.Shutdown(reason)
}

// Terminated reports whether shutdown has been requested.
func (k *Kitchen) Terminated() bool {
	return k.coord.Terminated()
}

type runIDKey struct{}

// RunIDFromContext returns the run id stored by Run, if any.
func RunIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey{}).(uuid.UUID)
	return id, ok
}

// RunIDExtractor returns a logger context extractor adding "run_id" to every
// record logged with a context derived from Run.
func RunIDExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := RunIDFromContext(ctx); ok {
			return slog.String("run_id", id.String()), true
		}
		return slog.Attr{}, false
	}
}
