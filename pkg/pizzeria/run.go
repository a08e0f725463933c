package pizzeria

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/pizzeria/pkg/logger"
)

// Run opens the pizzeria: it starts the pizzaiolos, the supplier, quality
// control, the simulation timer and the signal listener, then blocks until
// every one of them has exited after shutdown. Cancelling ctx counts as a
// shutdown request. A Kitchen runs at most once.
func (k *Kitchen) Run(ctx context.Context) (Summary, error) {
	if !k.started.CompareAndSwap(false, true) {
		return Summary{}, ErrAlreadyRun
	}

	ctx = context.WithValue(ctx, runIDKey{}, k.runID)
	start := time.Now()

	unbind := k.coord.Bind(ctx)
	defer unbind()

	k.logger.InfoContext(ctx, "pizzeria opened",
		slog.Int("capacity", k.cfg.Capacity),
		slog.Int("supplier_threshold", k.cfg.SupplierThreshold),
		slog.Int("pizzaiolos", k.cfg.Pizzaiolos),
		slog.Duration("simulation_duration", k.cfg.SimulationDuration),
	)

	g, gctx := errgroup.WithContext(ctx)

	for id := 1; id <= k.cfg.Pizzaiolos; id++ {
		g.Go(k.task(fmt.Sprintf("pizzaiolo %d", id), func() error {
			return k.pizzaiolo(gctx, id)
		}))
	}
	g.Go(k.task("supplier", func() error { return k.supplierLoop(gctx) }))
	g.Go(k.task("quality control", func() error { return k.qualityControl(gctx) }))
	g.Go(func() error { return k.coord.AfterTimer(gctx, k.cfg.SimulationDuration) })
	g.Go(func() error { return k.coord.ListenSignals(gctx, k.signals...) })

	err := g.Wait()
	elapsed := time.Since(start)
	summary := k.summary(elapsed)

	if err != nil {
		k.logger.ErrorContext(ctx, "pizzeria closed with error", logger.Error(err))
		return summary, err
	}

	k.logger.InfoContext(ctx, "pizzeria closed",
		logger.Reason(summary.Reason),
		logger.Duration(elapsed),
		logger.Total(summary.OnCounter.Total()),
	)
	return summary, nil
}

// task wraps a worker so that its failure shuts the whole kitchen down:
// the other workers only ever watch the termination flag.
func (k *Kitchen) task(name string, fn func() error) func() error {
	return func() error {
		if err := fn(); err != nil {
			k.coord.Shutdown(name + " failed")
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
}
