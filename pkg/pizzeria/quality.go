package pizzeria

import (
	"context"
	"time"

	"github.com/dmitrymomot/pizzeria/pkg/counter"
	"github.com/dmitrymomot/pizzeria/pkg/logger"
)

// qualityControl runs on its own goroutine and competes for the counter lock
// like any other writer. The one-shot timer is re-armed after every check.
func (k *Kitchen) qualityControl(ctx context.Context) error {
	timer := time.NewTimer(k.cfg.QualityInterval)
	defer timer.Stop()

	for {
		select {
		case <-k.coord.Done():
			return nil
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		if k.coord.Terminated() {
			return nil
		}
		k.inspect(ctx)
		timer.Reset(k.cfg.QualityInterval)
	}
}

// inspect throws away a random share of each kind as gone cold and releases
// blocked pizzaiolos, since space may have been freed.
func (k *Kitchen) inspect(ctx context.Context) counter.Removed {
	removed := k.counter.ReduceRandom()
	k.stats.discarded.addRemoved(removed)
	k.stats.inspections.Add(1)

	k.logger.InfoContext(ctx, "quality control discarded cold pizzas",
		logger.Component("quality"),
		logger.Removed(removed.Margherita, removed.Marinara),
	)

	k.capacity.Broadcast()
	return removed
}
