package pizzeria

import (
	"context"
	"time"

	"github.com/dmitrymomot/pizzeria/pkg/counter"
	"github.com/dmitrymomot/pizzeria/pkg/logger"
)

// supplierLoop waits for the call, picks up everything on the counter and wakes
// the pizzaiolos. It exits without draining if woken by shutdown.
func (k *Kitchen) supplierLoop(ctx context.Context) error {
	log := k.logger.With(logger.Component("supplier"))

	for !k.coord.Terminated() {
		log.InfoContext(ctx, "supplier waiting for a call")
		if !k.supplier.Await(k.coord.Terminated) {
			break
		}
		log.InfoContext(ctx, "supplier got the call")

		if !k.coord.Sleep(k.pickupDelay()) {
			break
		}
		k.deliver(ctx)
	}

	log.InfoContext(ctx, "supplier stopped")
	return nil
}

// deliver empties the counter, re-arms the notification and releases every
// blocked pizzaiolo.
func (k *Kitchen) deliver(ctx context.Context) counter.Removed {
	log := k.logger.With(logger.Component("supplier"))

	removed := k.counter.DrainAll()
	k.stats.delivered.addRemoved(removed)
	k.stats.deliveries.Add(1)
	log.InfoContext(ctx, "supplier emptied the counter",
		logger.Removed(removed.Margherita, removed.Marinara),
	)

	k.supplier.Clear()
	k.capacity.Broadcast()

	// Pizzaiolos that were baking during pickup may already have crossed the
	// threshold again while the flag was still set.
	if total := k.counter.Total(); total >= k.cfg.SupplierThreshold && k.supplier.Raise() {
		k.stats.notifications.Add(1)
		log.InfoContext(ctx, "counter refilled during pickup, supplier informed again", logger.Total(total))
	}
	return removed
}

// pickupDelay is uniform in [PickupMin, PickupMax].
func (k *Kitchen) pickupDelay() time.Duration {
	span := k.cfg.PickupMax - k.cfg.PickupMin
	if span <= 0 {
		return k.cfg.PickupMin
	}
	return k.cfg.PickupMin + time.Duration(k.source.IntN(int(span)+1))
}
