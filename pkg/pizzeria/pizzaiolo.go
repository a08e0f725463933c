package pizzeria

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/pizzeria/pkg/counter"
	"github.com/dmitrymomot/pizzeria/pkg/logger"
)

// pizzaiolo bakes pizzas of random kind onto the counter until shutdown.
// When the counter is full it sleeps on the capacity gate.
func (k *Kitchen) pizzaiolo(ctx context.Context, id int) error {
	log := k.logger.With(logger.Component("pizzaiolo"), logger.Worker(id))
	kinds := counter.Kinds()

	for !k.coord.Terminated() {
		kind := kinds[k.source.IntN(len(kinds))]

		res, err := k.placePizza(ctx, log, kind)
		if err != nil {
			return err
		}
		if res.Accepted {
			k.coord.Sleep(k.cfg.BakeTime)
			continue
		}

		k.stats.fullWaits.Add(1)
		log.InfoContext(ctx, "counter full, waiting for space", logger.Total(res.Total))
		k.awaitRoom()
		if k.coord.Terminated() {
			break
		}
		log.InfoContext(ctx, "woken up, space on the counter")
	}

	log.InfoContext(ctx, "pizzaiolo stopped")
	return nil
}

// placePizza adds one pizza and calls the supplier when the total reaches
// the threshold and nobody has called yet.
func (k *Kitchen) placePizza(ctx context.Context, log *slog.Logger, kind counter.Kind) (counter.Result, error) {
	res, err := k.counter.TryAdd(kind)
	if err != nil || !res.Accepted {
		return res, err
	}

	k.stats.placed.add(kind, 1)
	log.InfoContext(ctx, kind.DisplayName()+" placed on the counter",
		logger.Kind(kind),
		logger.Total(res.Total),
	)

	if res.Total >= k.cfg.SupplierThreshold && k.supplier.Raise() {
		k.stats.notifications.Add(1)
		log.InfoContext(ctx, "supplier informed", logger.Total(res.Total))
	}
	return res, nil
}

// awaitRoom blocks until the counter has room or shutdown was requested.
func (k *Kitchen) awaitRoom() {
	k.capacity.Wait(func() bool {
		return k.counter.HasRoom() || k.coord.Terminated()
	})
}
