package pizzeria

import (
	"context"
	"time"

	"github.com/dmitrymomot/pizzeria/pkg/counter"
)

func (k *Kitchen) PlacePizza(ctx context.Context, kind counter.Kind) (counter.Result, error) {
	return k.placePizza(ctx, k.logger, kind)
}

func (k *Kitchen) AwaitRoom() { k.awaitRoom() }

func (k *Kitchen) Inspect(ctx context.Context) counter.Removed { return k.inspect(ctx) }

func (k *Kitchen) Deliver(ctx context.Context) counter.Removed { return k.deliver(ctx) }

func (k *Kitchen) PickupDelay() time.Duration { return k.pickupDelay() }

func (k *Kitchen) SupplierInformed() bool { return k.supplier.Informed() }

func (k *Kitchen) Stats() Summary { return k.summary(0) }
