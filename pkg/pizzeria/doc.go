// Package pizzeria simulates a pizza counter of bounded capacity fed by
// several pizzaiolos and emptied by a single supplier.
//
// # Components
//
//   - Pizzaiolos (N goroutines) place one pizza of a random kind at a time.
//     A full counter puts them to sleep on the capacity gate.
//   - The pizzaiolo whose pizza brings the total to the supplier threshold
//     calls the supplier; the call is made once per fill cycle.
//   - The supplier waits for the call, takes a random pickup time, empties
//     the counter and broadcasts on the capacity gate.
//   - Quality control fires on a fixed interval on its own goroutine, throws
//     away a random share of each kind and broadcasts on the capacity gate.
//   - The shutdown coordinator flips the termination flag on SIGINT, SIGTERM,
//     SIGQUIT, context cancellation or when the simulation time is up, and
//     wakes every gate so that nobody stays parked.
//
// All shared state lives in a Kitchen created by New; there are no package
// level variables. No goroutine ever holds two locks at the same time.
//
// # Usage
//
//	k, err := pizzeria.New(pizzeria.DefaultConfig(), pizzeria.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	summary, err := k.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	_ = summary.WriteYAML(os.Stdout)
//
// # Error Handling
//
// Configuration problems are reported by New as ErrInvalidConfig joined with
// the specific cause (counter, supplier threshold, pizzaiolos, timing or log
// level). Once running, the simulation has no error path besides shutdown.
package pizzeria
