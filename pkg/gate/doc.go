// Package gate provides the two wake-up primitives the simulation uses
// between goroutines.
//
// Gate is a condition variable with its own lock and a predicate-driven Wait:
// the capacity-release gate that blocked pizzaiolos sleep on, woken with
// Broadcast whenever space may have been freed.
//
// Notifier is the supplier's single-notification channel. Raise delivers one
// wake per fill cycle and Clear re-arms it after a drain.
//
// Both primitives re-check their condition after every wake; callers pass a
// stop predicate (usually the shutdown flag) so that a broadcast issued on
// shutdown always releases them.
package gate
