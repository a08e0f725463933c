// Package counter implements the bounded pizza counter shared by the
// pizzaiolos, the supplier and quality control.
//
// A Counter holds two quantities, one per Kind, and never lets their sum
// leave [0, capacity]. All mutations (TryAdd, DrainAll, ReduceRandom, Seed)
// run inside a single critical section each, so no caller observes a half
// updated pair.
//
// HasRoom reads a lock-free mirror of the total. Workers waiting for space
// evaluate it while holding their own gate lock, which keeps the rule that no
// goroutine ever holds two locks at once.
//
// # Usage
//
//	c, err := counter.New(30)
//	if err != nil {
//	    return err
//	}
//	res, _ := c.TryAdd(counter.Margherita)
//	if !res.Accepted {
//	    // full, wait for the supplier
//	}
//	removed := c.DrainAll()
package counter
