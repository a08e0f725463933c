// Package shutdown coordinates cooperative termination of the simulation.
//
// A Coordinator holds a monotonic termination flag. Any trigger (an OS
// signal, the simulation timer, a cancelled context or a direct Shutdown
// call) flips it once, closes Done and runs the registered hooks. The
// simulation registers the broadcast of every gate as a hook, so each blocked
// worker wakes up, sees the flag and exits.
//
// Workers read the flag through Terminated at every loop head and after
// every wake, and use Sleep for delays that must end early on shutdown.
//
// # Usage
//
//	coord := shutdown.New(
//	    shutdown.WithLogger(log),
//	    shutdown.WithOnShutdown(capacity.Broadcast, supplier.Wake),
//	)
//	defer coord.Bind(ctx)()
//
//	g.Go(func() error { return coord.AfterTimer(ctx, 40*time.Second) })
//	g.Go(func() error { return coord.ListenSignals(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT) })
package shutdown
