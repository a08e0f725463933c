package shutdown

import "log/slog"

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used to report the shutdown.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnShutdown registers hooks run once, in order, right after the
// termination flag is set. Nil hooks are ignored.
func WithOnShutdown(hooks ...func()) Option {
	return func(c *Coordinator) {
		for _, h := range hooks {
			if h != nil {
				c.hooks = append(c.hooks, h)
			}
		}
	}
}
