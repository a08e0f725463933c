// Package logger builds the console logger used by the simulation: a
// *slog.Logger configured through functional options, with attribute helpers
// for the domain (worker, kind, total, removed quantities) and a handler
// decorator that copies values out of context.Context into every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "pizzeria"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "pizza placed on the counter",
//	    logger.Worker(3),
//	    logger.Kind(counter.Margherita),
//	    logger.Total(21),
//	)
//
// # Configuration
//
//   - WithEnvironment: text/debug for development, JSON/info for staging and production.
//   - WithFormat, WithLevel, WithOutput: explicit overrides.
//   - WithAttr: static attributes on every record.
//   - WithContextExtractors / WithContextValue: attributes pulled from context.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
