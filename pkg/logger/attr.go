package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Worker records a worker number under the key "worker".
func Worker(n int) slog.Attr {
	return slog.Int("worker", n)
}

// RunID records the simulation run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Kind records an item kind under the key "kind".
func Kind(kind any) slog.Attr {
	return slog.Any("kind", kind)
}

// Total records the counter total under the key "total".
func Total(n int) slog.Attr {
	return slog.Int("total", n)
}

// Removed groups the per-kind quantities taken off the counter under "removed".
func Removed(margherita, marinara int) slog.Attr {
	return slog.Group("removed",
		slog.Int("margherita", margherita),
		slog.Int("marinara", marinara),
	)
}

// Reason records why something happened under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
