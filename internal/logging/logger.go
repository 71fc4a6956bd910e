// Package logging defines the structured logger the server components share
// and an slog-backed implementation of it.
package logging

import "context"

// Logger is the context-aware logging contract. Components take a Logger,
// not *slog.Logger, so tests can hand in a silenced instance. Variadic args
// are alternating key-value pairs:
//
//	log.Info(ctx, "http server listening", "addr", addr)
type Logger interface {
	// Info logs normal operational events (startup, purge results).
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions, such as a token whose
	// subject claim is not numeric.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given key-value
	// pairs, used to tag each component's output.
	With(args ...any) Logger
}
