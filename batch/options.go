package batch

import (
	"io"
	"log/slog"
	"os"
	"runtime"
)

// DefaultConcurrency is the worker limit when WithConcurrency is not given.
var DefaultConcurrency = runtime.GOMAXPROCS(0)

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency bounds the number of Jobs processed at once.
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("batch: WithConcurrency(n) requires n >= 1")
	}

	return func(r *Runner) { r.concurrency = n }
}

// WithLogger sets the structured logger. A nil logger discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l == nil {
			l = NoopLogger()
		}
		r.logger = l
	}
}

// NewTextLogger returns a human-readable logger on stderr at the given level.
func NewTextLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a logger that discards everything.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}
