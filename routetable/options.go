package routetable

import (
	"log/slog"
)

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger diagnostics are reported to.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConcurrency sets how many routes are compiled at the same time.
// Values lower than 1 are ignored.
func WithConcurrency(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.concurrency = n
		}
	}
}
