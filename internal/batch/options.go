package batch

import (
	"github.com/okian/beastscore/internal/domain/dedupe"
	"github.com/okian/beastscore/pkg/logger"
)

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithWorkers sets the number of concurrent scorers. Values below one fall
// back to the default.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithDeduper sets the constructor used to build a fresh address set per run.
func WithDeduper(newSet func() dedupe.Deduper) Option {
	return func(r *Runner) {
		if newSet != nil {
			r.newSet = newSet
		}
	}
}
