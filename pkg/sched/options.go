package sched

import (
	"context"

	"github.com/bft-labs/runlet/pkg/log"
)

// Option configures optional behavior of a Scheduler.
type Option func(*options)

// options holds the optional configuration for a Scheduler.
type options struct {
	base   context.Context
	logger log.Logger
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		base:   context.Background(),
		logger: log.NewNoopLogger(),
	}
}

// WithBaseContext sets the parent context for all submitted work.
// Cancelling it unwinds every unit of work this scheduler has started,
// which ties the scheduler to process shutdown. Defaults to
// context.Background().
func WithBaseContext(ctx context.Context) Option {
	return func(o *options) {
		o.base = ctx
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
