package task

import "github.com/bft-labs/runlet/pkg/log"

// Option configures optional behavior of a Lifecycle.
type Option func(*options)

// options holds the optional configuration for a Lifecycle.
type options struct {
	onStart          func()
	onStop           func()
	logger           log.Logger
	startImmediately bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithOnStart sets a hook invoked synchronously, exactly once per
// submission, before the entry point is handed to the Scheduler.
// The hook is for side effects only.
func WithOnStart(fn func()) Option {
	return func(o *options) {
		o.onStart = fn
	}
}

// WithOnStop sets a hook invoked synchronously, exactly once per
// cancellation request, before cancellation is requested on the handle.
// The hook is for side effects only.
func WithOnStop(fn func()) Option {
	return func(o *options) {
		o.onStop = fn
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStartImmediately makes New perform a Start as its last step, so the
// work is already submitted when New returns.
func WithStartImmediately() Option {
	return func(o *options) {
		o.startImmediately = true
	}
}
