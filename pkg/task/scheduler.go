package task

import "context"

// Scheduler accepts a unit of asynchronous work and returns a cancellable
// handle for it. The Lifecycle never runs work itself; it only submits to
// a Scheduler and keeps the resulting handle.
//
// Implementations decide where and how the work executes. The sched
// package provides a goroutine-backed implementation.
type Scheduler interface {
	// Submit schedules fn for asynchronous execution and returns a handle
	// controlling it. The context passed to fn is cancelled when the
	// handle's Cancel is called. Submission failures (exhaustion, shutdown)
	// are returned as-is.
	Submit(fn func(ctx context.Context)) (Handle, error)
}

// Handle controls one submitted unit of work.
//
// Cancellation is cooperative: Cancel only signals the work's context and
// relies on the work to observe it and unwind. Implementations must be safe
// for concurrent use.
type Handle interface {
	// Cancel requests cooperative cancellation. Idempotent.
	Cancel()

	// Cancelling reports whether Cancel has been called. It becomes true
	// immediately on request, before the work has unwound.
	Cancelling() bool

	// Cancelled reports whether the work was asked to cancel and has since
	// finished unwinding. It lags Cancel by however long the work takes to
	// observe its context.
	Cancelled() bool

	// Done returns a channel that is closed once the work has finished,
	// whether it ran to completion or was cancelled.
	Done() <-chan struct{}
}
