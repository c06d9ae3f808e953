package task

import (
	"context"
	"time"

	"github.com/bft-labs/runlet/pkg/log"
)

// ShutdownTimeout is the default maximum time to wait for work to unwind.
const ShutdownTimeout = 30 * time.Second

// Lifecycle wraps a single long-running asynchronous entry point with
// idempotent, non-blocking start/stop control and scoped acquisition.
//
// A Lifecycle owns at most one live handle at a time. Start submits the
// entry point to the Scheduler when no handle exists or the retained handle
// is already cancelled; otherwise it is a silent no-op. Stop requests
// cooperative cancellation on the current handle; redundant stops are
// likewise no-ops. A stale handle is retained until the next successful
// Start replaces it, so State remains observable after shutdown.
//
// Start, Stop, Acquire, and State are meant to be driven from one logical
// caller goroutine; the Lifecycle does not lock around its handle field.
// Callers that control it from several goroutines must serialize access
// themselves. Handle implementations are goroutine-safe, so waiting
// helpers (RunBlocking, WaitWithTimeout) may overlap work completion.
type Lifecycle struct {
	run       func(ctx context.Context)
	scheduler Scheduler
	logger    log.Logger
	onStart   func()
	onStop    func()
	handle    Handle
}

// New creates a Lifecycle around run, which must be non-nil (documented
// precondition, not validated here). The entry point is fixed for the life
// of the instance.
//
// With WithStartImmediately, New performs a Start as its last step and
// returns its error, if any.
func New(scheduler Scheduler, run func(ctx context.Context), opts ...Option) (*Lifecycle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Lifecycle{
		run:       run,
		scheduler: scheduler,
		logger:    o.logger,
		onStart:   o.onStart,
		onStop:    o.onStop,
	}

	if o.startImmediately {
		if err := l.Start(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Start submits the entry point to the Scheduler and stores the handle.
// It returns immediately after submission; the work runs asynchronously.
//
// Start is idempotent: while a handle is live (running or still unwinding
// after a cancellation request) it does nothing and returns nil. A restart
// proceeds once the retained handle reports Cancelled.
//
// The on-start hook, when set, runs exactly once per submission, before
// the work is handed to the Scheduler. Submission failures are returned
// unchanged; in that case no handle is stored and the lifecycle stays in
// its prior state.
func (l *Lifecycle) Start() error {
	if l.handle != nil && !l.handle.Cancelled() {
		return nil
	}

	if l.onStart != nil {
		l.onStart()
	}

	h, err := l.scheduler.Submit(l.run)
	if err != nil {
		return err
	}
	l.handle = h

	l.logger.Debug("task started")
	return nil
}

// Stop requests cooperative cancellation of the current work. It does not
// wait for the work to unwind; use WaitWithTimeout or the handle's Done
// channel for that.
//
// Stop is idempotent: with no handle, or with cancellation already
// requested, it does nothing. The on-stop hook, when set, runs exactly
// once per cancellation request, before the request is issued.
func (l *Lifecycle) Stop() {
	if l.handle == nil || l.handle.Cancelling() {
		return
	}

	if l.onStop != nil {
		l.onStop()
	}

	l.handle.Cancel()
	l.logger.Debug("task stop requested")
}

// RunBlocking starts the task and blocks until the work finishes or ctx is
// cancelled. On ctx cancellation it calls Stop, waits for the work to
// unwind, and returns ctx's error. It returns nil when the work finishes
// on its own.
//
// This is the run-forever mode for processes whose remaining lifetime is
// this task; unlike Start it does not return promptly.
func (l *Lifecycle) RunBlocking(ctx context.Context) error {
	if err := l.Start(); err != nil {
		return err
	}

	h := l.handle
	select {
	case <-h.Done():
		return nil
	case <-ctx.Done():
		l.Stop()
		<-h.Done()
		return ctx.Err()
	}
}

// WaitWithTimeout waits for the current work to finish.
// Returns ErrShutdownTimeout if the timeout expires first, and nil
// immediately when no work was ever started.
func (l *Lifecycle) WaitWithTimeout(timeout time.Duration) error {
	if l.handle == nil {
		return nil
	}

	select {
	case <-l.handle.Done():
		return nil
	case <-time.After(timeout):
		l.logger.Warn("task did not unwind in time",
			log.Duration("timeout", timeout),
		)
		return ErrShutdownTimeout
	}
}

// State derives the current lifecycle state from the retained handle.
func (l *Lifecycle) State() State {
	switch {
	case l.handle == nil:
		return StateIdle
	case l.handle.Cancelled():
		return StateStopped
	case l.handle.Cancelling():
		return StateCancelling
	default:
		return StateRunning
	}
}
