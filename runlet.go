// Package runlet wraps a single long-running asynchronous task with a
// uniform start/stop/scoped-acquisition lifecycle.
//
// Example usage:
//
//	s := runlet.NewScheduler()
//	lc, err := runlet.New(s, worker.Run,
//	    runlet.WithOnStart(func() { fmt.Println("starting") }),
//	    runlet.WithOnStop(func() { fmt.Println("stopping") }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := lc.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer lc.Stop()
//
// The heavy lifting lives in the sub-packages; import them directly for
// selective use: pkg/task (the lifecycle core), pkg/sched (goroutine
// scheduler), pkg/watch (restart-on-file-change), pkg/log (logging
// abstraction).
package runlet

import (
	"context"

	"github.com/bft-labs/runlet/pkg/log"
	"github.com/bft-labs/runlet/pkg/sched"
	"github.com/bft-labs/runlet/pkg/task"
)

// Re-export the core types for convenient access. Users can also import
// the sub-packages directly for selective import.
type (
	// Lifecycle wraps one asynchronous entry point; see task.Lifecycle.
	Lifecycle = task.Lifecycle

	// Scheduler accepts units of work; see task.Scheduler.
	Scheduler = task.Scheduler

	// Handle controls one submitted unit of work; see task.Handle.
	Handle = task.Handle

	// Guard is a scoped acquisition of a Lifecycle; see task.Guard.
	Guard = task.Guard

	// State is the observable lifecycle state; see task.State.
	State = task.State

	// ReleaseState is Guard.Release's report; see task.ReleaseState.
	ReleaseState = task.ReleaseState

	// Option configures a Lifecycle; see task.Option.
	Option = task.Option

	// Logger is the structured logging interface from pkg/log.
	Logger = log.Logger
)

// Lifecycle states.
const (
	StateIdle       = task.StateIdle
	StateRunning    = task.StateRunning
	StateCancelling = task.StateCancelling
	StateStopped    = task.StateStopped
)

// Release states.
const (
	ReleaseNeverStarted = task.ReleaseNeverStarted
	ReleaseStillRunning = task.ReleaseStillRunning
	ReleaseCancelled    = task.ReleaseCancelled
)

// ErrShutdownTimeout is returned when waiting for work to unwind times out.
var ErrShutdownTimeout = task.ErrShutdownTimeout

// New creates a Lifecycle around run, scheduled on scheduler.
func New(scheduler Scheduler, run func(ctx context.Context), opts ...Option) (*Lifecycle, error) {
	return task.New(scheduler, run, opts...)
}

// NewScheduler returns the default goroutine-backed scheduler.
func NewScheduler(opts ...sched.Option) *sched.Scheduler {
	return sched.New(opts...)
}

// WithOnStart sets the hook invoked before each submission.
func WithOnStart(fn func()) Option { return task.WithOnStart(fn) }

// WithOnStop sets the hook invoked before each cancellation request.
func WithOnStop(fn func()) Option { return task.WithOnStop(fn) }

// WithLogger sets a custom logger for structured logging.
func WithLogger(logger Logger) Option { return task.WithLogger(logger) }

// WithStartImmediately makes New start the task before returning.
func WithStartImmediately() Option { return task.WithStartImmediately() }
