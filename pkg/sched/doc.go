// Package sched provides the default goroutine-backed implementation of
// task.Scheduler.
//
// Each submitted unit of work runs on its own goroutine under a context
// derived from the scheduler's base context. Cancellation is cooperative:
// the handle's Cancel only cancels that context, and the work is expected
// to observe ctx.Done() and return.
//
// # Usage
//
//	s := sched.New(sched.WithBaseContext(ctx))
//	lc, err := task.New(s, worker.run)
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package sched
