// Package task wraps a single long-running asynchronous entry point with a
// uniform start/stop/scoped-acquisition API.
//
// This package is for objects that perform one self-contained asynchronous
// operation (a background worker, a connection loop) and need non-blocking,
// idempotent lifecycle control instead of bespoke start/stop code in every
// type. Execution itself is delegated to a Scheduler collaborator; the
// sched package provides a goroutine-backed one.
//
// # Usage
//
// Compose a Lifecycle into the owning type and forward to it:
//
//	type Worker struct {
//	    lc *task.Lifecycle
//	}
//
//	func NewWorker(s task.Scheduler) (*Worker, error) {
//	    w := &Worker{}
//	    lc, err := task.New(s, w.run,
//	        task.WithOnStart(func() { /* side effect */ }),
//	        task.WithOnStop(func() { /* side effect */ }),
//	    )
//	    if err != nil {
//	        return nil, err
//	    }
//	    w.lc = lc
//	    return w, nil
//	}
//
//	func (w *Worker) Start() error { return w.lc.Start() }
//	func (w *Worker) Stop()        { w.lc.Stop() }
//
//	func (w *Worker) run(ctx context.Context) {
//	    // loop until ctx is cancelled
//	}
//
// Or acquire it as a scoped resource:
//
//	g, err := lc.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer g.Release()
//
// # State Machine
//
// The state is derived from the retained handle:
//   - Idle -> Running via Start
//   - Running -> Cancelling via Stop
//   - Cancelling -> Stopped once the work unwinds
//   - Stopped -> Running via Start (restart)
//
// Redundant Start and Stop calls in any state are silent no-ops, never
// errors. A lifecycle is reusable indefinitely across start/stop cycles.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package task
