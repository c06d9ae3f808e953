// Package watch restarts a task lifecycle when a watched file changes.
//
// The typical use is hot-reload of a worker's configuration: the CLI
// points a Watcher at its config file, and an edit to the file cycles the
// worker through stop, wait, start. Changes are debounced so editors that
// write in several bursts trigger a single restart.
//
// # Usage
//
//	w := watch.New(watch.Config{Path: cfgPath}, lifecycle, logger)
//	if err := w.Start(ctx); err != nil {
//	    return err
//	}
//	defer w.Stop()
//
// While a Watcher runs it must be the sole driver of the target's Start
// and Stop; the lifecycle core does not arbitrate concurrent callers.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package watch
