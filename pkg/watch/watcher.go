package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/runlet/pkg/log"
	"github.com/bft-labs/runlet/pkg/task"
)

// Restarter is the start/stop surface the watcher drives.
// *task.Lifecycle satisfies it, as does any type composing one.
type Restarter interface {
	Start() error
	Stop()
	WaitWithTimeout(timeout time.Duration) error
}

// Config holds configuration options for the file watcher.
type Config struct {
	// Path is the file whose changes trigger a restart.
	Path string

	// DebounceDelay is the delay to wait after a file change before
	// restarting, so editors that write in bursts trigger one restart.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// WaitTimeout bounds how long a restart waits for the old work to
	// unwind before resubmitting.
	// Default: task.ShutdownTimeout
	WaitTimeout time.Duration
}

// Watcher monitors one file and restarts a lifecycle when it changes.
//
// A restart is stop, wait for the work to unwind, start. While the watcher
// runs it must be the sole driver of the target's Start and Stop.
type Watcher struct {
	path          string
	debounceDelay time.Duration
	waitTimeout   time.Duration
	target        Restarter
	logger        log.Logger

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.Mutex
	debounce *time.Timer
	restarts int
}

// New creates a watcher for cfg.Path that restarts target on change.
func New(cfg Config, target Restarter, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = task.ShutdownTimeout
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	return &Watcher{
		path:          cfg.Path,
		debounceDelay: cfg.DebounceDelay,
		waitTimeout:   cfg.WaitTimeout,
		target:        target,
		logger:        logger,
	}
}

// Start begins watching. It returns an error if the underlying watcher
// cannot be created or the file's directory cannot be watched.
func (w *Watcher) Start(ctx context.Context) error {
	// Watch the directory rather than the file itself so atomic
	// replace-by-rename, common for config writes, is still observed.
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.logger.Info("file watcher started", log.String("path", w.path))

	w.wg.Add(1)
	go w.watchLoop(watchCtx, fsw)

	return nil
}

// Stop stops watching and waits for the watch loop to exit. It does not
// stop the target.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

// Restarts returns how many restarts the watcher has performed.
func (w *Watcher) Restarts() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.restarts
}

// watchLoop consumes filesystem events until the context is cancelled.
func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceRestart(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", log.Err(err))
		}
	}
}

// debounceRestart schedules a restart, collapsing bursts of events.
func (w *Watcher) debounceRestart(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		w.restart(ctx)
	})
}

// restart cycles the target: stop, wait for unwinding, start.
func (w *Watcher) restart(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	w.logger.Info("file changed, restarting", log.String("path", w.path))

	w.target.Stop()
	if err := w.target.WaitWithTimeout(w.waitTimeout); err != nil {
		w.logger.Error("restart: work did not unwind", log.Err(err))
		return
	}
	if err := w.target.Start(); err != nil {
		w.logger.Error("restart: start failed", log.Err(err))
		return
	}

	w.mu.Lock()
	w.restarts++
	w.mu.Unlock()

	w.logger.Info("restart complete")
}
