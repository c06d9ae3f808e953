// Package heartbeat provides the worker the runlet CLI runs: a loop that
// emits a log line at a fixed interval until stopped.
//
// It is also the reference for composing a task.Lifecycle into an owning
// type: the worker keeps its loop private and forwards Start, Stop, and
// scoped acquisition to the embedded lifecycle.
package heartbeat

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bft-labs/runlet/pkg/log"
	"github.com/bft-labs/runlet/pkg/task"
)

// DefaultInterval is the default delay between beats.
const DefaultInterval = time.Second

// Config holds configuration for the heartbeat worker.
type Config struct {
	// Interval is the delay between beats. Defaults to DefaultInterval.
	Interval time.Duration

	// Beats limits how many beats are emitted before the loop finishes on
	// its own. Zero means unlimited.
	Beats int
}

// Heartbeat is a background worker managed through a task.Lifecycle.
type Heartbeat struct {
	lc       *task.Lifecycle
	interval time.Duration
	beats    int
	logger   log.Logger
	count    atomic.Int64
}

// New creates a heartbeat worker scheduled on the given scheduler.
func New(scheduler task.Scheduler, cfg Config, logger log.Logger) (*Heartbeat, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	h := &Heartbeat{
		interval: cfg.Interval,
		beats:    cfg.Beats,
		logger:   logger,
	}

	lc, err := task.New(scheduler, h.run,
		task.WithOnStart(func() {
			h.logger.Info("heartbeat starting",
				log.Duration("interval", h.interval),
				log.Int("beats", h.beats),
			)
		}),
		task.WithOnStop(func() {
			h.logger.Info("heartbeat stopping",
				log.Int64("emitted", h.count.Load()),
			)
		}),
		task.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	h.lc = lc
	return h, nil
}

// Start begins beating in the background. Redundant starts are no-ops.
func (h *Heartbeat) Start() error { return h.lc.Start() }

// Stop requests the loop to unwind. Redundant stops are no-ops.
func (h *Heartbeat) Stop() { h.lc.Stop() }

// Acquire starts the worker as a scoped resource; release it to stop.
func (h *Heartbeat) Acquire() (*task.Guard, error) { return h.lc.Acquire() }

// RunBlocking beats until the beat limit is reached or ctx is cancelled.
func (h *Heartbeat) RunBlocking(ctx context.Context) error {
	return h.lc.RunBlocking(ctx)
}

// WaitWithTimeout waits for the loop to unwind after a stop.
func (h *Heartbeat) WaitWithTimeout(timeout time.Duration) error {
	return h.lc.WaitWithTimeout(timeout)
}

// State returns the lifecycle state of the worker.
func (h *Heartbeat) State() task.State { return h.lc.State() }

// Count returns how many beats have been emitted so far.
func (h *Heartbeat) Count() int64 { return h.count.Load() }

// run is the asynchronous entry point managed by the lifecycle.
func (h *Heartbeat) run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := h.count.Add(1)
			h.logger.Info("beat", log.Int64("n", n))
			if h.beats > 0 && n >= int64(h.beats) {
				return
			}
		}
	}
}
