package sched

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/bft-labs/runlet/pkg/log"
	"github.com/bft-labs/runlet/pkg/task"
)

// ErrNilWork is returned by Submit when the unit of work is nil.
var ErrNilWork = errors.New("sched: nil work")

// Scheduler runs each submitted unit of work on its own goroutine under a
// cancellable context. It implements task.Scheduler.
//
// The zero value is not usable; create one with New.
type Scheduler struct {
	base   context.Context
	logger log.Logger
}

// New creates a goroutine-backed scheduler.
func New(opts ...Option) *Scheduler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scheduler{
		base:   o.base,
		logger: o.logger,
	}
}

// Submit starts fn on a new goroutine and returns its handle. The context
// passed to fn derives from the scheduler's base context and is cancelled
// by the handle's Cancel, so base-context shutdown also unwinds the work.
func (s *Scheduler) Submit(fn func(ctx context.Context)) (task.Handle, error) {
	if fn == nil {
		return nil, ErrNilWork
	}

	ctx, cancel := context.WithCancel(s.base)
	h := &handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		defer cancel()
		fn(ctx)
	}()

	s.logger.Debug("work submitted")
	return h, nil
}

// handle controls one goroutine of work.
type handle struct {
	cancel    context.CancelFunc
	requested atomic.Bool
	done      chan struct{}
}

// Cancel requests cooperative cancellation by cancelling the work's
// context. Only the first call has an effect.
func (h *handle) Cancel() {
	if h.requested.CompareAndSwap(false, true) {
		h.cancel()
	}
}

// Cancelling reports whether Cancel has been called.
func (h *handle) Cancelling() bool {
	return h.requested.Load()
}

// Cancelled reports whether cancellation was requested and the goroutine
// has returned. Work that finishes on its own never becomes Cancelled.
func (h *handle) Cancelled() bool {
	if !h.requested.Load() {
		return false
	}
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the goroutine returns.
func (h *handle) Done() <-chan struct{} {
	return h.done
}

// Ensure the scheduler satisfies the consumer-side interface.
var _ task.Scheduler = (*Scheduler)(nil)
