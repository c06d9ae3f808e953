package task

// ReleaseState reports what Guard.Release observed about the work at the
// instant of release. A plain boolean would conflate "never started" with
// "not yet unwound", so the three cases are explicit.
type ReleaseState int

const (
	// ReleaseNeverStarted means no handle was ever created; the start was
	// a no-op or never ran.
	ReleaseNeverStarted ReleaseState = iota
	// ReleaseStillRunning means cancellation was requested but the work
	// had not finished unwinding at release time.
	ReleaseStillRunning
	// ReleaseCancelled means the work had fully unwound after a
	// cancellation request.
	ReleaseCancelled
)

// String returns a human-readable representation of the release state.
func (s ReleaseState) String() string {
	switch s {
	case ReleaseNeverStarted:
		return "NeverStarted"
	case ReleaseStillRunning:
		return "StillRunning"
	case ReleaseCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Cancelled reports whether the release observed a fully cancelled handle.
func (s ReleaseState) Cancelled() bool { return s == ReleaseCancelled }

// Guard is a scoped acquisition of a Lifecycle: acquiring starts the work,
// releasing stops it. Use with defer so release runs on every exit path:
//
//	g, err := lc.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer g.Release()
type Guard struct {
	lc       *Lifecycle
	released bool
}

// Acquire starts the task and returns a guard whose Release stops it.
// The error is Start's submission error, if any; no guard is returned then.
func (l *Lifecycle) Acquire() (*Guard, error) {
	if err := l.Start(); err != nil {
		return nil, err
	}
	return &Guard{lc: l}, nil
}

// Lifecycle returns the acquired lifecycle, for use inside the scope.
func (g *Guard) Lifecycle() *Lifecycle { return g.lc }

// Release stops the task and reports its cancellation state at that
// instant. The stop happens only on the first call; later calls just
// re-report, which may have progressed from StillRunning to Cancelled once
// the work unwinds.
func (g *Guard) Release() ReleaseState {
	if !g.released {
		g.released = true
		g.lc.Stop()
	}

	switch {
	case g.lc.handle == nil:
		return ReleaseNeverStarted
	case g.lc.handle.Cancelled():
		return ReleaseCancelled
	default:
		return ReleaseStillRunning
	}
}
