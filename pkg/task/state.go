package task

// State is the observable lifecycle state, derived from the handle.
type State int

const (
	// StateIdle means no work has ever been submitted.
	StateIdle State = iota
	// StateRunning means a handle is live and cancellation has not been
	// requested.
	StateRunning
	// StateCancelling means cancellation was requested and the work may
	// still be unwinding.
	StateCancelling
	// StateStopped means the retained handle is cancelled and inert; the
	// lifecycle is restartable.
	StateStopped
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateCancelling:
		return "Cancelling"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}
