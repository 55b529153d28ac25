package receipt

// Status enumerates the pipeline states.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of the pipeline slot. Receipt is meaningful only when
// Status is StatusReady and Err only when Status is StatusFailed.
type State struct {
	Status  Status
	Receipt Receipt
	Err     error
}

func idleState() State {
	return State{Status: StatusIdle}
}

func loadingState() State {
	return State{Status: StatusLoading}
}

func readyState(r Receipt) State {
	return State{Status: StatusReady, Receipt: r}
}

func failedState(err error) State {
	return State{Status: StatusFailed, Err: err}
}

// Message returns the user facing error text of a failed state, or "".
func (s State) Message() string {
	if s.Status != StatusFailed || s.Err == nil {
		return ""
	}
	return s.Err.Error()
}
