package order

// State is the phase of a submission attempt
type State string

const (
	StateIdle       State = "IDLE"
	StateValidating State = "VALIDATING"
	StateRejected   State = "REJECTED"
	StateSending    State = "SENDING"
	StateConfirmed  State = "CONFIRMED"
	StateFailed     State = "FAILED"
)

// IsTerminal reports whether the attempt has resolved
func (s State) IsTerminal() bool {
	return s == StateRejected || s == StateConfirmed || s == StateFailed
}

// String representation (for logging)
func (s State) String() string {
	return string(s)
}

var allowedTransitions = map[State][]State{
	StateIdle:       {StateValidating},
	StateValidating: {StateRejected, StateSending},
	StateSending:    {StateConfirmed, StateFailed},
	StateRejected:   {StateIdle},
	StateConfirmed:  {StateIdle},
	StateFailed:     {StateIdle},
}

func canTransition(from, to State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
