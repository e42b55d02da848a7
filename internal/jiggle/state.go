package jiggle

// State is the coordinator's lifecycle state.
type State int

const (
	// StateIdle means the coordinator is not running.
	StateIdle State = iota

	// StateMonitoring means the coordinator is waiting for the idle
	// threshold to be reached.
	StateMonitoring

	// StateJiggling means the coordinator is actively moving the
	// cursor at the configured cadence.
	StateJiggling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateMonitoring:
		return "Monitoring"
	case StateJiggling:
		return "Jiggling"
	default:
		return "Unknown"
	}
}
