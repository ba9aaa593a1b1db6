package child

// State is the lifecycle state of a gated child process. Transitions are
// monotonic and one-directional: Forked -> Running -> Died.
type State int

// Lifecycle states
const (
	StateForked  State = iota // child exists, blocked on the gate
	StateRunning              // gate released, executing target code
	StateDied                 // terminal, exit status recorded
)

var stateString = []string{
	"forked",
	"running",
	"died",
}

func (s State) String() string {
	if s >= StateForked && s <= StateDied {
		return stateString[s]
	}
	return "invalid"
}
