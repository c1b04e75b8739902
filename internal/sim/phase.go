package sim

// Phase is the orchestration state. Only Running advances the simulation.
type Phase uint8

const (
	Uninitialized Phase = iota
	Running
	Paused
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}
