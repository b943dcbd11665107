package core

// Event is a fire-and-forget notification emitted by the simulation.
// The platform forwards events to sound or logging sinks; the simulation
// never waits on them.
type Event int

const (
	EventNone Event = iota
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPieceLocked:
		return "piece_locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "none"
	}
}
