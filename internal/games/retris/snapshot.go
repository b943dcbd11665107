package retris

// GameStateType represents the current game state.
type GameStateType string

const (
	StateFalling     GameStateType = "falling"
	StateTransition  GameStateType = "level_transition"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Score    int
	Lines    int
	Level    int
	Combo    int
	Active   string // shape name, empty when no piece is falling
	Rot      int
	X, Y     int
	Next     string
	Occupied int // locked cells on the grid
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateFalling
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.inTransition:
		state = StateTransition
	}

	snap := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.score.score,
		Lines:    g.score.lines,
		Level:    g.score.level,
		Combo:    g.score.combo,
		Next:     g.next.Name(),
		Occupied: g.grid.OccupiedCount(),
		State:    state,
	}
	if g.falling {
		snap.Active = g.active.Shape.Name()
		snap.Rot = g.active.Rot
		snap.X = g.active.X
		snap.Y = g.active.Y
	}
	return snap
}
