package lightsout

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Difficulty     string
	Rows           int
	Cols           int
	Board          []string // '#' revealed, '.' covered
	Cursor         Position
	Moves          int
	ElapsedSeconds int
	State          GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{State: StatePlaying}
	}

	grid := g.engine.Grid()
	run := g.engine.Run()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case run.Won:
		state = StateWon
	}

	return Snapshot{
		Tick:           g.tick,
		Difficulty:     string(g.engine.Difficulty()),
		Rows:           grid.Rows(),
		Cols:           grid.Cols(),
		Board:          grid.Pattern(),
		Cursor:         g.cursor,
		Moves:          run.Moves,
		ElapsedSeconds: run.ElapsedSeconds,
		State:          state,
	}
}
