package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)

	// Difficulty is the preset the player picked before the game started.
	// Empty means the game's own default.
	Difficulty string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Normalize fills zero fields with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Moves for puzzles, points for arcade games
	GameOver bool // Whether the run has ended (a puzzle counts a win as over)
	Won      bool // Whether the run ended in a win
	Paused   bool // Whether the game is paused (e.g. window too small)
}

// Event is something a game wants the platform to react to once.
type Event struct {
	Kind   EventKind
	GameID string
	Detail string // e.g. difficulty of a cleared puzzle
}

// EventKind identifies an Event.
type EventKind int

const (
	EventNone EventKind = iota
	EventCleared
	EventNewBest
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
