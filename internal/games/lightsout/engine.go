package lightsout

import (
	"sync"
	"time"
)

// Run is the transient state of one play session.
type Run struct {
	Moves          int
	ElapsedSeconds int
	Won            bool
}

// ToggleResult reports what a Toggle did.
type ToggleResult struct {
	Applied bool // false when ignored (run already won or position off the grid)
	Flipped int  // cells whose state changed, 1..5 when applied
	Won     bool // this toggle completed the puzzle

	// Record and NewBest are set only when Won is true.
	Record  ScoreRecord
	NewBest bool
}

// Engine owns the live grid and run. Every method runs to completion under
// one lock, so clock ticks and player toggles are serialized.
type Engine struct {
	mu         sync.Mutex
	scorer     *Scorer
	difficulty Difficulty
	grid       *Grid
	run        Run
	timer      Timer
}

// NewEngine creates an engine and starts a run at difficulty d.
// A nil scorer keeps scores in memory only.
func NewEngine(scorer *Scorer, d Difficulty) *Engine {
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	e := &Engine{scorer: scorer}
	e.Initialize(d)
	return e
}

// Initialize replaces the grid with a fully covered one for d and starts a
// fresh run. Unknown difficulties get the smallest grid.
func (e *Engine) Initialize(d Difficulty) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initialize(d)
}

func (e *Engine) initialize(d Difficulty) {
	e.timer.Stop()
	e.difficulty = d
	rows, cols := d.Dimensions()
	e.grid = NewGrid(rows, cols)
	e.run = Run{}
	e.timer.Start()
}

// Reset restarts the current difficulty.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initialize(e.difficulty)
}

// ChangeDifficulty switches to d and starts a fresh run. It reports false and
// leaves the run untouched when d is already current.
func (e *Engine) ChangeDifficulty(d Difficulty) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if d == e.difficulty {
		return false
	}
	e.initialize(d)
	return true
}

// Toggle flips p and its orthogonal neighbours and counts one move.
// It is ignored once the run is won or when p is off the grid.
func (e *Engine) Toggle(p Position) ToggleResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.run.Won || !e.grid.In(p) {
		return ToggleResult{}
	}

	res := ToggleResult{
		Applied: true,
		Flipped: e.grid.Toggle(p),
	}
	e.run.Moves++

	if e.grid.AllRevealed() {
		e.run.Won = true
		e.timer.Stop()
		res.Won = true
		res.Record, res.NewBest = e.scorer.ApplyResult(e.difficulty, e.run.Moves, e.run.ElapsedSeconds)
	}
	return res
}

// Tick counts one elapsed second. It is a no-op when the timer is stopped or
// the run is already won.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tick()
}

func (e *Engine) tick() bool {
	if !e.timer.Running() || e.run.Won {
		return false
	}
	e.run.ElapsedSeconds++
	return true
}

// Advance feeds d of wall time to the timer and applies the whole seconds
// that completed. It returns the number of seconds counted.
func (e *Engine) Advance(d time.Duration) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	counted := 0
	for n := e.timer.Advance(d); n > 0; n-- {
		if e.tick() {
			counted++
		}
	}
	return counted
}

// Close stops the timer. The run stays readable; the next Initialize or
// Reset starts a new clock.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.timer.Stop()
}

// Difficulty returns the current difficulty.
func (e *Engine) Difficulty() Difficulty {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.difficulty
}

// Grid returns a copy of the live grid.
func (e *Engine) Grid() *Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Clone()
}

// Run returns the current run state.
func (e *Engine) Run() Run {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.run
}

// TimerRunning reports whether the run clock is counting.
func (e *Engine) TimerRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.Running()
}

// Scorer returns the scorer the engine reports wins to.
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}
