package lightsout

import (
	"time"

	"github.com/vovakirdan/lights-arcade/internal/config"
	"github.com/vovakirdan/lights-arcade/internal/core"
	"github.com/vovakirdan/lights-arcade/internal/registry"
)

// GameID is the registry identifier and the game id stored with clears.
const GameID = "lightsout"

// Game adapts an Engine to the arcade platform: cursor, key actions, frame
// timing and rendering.
type Game struct {
	cfg    config.LightsOutConfig
	scorer *Scorer
	engine *Engine

	cursor Position
	tick   uint64

	// Frames since the last whole second handed to the engine.
	frames   int
	tickRate int

	screenW  int
	screenH  int
	tooSmall bool

	flashTicks  int
	pending     []core.Event
	showPicture bool
	animations  bool

	// Best record for the current difficulty, refreshed on reset and win
	// so Render never reads the store.
	best    ScoreRecord
	hasBest bool
	newBest bool
}

// New creates a Lights Out game with the built-in config and in-memory scores.
// The platform swaps in its own scorer and config before the first Reset.
func New() *Game {
	return &Game{
		cfg:         config.DefaultLightsOutConfig(),
		showPicture: true,
		animations:  true,
	}
}

func init() {
	registry.Register(GameID, "Uncover the picture by toggling cells and their neighbours", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lights Out"
}

// UseScorer sets the scorer wins are reported to. A running engine keeps its
// difficulty but starts a fresh run.
func (g *Game) UseScorer(s *Scorer) {
	g.scorer = s
	if g.engine != nil {
		d := g.engine.Difficulty()
		g.engine.Close()
		g.engine = NewEngine(s, d)
		g.refreshBest()
	}
}

// Configure replaces the display and gameplay config.
func (g *Game) Configure(cfg config.LightsOutConfig) {
	g.cfg = cfg.Normalize()
	g.checkScreenSize()
}

// SetShowPicture controls whether revealed cells uncover the picture or stay
// blank.
func (g *Game) SetShowPicture(on bool) {
	g.showPicture = on
}

// SetAnimations enables the board flash after a clear.
func (g *Game) SetAnimations(on bool) {
	g.animations = on
}

// Reset starts a new run. The difficulty comes from cfg, then the configured
// default, then DefaultDifficulty.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	cfg = cfg.Normalize()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	g.tick = 0
	g.frames = 0
	g.flashTicks = 0
	g.pending = nil
	g.cursor = Position{}

	d := g.startDifficulty(cfg.Difficulty)
	if g.engine == nil {
		g.engine = NewEngine(g.scorer, d)
	} else {
		g.engine.Initialize(d)
	}
	g.refreshBest()
	g.checkScreenSize()
}

func (g *Game) startDifficulty(requested string) Difficulty {
	if d, ok := ParseDifficulty(requested); ok {
		return d
	}
	if d, ok := ParseDifficulty(g.cfg.Gameplay.DefaultDifficulty); ok {
		return d
	}
	return DefaultDifficulty
}

// Resize updates the screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	if g.engine == nil {
		return
	}
	l := g.layout()
	g.tooSmall = g.screenW < l.minW || g.screenH < l.minH
}

// Step advances the game by one frame and applies the frame's actions in
// the order they were pressed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	events := g.pending
	g.pending = nil

	if g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.frames++
	if g.frames >= g.tickRate {
		g.frames = 0
		g.engine.Advance(time.Second)
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	for _, a := range in.Sequence() {
		switch a {
		case core.ActionUp:
			g.moveCursor(-1, 0)
		case core.ActionDown:
			g.moveCursor(1, 0)
		case core.ActionLeft:
			g.moveCursor(0, -1)
		case core.ActionRight:
			g.moveCursor(0, 1)
		case core.ActionConfirm:
			events = append(events, g.toggle(g.cursor)...)
		case core.ActionNext:
			g.changeDifficulty(g.engine.Difficulty().Next())
		case core.ActionPrev:
			g.changeDifficulty(g.engine.Difficulty().Prev())
		case core.ActionRestart:
			g.restart()
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(dRow, dCol int) {
	rows, cols := g.dims()
	row, col := g.cursor.Row+dRow, g.cursor.Col+dCol
	if g.cfg.Gameplay.CursorWrap {
		row = core.Wrap(row, rows)
		col = core.Wrap(col, cols)
	} else {
		row = core.Clamp(row, 0, rows-1)
		col = core.Clamp(col, 0, cols-1)
	}
	g.cursor = Position{Row: row, Col: col}
}

func (g *Game) toggle(p Position) []core.Event {
	res := g.engine.Toggle(p)
	if !res.Won {
		return nil
	}

	g.best, g.hasBest, g.newBest = res.Record, true, res.NewBest
	g.flashTicks = g.cfg.Display.WinFlashTicks

	d := string(g.engine.Difficulty())
	events := []core.Event{{Kind: core.EventCleared, GameID: GameID, Detail: d}}
	if res.NewBest {
		events = append(events, core.Event{Kind: core.EventNewBest, GameID: GameID, Detail: d})
	}
	return events
}

func (g *Game) changeDifficulty(d Difficulty) {
	if !g.engine.ChangeDifficulty(d) {
		return
	}
	g.afterRestart()
	g.cursor = Position{}
	g.checkScreenSize()
}

func (g *Game) restart() {
	g.engine.Reset()
	g.afterRestart()
}

func (g *Game) afterRestart() {
	g.frames = 0
	g.flashTicks = 0
	g.refreshBest()

	rows, cols := g.dims()
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, cols-1)
}

func (g *Game) refreshBest() {
	g.newBest = false
	g.best, g.hasBest = g.engine.Scorer().Best(g.engine.Difficulty())
}

// Click toggles the cell under screen position (x, y) and moves the cursor
// there. It reports whether a cell was hit. Events are delivered by the next
// Step.
func (g *Game) Click(x, y int) bool {
	if g.engine == nil || g.tooSmall {
		return false
	}
	p, ok := g.layout().cellAt(x, y)
	if !ok {
		return false
	}
	g.cursor = p
	g.pending = append(g.pending, g.toggle(p)...)
	return true
}

// State returns the current game state. Score is the move count.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	run := g.engine.Run()
	return core.GameState{
		Score:    run.Moves,
		GameOver: run.Won,
		Won:      run.Won,
		Paused:   g.tooSmall,
	}
}

// Close stops the engine clock.
func (g *Game) Close() {
	if g.engine != nil {
		g.engine.Close()
	}
}

// Engine returns the live engine, or nil before the first Reset.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Cursor returns the cursor position.
func (g *Game) Cursor() Position {
	return g.cursor
}

// Difficulty returns the current difficulty, or the start difficulty before
// the first Reset.
func (g *Game) Difficulty() Difficulty {
	if g.engine == nil {
		return g.startDifficulty("")
	}
	return g.engine.Difficulty()
}

func (g *Game) dims() (rows, cols int) {
	return g.engine.Difficulty().Dimensions()
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Toggle | [ ]: Difficulty | R: Reset | Q: Quit"
}
