package lightsout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lights-arcade/internal/config"
	"github.com/vovakirdan/lights-arcade/internal/core"
	"github.com/vovakirdan/lights-arcade/internal/registry"
)

func newTestGame(t *testing.T, d Difficulty) (*Game, *memStore) {
	t.Helper()
	store := newMemStore()
	g := New()
	g.UseScorer(NewScorer(store, WithLogger(quietLogger())))
	cfg := core.DefaultConfig()
	cfg.Difficulty = string(d)
	g.Reset(cfg)
	t.Cleanup(g.Close)
	return g, store
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("lightsout should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Lights Out" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestResetDifficultySources(t *testing.T) {
	g := New()
	defer g.Close()

	g.Reset(core.RuntimeConfig{Difficulty: "hard"})
	if g.Difficulty() != Hard {
		t.Errorf("requested difficulty ignored: %s", g.Difficulty())
	}

	cfg := config.DefaultLightsOutConfig()
	cfg.Gameplay.DefaultDifficulty = "easy"
	g.Configure(cfg)
	g.Reset(core.RuntimeConfig{Difficulty: "bogus"})
	if g.Difficulty() != Easy {
		t.Errorf("configured default ignored: %s", g.Difficulty())
	}

	cfg.Gameplay.DefaultDifficulty = "bogus"
	g.Configure(cfg)
	g.Reset(core.RuntimeConfig{})
	if g.Difficulty() != DefaultDifficulty {
		t.Errorf("fallback difficulty = %s, want %s", g.Difficulty(), DefaultDifficulty)
	}
}

func TestCursorMovement(t *testing.T) {
	g, _ := newTestGame(t, Easy)

	g.Step(frame(core.ActionRight, core.ActionRight, core.ActionDown))
	if g.Cursor() != (Position{Row: 1, Col: 2}) {
		t.Errorf("cursor = %+v, want {1 2}", g.Cursor())
	}

	// Wraps by default
	g.Step(frame(core.ActionRight))
	if g.Cursor() != (Position{Row: 1, Col: 0}) {
		t.Errorf("cursor after wrap = %+v, want {1 0}", g.Cursor())
	}

	cfg := config.DefaultLightsOutConfig()
	cfg.Gameplay.CursorWrap = false
	g.Configure(cfg)
	g.Step(frame(core.ActionLeft, core.ActionUp, core.ActionUp))
	if g.Cursor() != (Position{}) {
		t.Errorf("cursor with clamping = %+v, want {0 0}", g.Cursor())
	}
}

func TestConfirmTogglesInOrder(t *testing.T) {
	g, _ := newTestGame(t, Easy)

	// Two presses on the same cell in one frame cancel out
	res := g.Step(frame(core.ActionConfirm, core.ActionConfirm))
	if res.State.Score != 2 {
		t.Errorf("Score = %d, want 2 moves", res.State.Score)
	}
	if g.Engine().Grid().RevealedCount() != 0 {
		t.Errorf("double press left %v", g.Snapshot().Board)
	}
}

func TestWinThroughClicks(t *testing.T) {
	g, store := newTestGame(t, Easy)
	l := g.layout()

	for _, p := range solutions[Easy] {
		x, y := l.cellOrigin(p)
		if !g.Click(x, y) {
			t.Fatalf("Click on %v missed", p)
		}
	}

	res := g.Step(core.NewInputFrame())
	if !res.State.Won || !res.State.GameOver {
		t.Fatalf("state = %+v, want won", res.State)
	}
	if len(res.Events) != 2 || res.Events[0].Kind != core.EventCleared || res.Events[1].Kind != core.EventNewBest {
		t.Fatalf("events = %+v, want cleared + new best", res.Events)
	}
	if res.Events[0].Detail != "easy" {
		t.Errorf("event detail = %q", res.Events[0].Detail)
	}
	if store.records[ScoreKey(Easy)].BestMoves != 5 {
		t.Errorf("stored record = %+v", store.records[ScoreKey(Easy)])
	}
	if got := g.Snapshot().State; got != StateWon {
		t.Errorf("snapshot state = %s", got)
	}

	// Events are delivered once
	if res := g.Step(core.NewInputFrame()); len(res.Events) != 0 {
		t.Errorf("events repeated: %+v", res.Events)
	}
}

func TestClickOnGridLineMisses(t *testing.T) {
	g, _ := newTestGame(t, Normal)
	l := g.layout()

	if g.Click(l.boardX, l.boardY) {
		t.Error("click on the board corner should miss")
	}
	if g.Click(l.boardX+l.cellW+1, l.boardY+1) {
		t.Error("click on a vertical grid line should miss")
	}
	if g.Click(0, 0) {
		t.Error("click outside the board should miss")
	}
	if g.State().Score != 0 {
		t.Error("missed clicks should not count moves")
	}
}

func TestStepDrivesTimer(t *testing.T) {
	g, _ := newTestGame(t, Normal)

	for range 90 {
		g.Step(core.NewInputFrame())
	}
	if got := g.Snapshot().ElapsedSeconds; got != 3 {
		t.Errorf("ElapsedSeconds after 90 frames at 30 fps = %d, want 3", got)
	}
}

func TestDifficultyKeys(t *testing.T) {
	g, _ := newTestGame(t, Normal)
	g.Step(frame(core.ActionDown, core.ActionConfirm))

	g.Step(frame(core.ActionNext))
	snap := g.Snapshot()
	if snap.Difficulty != "hard" || snap.Rows != 5 || snap.Moves != 0 {
		t.Errorf("after Next: %+v", snap)
	}
	if snap.Cursor != (Position{}) {
		t.Errorf("cursor not reset: %+v", snap.Cursor)
	}

	g.Step(frame(core.ActionNext))
	if g.Difficulty() != Easy {
		t.Errorf("Next should wrap to easy, got %s", g.Difficulty())
	}
	g.Step(frame(core.ActionPrev))
	if g.Difficulty() != Hard {
		t.Errorf("Prev should wrap to hard, got %s", g.Difficulty())
	}
}

func TestRestartAction(t *testing.T) {
	g, _ := newTestGame(t, Hard)
	g.Step(frame(core.ActionConfirm, core.ActionRight, core.ActionConfirm))
	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Moves != 0 || snap.ElapsedSeconds != 0 {
		t.Errorf("after restart: %+v", snap)
	}
	for _, row := range snap.Board {
		if strings.Contains(row, "#") {
			t.Fatalf("board not covered after restart: %v", snap.Board)
		}
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, Normal)
	g.Step(frame(core.ActionConfirm))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"LIGHTS OUT", "Difficulty: Normal", "Moves 1", "Time 00:00", "Best: none yet", "╔"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, '▒') {
		t.Error("covered cells should be drawn")
	}
}

func TestRenderWinBanner(t *testing.T) {
	g, _ := newTestGame(t, Easy)
	l := g.layout()
	for _, p := range solutions[Easy] {
		x, y := l.cellOrigin(p)
		g.Click(x, y)
	}
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"CLEARED in 5 moves", "NEW BEST!", "Best: 5 moves"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestTooSmall(t *testing.T) {
	g, _ := newTestGame(t, Hard)
	g.Resize(30, 10)

	res := g.Step(frame(core.ActionConfirm))
	if !res.State.Paused || res.State.Score != 0 {
		t.Errorf("small window should pause input, state = %+v", res.State)
	}

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Error("resize back should resume play")
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{61, "01:01"},
		{3599, "59:59"},
		{6000, "100:00"},
		{-4, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.secs); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestPictures(t *testing.T) {
	names := make(map[string]bool)
	for _, d := range Difficulties() {
		p := PictureFor(d)
		if p.Name == "" || names[p.Name] {
			t.Errorf("%s: picture name %q missing or shared", d, p.Name)
		}
		names[p.Name] = true

		scr := core.NewScreen(20, 8)
		p.Render(scr, core.NewRect(0, 0, 20, 8))
		if strings.TrimSpace(scr.String()) == "" {
			t.Errorf("%s: picture rendered blank", d)
		}
	}

	if r, _ := PictureFor(Easy).At(-1, 0, 10, 10); r != ' ' {
		t.Error("At outside the picture should be blank")
	}
	if PictureFor("unknown").Name != PictureFor(Easy).Name {
		t.Error("unknown difficulty should fall back to the easy picture")
	}
}
