package tui

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lights-arcade/internal/config"
	"github.com/vovakirdan/lights-arcade/internal/core"
	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
	"github.com/vovakirdan/lights-arcade/internal/registry"
	"github.com/vovakirdan/lights-arcade/internal/settings"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	logger := log.New(io.Discard)
	svc := NewServices(nil, settings.New(nil, logger), config.DefaultLightsOutConfig(), logger)
	svc.ScreenshotDir = t.TempDir()
	return svc
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		want   core.Action
		isQuit bool
	}{
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"j", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"l", core.ActionRight, false},
		{"space", core.ActionConfirm, false},
		{"enter", core.ActionConfirm, false},
		{"]", core.ActionNext, false},
		{"[", core.ActionPrev, false},
		{"esc", core.ActionBack, false},
		{"r", core.ActionRestart, false},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, isQuit := km.MapKey(keyMsg(tt.key))
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.key, got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameSkipsBack(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("esc"), &frame)
	if !frame.Empty() {
		t.Error("Back should be left to the caller")
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) || !frame.Empty() {
		t.Error("quit should be reported, not queued")
	}
	km.MapKeyToFrame(keyMsg("space"), &frame)
	if !frame.Has(core.ActionConfirm) {
		t.Error("Confirm not queued")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := map[string]MenuAction{
		"k":     MenuActionUp,
		"down":  MenuActionDown,
		"h":     MenuActionLeft,
		"right": MenuActionRight,
		"enter": MenuActionSelect,
		"b":     MenuActionBack,
		"q":     MenuActionQuit,
		"z":     MenuActionNone,
	}
	for key, want := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(key)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", key, got, want)
		}
	}
}

// solveEasy presses the 3x3 solution starting from the top-left cursor.
var solveEasy = []string{
	"space",
	"right", "right", "space",
	"down", "left", "space",
	"down", "left", "space",
	"right", "right", "space",
}

func newTestModel(t *testing.T, svc *Services, d lightsout.Difficulty, out io.Writer) Model {
	t.Helper()
	game, err := registry.Create(lightsout.GameID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	cfg := core.DefaultConfig()
	cfg.Difficulty = string(d)

	m := NewModel(game, svc, cfg, out)
	m.Init()
	t.Cleanup(m.closeGame)
	return m
}

func update(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestModelWinRecordsProgress(t *testing.T) {
	svc := newTestServices(t)
	m := tea.Model(newTestModel(t, svc, lightsout.Easy, io.Discard))

	for _, k := range solveEasy {
		m = update(t, m, keyMsg(k))
	}
	m = update(t, m, TickMsg{Gen: m.(Model).gen})

	model := m.(Model)
	if !model.gameState.Won {
		t.Fatalf("state = %+v, want won", model.gameState)
	}

	cur := svc.Settings.Current()
	if !cur.HasCleared(lightsout.ProgressID) {
		t.Errorf("ClearedGames = %v", cur.Progress.ClearedGames)
	}
	if !cur.IsUnlocked(lightsout.GalleryKey(lightsout.Easy)) {
		t.Errorf("UnlockedContent = %v", cur.Progress.UnlockedContent)
	}
	if cur.IsUnlocked(lightsout.GalleryKey(lightsout.Hard)) {
		t.Error("only the cleared difficulty should unlock")
	}
	if rec, ok := svc.Scorer.Best(lightsout.Easy); !ok || rec.BestMoves != 5 {
		t.Errorf("Best(Easy) = %+v, %v", rec, ok)
	}
	if model.notice != "New best!" {
		t.Errorf("notice = %q", model.notice)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	svc := newTestServices(t)
	m := newTestModel(t, svc, lightsout.Easy, io.Discard)

	next, cmd := m.Update(TickMsg{Gen: m.gen + 1})
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}
	if next.(Model).game.(*lightsout.Game).Snapshot().Tick != 0 {
		t.Error("stale tick stepped the game")
	}
}

func TestModelBack(t *testing.T) {
	svc := newTestServices(t)

	m := newTestModel(t, svc, lightsout.Normal, io.Discard)
	next, cmd := m.Update(keyMsg("esc"))
	if !next.(Model).BackToMenu() || cmd != nil {
		t.Error("Esc in a session should return to the menu")
	}

	m = newTestModel(t, svc, lightsout.Normal, io.Discard)
	m.standalone = true
	next, cmd = m.Update(keyMsg("esc"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("Esc in standalone play should quit")
	}
}

func TestScreenshot(t *testing.T) {
	svc := newTestServices(t)
	m := newTestModel(t, svc, lightsout.Normal, io.Discard)

	next, _ := m.Update(keyMsg("ctrl+s"))

	entries, err := os.ReadDir(svc.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "lights-out-") || filepath.Ext(name) != ".txt" {
		t.Errorf("screenshot name = %q", name)
	}
	data, _ := os.ReadFile(filepath.Join(svc.ScreenshotDir, name))
	if !strings.Contains(string(data), "LIGHTS OUT") {
		t.Error("screenshot should contain the rendered board")
	}
	if !strings.HasPrefix(next.(Model).notice, "Saved ") {
		t.Errorf("notice = %q", next.(Model).notice)
	}
}

func TestBellCmd(t *testing.T) {
	var buf bytes.Buffer
	bellCmd(&buf)()
	if buf.String() != "\a" {
		t.Errorf("bell wrote %q", buf.String())
	}
	if bellCmd(nil) != nil {
		t.Error("nil writer should give no command")
	}
}

func TestSessionFlow(t *testing.T) {
	svc := newTestServices(t)
	m := tea.Model(NewSessionModel(svc, core.DefaultConfig(), "tester", io.Discard))

	// Lights Out is the first entry
	m = update(t, m, keyMsg("enter"))
	if s := m.(SessionModel); s.screen != screenMode {
		t.Fatalf("screen = %v, want difficulty selector", s.screen)
	}
	if !strings.Contains(m.View(), "Select difficulty") {
		t.Error("difficulty selector not shown")
	}

	// Cursor starts on the saved difficulty (normal); move to easy
	m = update(t, m, keyMsg("up"), keyMsg("enter"))
	s := m.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	if got := s.gameModel.game.(*lightsout.Game).Difficulty(); got != lightsout.Easy {
		t.Errorf("game difficulty = %s, want easy", got)
	}
	if got := svc.Settings.Current().Game.Difficulty; got != "easy" {
		t.Errorf("saved difficulty = %q, want easy", got)
	}

	m = update(t, m, keyMsg("esc"))
	if s := m.(SessionModel); s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after Esc", s.screen)
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("quit should end the program")
	}
}

func TestSessionScreens(t *testing.T) {
	svc := newTestServices(t)
	tests := []struct {
		downs int
		want  sessionScreen
		text  string
	}{
		{1, screenScores, "BEST SCORES"},
		{2, screenGallery, "G A L L E R Y"},
		{3, screenSettings, "S E T T I N G S"},
	}

	for _, tt := range tests {
		m := tea.Model(NewSessionModel(svc, core.DefaultConfig(), "tester", io.Discard))
		for range tt.downs {
			m = update(t, m, keyMsg("down"))
		}
		m = update(t, m, keyMsg("enter"))

		if s := m.(SessionModel); s.screen != tt.want {
			t.Errorf("after %d downs: screen = %v, want %v", tt.downs, s.screen, tt.want)
			continue
		}
		if !strings.Contains(m.View(), tt.text) {
			t.Errorf("screen %v missing %q", tt.want, tt.text)
		}

		m = update(t, m, keyMsg("esc"))
		if s := m.(SessionModel); s.screen != screenMenu {
			t.Errorf("Esc from %v did not return to the menu", tt.want)
		}
	}
}

func TestMenuQuitEntry(t *testing.T) {
	m := tea.Model(NewMenuModel(newTestServices(t), core.DefaultConfig()))
	m = update(t, m, keyMsg("up"), keyMsg("enter"))

	menu := m.(MenuModel)
	if !menu.IsQuitting() || menu.Selected() != nil {
		t.Error("Quit entry should quit without a selection")
	}
}

func TestScoreboard(t *testing.T) {
	svc := newTestServices(t)
	svc.Scorer.ApplyResult(lightsout.Normal, 12, 75)

	m := tea.Model(NewScoreboardModel(svc, 100, 30))
	if out := m.View(); !strings.Contains(out, "Best: none yet") || !strings.Contains(out, "not being saved") {
		t.Errorf("easy tab:\n%s", out)
	}

	m = update(t, m, keyMsg("tab"))
	sb := m.(ScoreboardModel)
	if sb.Difficulty() != lightsout.Normal {
		t.Fatalf("tab moved to %s", sb.Difficulty())
	}
	if out := m.View(); !strings.Contains(out, "Best: 12 moves in 01:15") {
		t.Errorf("normal tab:\n%s", out)
	}

	m = update(t, m, keyMsg("left"), keyMsg("left"))
	if got := m.(ScoreboardModel).Difficulty(); got != lightsout.Hard {
		t.Errorf("left should wrap to hard, got %s", got)
	}
}

func TestGallery(t *testing.T) {
	svc := newTestServices(t)
	m := tea.Model(NewGalleryModel(svc, 80, 30))

	if !strings.Contains(m.View(), "Clear Easy to uncover") {
		t.Error("locked picture should show a hint")
	}

	if _, err := svc.Settings.UnlockContent(lightsout.GalleryKey(lightsout.Easy)); err != nil {
		t.Fatalf("UnlockContent: %v", err)
	}
	if out := m.View(); !strings.Contains(out, "Sunrise") {
		t.Errorf("unlocked picture not shown:\n%s", out)
	}

	m = update(t, m, keyMsg("right"))
	if out := m.View(); strings.Contains(out, "Night Harbor") {
		t.Error("locked picture name leaked")
	}
}

func TestSettingsScreen(t *testing.T) {
	svc := newTestServices(t)
	m := tea.Model(NewSettingsModel(svc, 80, 30))

	m = update(t, m, keyMsg("right"))
	if got := svc.Settings.Current().Audio.BGMVolume; got != 60 {
		t.Errorf("BGMVolume = %d, want 60", got)
	}

	m = update(t, m, keyMsg("down"), keyMsg("down"), keyMsg("enter"))
	if !svc.Settings.Current().Audio.Muted {
		t.Error("Enter on Mute should toggle it")
	}

	m = update(t, m, keyMsg("down"), keyMsg("right"))
	if got := svc.Settings.Current().Game.Difficulty; got != "hard" {
		t.Errorf("difficulty = %q, want hard", got)
	}

	// Reset sits at the bottom and needs a second Enter
	m = update(t, m, keyMsg("up"), keyMsg("up"), keyMsg("up"), keyMsg("up"), keyMsg("enter"))
	if !svc.Settings.Current().Audio.Muted {
		t.Fatal("first Enter on reset should only ask for confirmation")
	}
	update(t, m, keyMsg("enter"))
	if cur := svc.Settings.Current(); cur.Audio.Muted || cur.Audio.BGMVolume != 50 {
		t.Errorf("settings after reset = %+v", cur.Audio)
	}
}

func TestMenuMarksClearedGames(t *testing.T) {
	svc := newTestServices(t)
	m := NewMenuModel(svc, core.DefaultConfig())

	if strings.Contains(m.View(), "Lights Out (cleared)") {
		t.Fatal("uncleared game should not be marked")
	}
	if err := svc.Settings.RecordGameClear(lightsout.ProgressID); err != nil {
		t.Fatalf("RecordGameClear: %v", err)
	}
	if !strings.Contains(m.View(), "Lights Out (cleared)") {
		t.Errorf("cleared game not marked:\n%s", m.View())
	}
}

func TestModeSelectorHintsAndBests(t *testing.T) {
	svc := newTestServices(t)
	svc.Scorer.ApplyResult(lightsout.Hard, 21, 90)
	m := NewLightsOutModeModel(svc, 100, 30)

	out := m.View()
	if !strings.Contains(out, "best 21 moves") {
		t.Errorf("hard best not listed:\n%s", out)
	}
	if !strings.Contains(out, "How to play") {
		t.Errorf("hints should show by default:\n%s", out)
	}

	// Tutorial row sits right below Difficulty
	st := tea.Model(NewSettingsModel(svc, 80, 30))
	update(t, st, keyMsg("down"), keyMsg("down"), keyMsg("down"), keyMsg("down"), keyMsg("enter"))
	if svc.Settings.Current().Game.ShowTutorial {
		t.Fatal("Enter on the hints row should turn them off")
	}
	if strings.Contains(m.View(), "How to play") {
		t.Error("hints shown while disabled")
	}
}
