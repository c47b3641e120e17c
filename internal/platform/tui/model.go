package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gosimple/slug"

	"github.com/vovakirdan/lights-arcade/internal/core"
	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
	"github.com/vovakirdan/lights-arcade/internal/registry"
)

// noticeSeconds is how long a status notice stays on the bottom line.
const noticeSeconds = 2

// resizer is implemented by games that can change size without a reset.
type resizer interface {
	Resize(w, h int)
}

// clicker is implemented by games that accept mouse clicks.
type clicker interface {
	Click(x, y int) bool
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	svc        *Services
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	out        io.Writer // where the bell goes
	gen        uint64

	standalone  bool // Back quits the program instead of returning to a menu
	quitting    bool
	backToMenu  bool
	notice      string
	noticeTicks int
}

// NewModel creates a model for game. The game is prepared with the shared
// services but not reset until Init.
func NewModel(game registry.Game, svc *Services, cfg core.RuntimeConfig, out io.Writer) Model {
	cfg = cfg.Normalize()
	svc.PrepareGame(game)

	return Model{
		game:       game,
		svc:        svc,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		out:        out,
		gen:        nextTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		path, err := m.saveScreenshot()
		if err != nil {
			m.svc.Logger.Warn("could not save screenshot", "error", err)
			m.setNotice("Screenshot failed")
		} else {
			m.setNotice("Saved " + filepath.Base(path))
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.closeGame()
		return m, tea.Quit
	}

	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionBack {
		m.closeGame()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleMouse toggles the clicked cell for games that support it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if c, ok := m.game.(clicker); ok {
		c.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. Games that can resize keep
// their run; others restart at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.noticeTicks > 0 {
		m.noticeTicks--
		if m.noticeTicks == 0 {
			m.notice = ""
		}
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.gen)}
	cmds = append(cmds, m.handleEvents(result.Events)...)
	return m, tea.Batch(cmds...)
}

// handleEvents records progress for finished runs.
func (m *Model) handleEvents(events []core.Event) []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		switch ev.Kind {
		case core.EventCleared:
			m.recordClear(ev)
			if !m.svc.Settings.Current().Audio.Muted {
				cmds = append(cmds, bellCmd(m.out))
			}
		case core.EventNewBest:
			m.svc.Logger.Info("new best", "game", ev.GameID, "difficulty", ev.Detail, "moves", m.gameState.Score)
			m.setNotice("New best!")
		}
	}
	return cmds
}

// progressID maps a registry game id to the id kept in the player's cleared
// games.
func progressID(gameID string) string {
	if gameID == lightsout.GameID {
		return lightsout.ProgressID
	}
	return gameID
}

func (m *Model) recordClear(ev core.Event) {
	id := progressID(ev.GameID)
	if err := m.svc.Settings.RecordGameClear(id); err != nil {
		m.svc.Logger.Warn("could not record clear", "game", id, "error", err)
	}

	if ev.GameID != lightsout.GameID {
		return
	}
	key := lightsout.GalleryKey(lightsout.Difficulty(ev.Detail))
	unlocked, err := m.svc.Settings.UnlockContent(key)
	if err != nil {
		m.svc.Logger.Warn("could not unlock picture", "content", key, "error", err)
		return
	}
	if unlocked {
		m.svc.Logger.Info("picture unlocked", "content", key)
	}
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeTicks = noticeSeconds * m.config.TickRate
}

func (m *Model) closeGame() {
	if c, ok := m.game.(registry.Closer); ok {
		c.Close()
	}
}

// saveScreenshot writes the current screen as plain text and returns the path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.svc.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	name := slug.Make(fmt.Sprintf("%s %s", m.game.Title(), time.Now().Format("2006-01-02 15:04:05")))
	path := filepath.Join(m.svc.ScreenshotDir, name+".txt")

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.notice != "" {
		y := m.screen.Height() - 1
		m.screen.DrawRect(core.NewRect(0, y, m.screen.Width(), 1), ' ', core.ColorDefault)
		m.screen.DrawTextCentered(y, m.notice, core.ColorGreen)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for game.
func Run(game registry.Game, svc *Services, cfg core.RuntimeConfig) error {
	model := NewModel(game, svc, cfg, os.Stdout)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
