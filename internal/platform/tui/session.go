package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/lights-arcade/internal/core"
	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
	"github.com/vovakirdan/lights-arcade/internal/registry"
)

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenMode
	screenGame
	screenScores
	screenGallery
	screenSettings
)

// SessionModel manages the full arcade session flow: menu -> screen -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	svc       *Services
	config    core.RuntimeConfig
	username  string
	sessionID string
	out       io.Writer
	screen    sessionScreen
	menu      MenuModel
	mode      LightsOutModeModel
	gameModel Model
	scores    ScoreboardModel
	gallery   GalleryModel
	settings  SettingsModel
	quitting  bool
}

// NewSessionModel creates a new session model. The bell is written to out.
func NewSessionModel(svc *Services, cfg core.RuntimeConfig, username string, out io.Writer) SessionModel {
	cfg = cfg.Normalize()
	id := uuid.NewString()

	// Every log line of this session carries its id.
	sessionSvc := *svc
	sessionSvc.Logger = svc.Logger.With("session", id[:8], "user", username)

	return SessionModel{
		svc:       &sessionSvc,
		config:    cfg,
		username:  username,
		sessionID: id,
		out:       out,
		menu:      NewMenuModel(&sessionSvc, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	m.svc.Logger.Debug("session opened")
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenMode:
		return m.updateMode(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGallery:
		return m.updateGallery(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.screen == screenGame {
		m.gameModel.closeGame()
	}
	m.svc.Logger.Debug("session closed")
	return m, tea.Quit
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.svc, m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case MenuItemGame:
		if selected.GameID == lightsout.GameID {
			m.screen = screenMode
			m.mode = NewLightsOutModeModel(m.svc, m.config.ScreenW, m.config.ScreenH)
			return m, m.mode.Init()
		}
		return m.startGame(selected.GameID)
	case MenuItemScores:
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	case MenuItemGallery:
		m.screen = screenGallery
		m.gallery = NewGalleryModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		return m, m.gallery.Init()
	case MenuItemSettings:
		m.screen = screenSettings
		m.settings = NewSettingsModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		return m, m.settings.Init()
	}

	return m.toMenu()
}

// startGame creates gameID and switches to it.
func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.svc.Logger.Error("could not create game", "game", gameID, "error", err)
		return m.toMenu()
	}

	m.svc.Logger.Info("game started", "game", gameID, "difficulty", m.config.Difficulty)
	m.gameModel = NewModel(game, m.svc, m.config, m.out)
	m.screen = screenGame
	return m, m.gameModel.Init()
}

func (m SessionModel) updateMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.mode.Update(msg)
	if mode, ok := newModel.(LightsOutModeModel); ok {
		m.mode = mode
	}

	switch {
	case m.mode.IsQuitting():
		return m.quit()
	case m.mode.WantsBack():
		return m.toMenu()
	}

	if d, ok := m.mode.Selected(); ok {
		m.config.Difficulty = string(d)
		return m.startGame(lightsout.GameID)
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		return m.quit()
	}
	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gallery.Update(msg)
	if gallery, ok := newModel.(GalleryModel); ok {
		m.gallery = gallery
	}

	switch {
	case m.gallery.IsQuitting():
		return m.quit()
	case m.gallery.WantsBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if st, ok := newModel.(SettingsModel); ok {
		m.settings = st
	}

	switch {
	case m.settings.IsQuitting():
		return m.quit()
	case m.settings.WantsBack():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenMode:
		return m.mode.View()
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scores.View()
	case screenGallery:
		return m.gallery.View()
	case screenSettings:
		return m.settings.View()
	}
	return m.menu.View()
}

// ID returns the session id.
func (m SessionModel) ID() string {
	return m.sessionID
}

// RunSession runs the menu-driven arcade in the local terminal until the
// player quits.
func RunSession(svc *Services, cfg core.RuntimeConfig, username string) error {
	model := NewSessionModel(svc, cfg, username, os.Stdout)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
