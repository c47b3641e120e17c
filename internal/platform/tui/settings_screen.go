package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
	"github.com/vovakirdan/lights-arcade/internal/settings"
)

type settingsRow int

const (
	rowBGM settingsRow = iota
	rowSFX
	rowMuted
	rowDifficulty
	rowTutorial
	rowPicture
	rowAnimations
	rowScale
	rowReset
	rowCount
)

const (
	volumeStep = 10
	scaleStep  = 0.25
)

// SettingsModel edits the persisted preferences. Every change is saved
// immediately.
type SettingsModel struct {
	svc          *Services
	cursor       settingsRow
	width        int
	height       int
	keyMapper    *KeyMapper
	confirmReset bool
	status       string
	quitting     bool
	back         bool
}

// NewSettingsModel creates the settings screen.
func NewSettingsModel(svc *Services, width, height int) SettingsModel {
	return SettingsModel{
		svc:       svc,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action != MenuActionSelect {
		m.confirmReset = false
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionBack:
		m.back = true
	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor == rowReset {
			m.reset()
		} else {
			m.adjust(1)
		}
	}
	return m, nil
}

// adjust changes the value under the cursor one step in dir.
func (m *SettingsModel) adjust(dir int) {
	if m.cursor == rowReset {
		return
	}

	err := m.svc.Settings.Update(func(s *settings.Settings) {
		switch m.cursor {
		case rowBGM:
			s.Audio.BGMVolume += dir * volumeStep
		case rowSFX:
			s.Audio.SFXVolume += dir * volumeStep
		case rowMuted:
			s.Audio.Muted = !s.Audio.Muted
		case rowDifficulty:
			d, ok := lightsout.ParseDifficulty(s.Game.Difficulty)
			if !ok {
				d = lightsout.DefaultDifficulty
			}
			if dir < 0 {
				d = d.Prev()
			} else {
				d = d.Next()
			}
			s.Game.Difficulty = string(d)
		case rowTutorial:
			s.Game.ShowTutorial = !s.Game.ShowTutorial
		case rowPicture:
			s.Display.ShowBackground = !s.Display.ShowBackground
		case rowAnimations:
			s.Display.EnableAnimations = !s.Display.EnableAnimations
		case rowScale:
			s.Display.UIScale += float64(dir) * scaleStep
		}
	})
	m.report(err, "")
}

// reset asks for confirmation before restoring defaults and wiping progress.
func (m *SettingsModel) reset() {
	if !m.confirmReset {
		m.confirmReset = true
		m.status = "Press Enter again to reset settings and progress"
		return
	}
	m.confirmReset = false
	m.report(m.svc.Settings.Reset(), "Settings reset")
}

func (m *SettingsModel) report(err error, ok string) {
	if err != nil {
		m.svc.Logger.Warn("could not save settings", "error", err)
		m.status = "Could not save settings"
		return
	}
	m.status = ok
}

// View renders the settings list.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.svc.Settings.Current()
	labels := [rowCount][2]string{
		rowBGM:        {"Music volume", fmt.Sprintf("%d%%", s.Audio.BGMVolume)},
		rowSFX:        {"Effects volume", fmt.Sprintf("%d%%", s.Audio.SFXVolume)},
		rowMuted:      {"Mute", onOff(s.Audio.Muted)},
		rowDifficulty: {"Difficulty", lightsout.Difficulty(s.Game.Difficulty).Label()},
		rowTutorial:   {"How-to-play hints", onOff(s.Game.ShowTutorial)},
		rowPicture:    {"Show picture", onOff(s.Display.ShowBackground)},
		rowAnimations: {"Animations", onOff(s.Display.EnableAnimations)},
		rowScale:      {"Cell scale", fmt.Sprintf("%.2fx", s.Display.UIScale)},
		rowReset:      {"Reset everything", ""},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S E T T I N G S"), m.width))
	b.WriteString("\n\n")

	for i, l := range labels {
		line := fmt.Sprintf("%-18s %8s", l[0], l[1])
		if settingsRow(i) == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if !m.svc.Settings.Persistent() {
		b.WriteString(centerText(errorStyle.Render("Settings are kept for this session only"), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(mutedStyle.Render(m.status), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Left/Right: Change  |  Enter: Toggle  |  Esc: Back", m.width))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// IsQuitting returns true if user wants to quit.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SettingsModel) WantsBack() bool {
	return m.back
}
