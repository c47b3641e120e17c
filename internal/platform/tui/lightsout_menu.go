package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
	"github.com/vovakirdan/lights-arcade/internal/settings"
)

// howToPlay is shown under the difficulty list while hints are enabled.
var howToPlay = []string{
	"How to play: every cell starts covered.",
	"Toggling a cell flips it and its four neighbours.",
	"Uncover every cell to reveal the picture in as few moves as you can.",
}

// LightsOutModeModel lets users choose the Lights Out difficulty. The choice
// becomes the saved default for the next run.
type LightsOutModeModel struct {
	svc          *Services
	difficulties []lightsout.Difficulty
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    lightsout.Difficulty
	choosing     bool
	quitting     bool
	back         bool
}

// NewLightsOutModeModel creates the selector with the cursor on the saved
// difficulty.
func NewLightsOutModeModel(svc *Services, width, height int) LightsOutModeModel {
	ds := lightsout.Difficulties()
	cursor := 0
	if d, ok := lightsout.ParseDifficulty(svc.Settings.Current().Game.Difficulty); ok {
		cursor = max(slices.Index(ds, d), 0)
	}

	return LightsOutModeModel{
		svc:          svc,
		difficulties: ds,
		cursor:       cursor,
		width:        width,
		height:       height,
		keyMapper:    NewKeyMapper(),
		choosing:     true,
	}
}

// Init initializes the model.
func (m LightsOutModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LightsOutModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LightsOutModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionUp, MenuActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.cursor < len(m.difficulties)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = m.difficulties[m.cursor]
		m.remember(m.selection)
	case MenuActionBack:
		m.back = true
	}

	return m, nil
}

// remember stores d as the default difficulty.
func (m LightsOutModeModel) remember(d lightsout.Difficulty) {
	err := m.svc.Settings.Update(func(s *settings.Settings) {
		s.Game.Difficulty = string(d)
	})
	if err != nil {
		m.svc.Logger.Warn("could not save difficulty", "difficulty", d, "error", err)
	}
}

// View renders the difficulty list with each board size and best run.
func (m LightsOutModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L I G H T S   O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	bests := m.svc.Scorer.LoadAll()
	for i, d := range m.difficulties {
		rows, cols := d.Dimensions()
		best := "no clear yet"
		if rec, ok := bests[d]; ok {
			best = fmt.Sprintf("best %d moves", rec.BestMoves)
		}

		line := fmt.Sprintf("%-7s %dx%d  %s", d.Label(), rows, cols, best)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(lightsout.PictureFor(m.difficulties[m.cursor]).Name), m.width))
	b.WriteString("\n\n")
	if m.svc.Settings.Current().Game.ShowTutorial {
		for _, line := range howToPlay {
			b.WriteString(centerText(mutedStyle.Render(line), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen difficulty, or false while still choosing.
func (m LightsOutModeModel) Selected() (lightsout.Difficulty, bool) {
	if m.choosing {
		return "", false
	}
	return m.selection, true
}

// IsQuitting returns true if user wants to quit.
func (m LightsOutModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LightsOutModeModel) WantsBack() bool {
	return m.back
}
