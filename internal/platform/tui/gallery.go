package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lights-arcade/internal/core"
	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
)

// GalleryModel shows the pictures the player has uncovered. Pictures of
// uncleared difficulties stay hidden.
type GalleryModel struct {
	svc          *Services
	difficulties []lightsout.Difficulty
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	quitting     bool
	back         bool
}

// NewGalleryModel creates the gallery screen.
func NewGalleryModel(svc *Services, width, height int) GalleryModel {
	return GalleryModel{
		svc:          svc,
		difficulties: lightsout.Difficulties(),
		width:        width,
		height:       height,
		keyMapper:    NewKeyMapper(),
	}
}

// Init initializes the model.
func (m GalleryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
		case MenuActionBack:
			m.back = true
		case MenuActionLeft, MenuActionUp:
			m.cursor = core.Wrap(m.cursor-1, len(m.difficulties))
		case MenuActionRight, MenuActionDown:
			m.cursor = core.Wrap(m.cursor+1, len(m.difficulties))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// Unlocked reports whether the picture of d has been uncovered.
func (m GalleryModel) Unlocked(d lightsout.Difficulty) bool {
	return m.svc.Settings.Current().IsUnlocked(lightsout.GalleryKey(d))
}

// View renders the selected picture or its locked placeholder.
func (m GalleryModel) View() string {
	if m.quitting {
		return ""
	}

	d := m.difficulties[m.cursor]
	pic := lightsout.PictureFor(d)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G A L L E R Y"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.difficulties))
	for i, td := range m.difficulties {
		label := td.Label()
		if !m.Unlocked(td) {
			label += " ?"
		}
		if i == m.cursor {
			tabs[i] = selectedStyle.Render("[" + label + "]")
		} else {
			tabs[i] = mutedStyle.Render(" " + label + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	w := core.Clamp(m.width-8, 10, 60)
	h := core.Clamp(m.height-12, 4, 16)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	var body, caption string
	if m.Unlocked(d) {
		scr := core.NewScreen(w, h)
		pic.Render(scr, core.NewRect(0, 0, w, h))
		body = RenderScreen(scr)
		caption = pic.Name
	} else {
		locked := lipgloss.NewStyle().
			Width(w).
			Height(h).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("241"))
		body = locked.Render(fmt.Sprintf("Clear %s to uncover this picture", d.Label()))
		caption = "???"
	}

	box := frame.Render(body)
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(caption, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Left/Right: Browse  |  Esc: Back", m.width))

	return b.String()
}

// IsQuitting returns true if user wants to quit.
func (m GalleryModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m GalleryModel) WantsBack() bool {
	return m.back
}
