package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lights-arcade/internal/core"
	"github.com/vovakirdan/lights-arcade/internal/registry"
)

// MenuItemKind tells the session what a menu entry opens.
type MenuItemKind int

const (
	MenuItemGame MenuItemKind = iota
	MenuItemScores
	MenuItemGallery
	MenuItemSettings
	MenuItemQuit
)

// MenuItem represents a selectable entry on the home menu.
type MenuItem struct {
	Kind        MenuItemKind
	GameID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the home menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	svc       *Services
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects an entry
}

// NewMenuModel creates a new menu model listing every registered game
// followed by the shared screens.
func NewMenuModel(svc *Services, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+4)

	for _, g := range games {
		items = append(items, MenuItem{
			Kind:        MenuItemGame,
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}
	items = append(items,
		MenuItem{Kind: MenuItemScores, Title: "Best Scores", Description: "Best runs and clear history"},
		MenuItem{Kind: MenuItemGallery, Title: "Gallery", Description: "Pictures you have uncovered"},
		MenuItem{Kind: MenuItemSettings, Title: "Settings", Description: "Sound, display and difficulty"},
		MenuItem{Kind: MenuItemQuit, Title: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		svc:       svc,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, len(m.items))

	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, len(m.items))

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Kind == MenuItemQuit {
			m.quitting = true
			return m, nil
		}
		m.selected = &selected
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L I G H T S   A R C A D E"), m.width))
	b.WriteString("\n\n")

	st := m.svc.Settings.Current()
	uncovered := fmt.Sprintf("Pictures uncovered: %d", len(st.Progress.UnlockedContent))
	b.WriteString(centerText(mutedStyle.Render(uncovered), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		title := item.Title
		if item.Kind == MenuItemGame && st.HasCleared(progressID(item.GameID)) {
			title += " (cleared)"
		}
		line := "  " + title
		if i == m.cursor {
			line = selectedStyle.Render("> " + title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if desc := m.items[m.cursor].Description; desc != "" {
		b.WriteString(centerText(mutedStyle.Render(desc), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
