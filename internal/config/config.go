// Package config provides YAML-based game configuration loading for the
// arcade platform. Every game config has an embedded default that user files
// override.
package config

// LightsOutConfig contains all configuration for the Lights Out game.
type LightsOutConfig struct {
	Display  LightsOutDisplay  `yaml:"display"`
	Gameplay LightsOutGameplay `yaml:"gameplay"`
}

// LightsOutDisplay controls how the board is drawn.
type LightsOutDisplay struct {
	CellWidth     int    `yaml:"cell_width"`  // Inner width of a cell in characters
	CellHeight    int    `yaml:"cell_height"` // Inner height of a cell in lines
	CoveredGlyph  string `yaml:"covered_glyph"`
	CoveredColor  string `yaml:"covered_color"`
	GridColor     string `yaml:"grid_color"`
	CursorColor   string `yaml:"cursor_color"`
	WinFlashTicks int    `yaml:"win_flash_ticks"` // Frames the board flashes after a clear
}

// LightsOutGameplay controls input behaviour.
type LightsOutGameplay struct {
	DefaultDifficulty string `yaml:"default_difficulty"`
	CursorWrap        bool   `yaml:"cursor_wrap"` // Cursor wraps around board edges
}

// Cell size limits keep the largest board inside an 80x24 terminal.
const (
	minCellWidth  = 1
	maxCellWidth  = 10
	minCellHeight = 1
	maxCellHeight = 4
)

// Normalize fills missing values from the defaults and clamps sizes.
func (c LightsOutConfig) Normalize() LightsOutConfig {
	def := DefaultLightsOutConfig()

	d := &c.Display
	if d.CellWidth == 0 {
		d.CellWidth = def.Display.CellWidth
	}
	if d.CellHeight == 0 {
		d.CellHeight = def.Display.CellHeight
	}
	d.CellWidth = clamp(d.CellWidth, minCellWidth, maxCellWidth)
	d.CellHeight = clamp(d.CellHeight, minCellHeight, maxCellHeight)
	if d.CoveredGlyph == "" {
		d.CoveredGlyph = def.Display.CoveredGlyph
	}
	if d.CoveredColor == "" {
		d.CoveredColor = def.Display.CoveredColor
	}
	if d.GridColor == "" {
		d.GridColor = def.Display.GridColor
	}
	if d.CursorColor == "" {
		d.CursorColor = def.Display.CursorColor
	}
	if d.WinFlashTicks < 0 {
		d.WinFlashTicks = 0
	}

	if c.Gameplay.DefaultDifficulty == "" {
		c.Gameplay.DefaultDifficulty = def.Gameplay.DefaultDifficulty
	}
	return c
}

// CoveredRune returns the first rune of CoveredGlyph.
func (d LightsOutDisplay) CoveredRune() rune {
	for _, r := range d.CoveredGlyph {
		return r
	}
	return '▒'
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
