package config

import (
	_ "embed"
)

//go:embed defaults/lightsout.yaml
var defaultLightsOutYAML []byte

// DefaultLightsOutConfig returns the built-in Lights Out configuration.
func DefaultLightsOutConfig() LightsOutConfig {
	return LightsOutConfig{
		Display: LightsOutDisplay{
			CellWidth:     6,
			CellHeight:    2,
			CoveredGlyph:  "▒",
			CoveredColor:  "gray",
			GridColor:     "dim",
			CursorColor:   "bright_yellow",
			WinFlashTicks: 45,
		},
		Gameplay: LightsOutGameplay{
			DefaultDifficulty: "normal",
			CursorWrap:        true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lightsout":
		return defaultLightsOutYAML
	default:
		return nil
	}
}
