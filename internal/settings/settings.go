// Package settings keeps the player's preferences and progress across runs.
// Values are YAML-encoded and stored through gdata, which picks the
// platform's data directory.
package settings

import "slices"

// Settings is the full persisted preference set.
type Settings struct {
	Audio    Audio    `yaml:"audio"`
	Game     Game     `yaml:"game"`
	Progress Progress `yaml:"progress"`
	Display  Display  `yaml:"display"`
}

// Audio holds volume preferences. Volumes are percentages.
type Audio struct {
	BGMVolume int  `yaml:"bgmVolume"`
	SFXVolume int  `yaml:"sfxVolume"`
	Muted     bool `yaml:"muted"`
}

// Game holds gameplay preferences.
type Game struct {
	Difficulty   string `yaml:"difficulty"`
	Language     string `yaml:"language"`
	ShowTutorial bool   `yaml:"showTutorial"`
}

// Progress records what the player has achieved.
type Progress struct {
	ClearedGames    []string `yaml:"clearedGames"`
	UnlockedContent []string `yaml:"unlockedContent"`
}

// Display holds presentation preferences.
type Display struct {
	ShowBackground   bool    `yaml:"showBackground"`
	EnableAnimations bool    `yaml:"enableAnimations"`
	UIScale          float64 `yaml:"uiScale"`
}

// Default returns the settings of a fresh install.
func Default() Settings {
	return Settings{
		Audio: Audio{
			BGMVolume: 50,
			SFXVolume: 50,
			Muted:     false,
		},
		Game: Game{
			Difficulty:   "normal",
			Language:     "ja",
			ShowTutorial: true,
		},
		Progress: Progress{
			ClearedGames:    []string{},
			UnlockedContent: []string{},
		},
		Display: Display{
			ShowBackground:   true,
			EnableAnimations: true,
			UIScale:          1,
		},
	}
}

// Normalize clamps out-of-range values and fills missing ones.
func (s Settings) Normalize() Settings {
	def := Default()

	s.Audio.BGMVolume = clampInt(s.Audio.BGMVolume, 0, 100)
	s.Audio.SFXVolume = clampInt(s.Audio.SFXVolume, 0, 100)

	if s.Game.Difficulty == "" {
		s.Game.Difficulty = def.Game.Difficulty
	}
	if s.Game.Language == "" {
		s.Game.Language = def.Game.Language
	}

	if s.Display.UIScale == 0 {
		s.Display.UIScale = def.Display.UIScale
	}
	s.Display.UIScale = clampFloat(s.Display.UIScale, 0.5, 2)

	if s.Progress.ClearedGames == nil {
		s.Progress.ClearedGames = []string{}
	}
	if s.Progress.UnlockedContent == nil {
		s.Progress.UnlockedContent = []string{}
	}
	return s
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	s.Progress.ClearedGames = slices.Clone(s.Progress.ClearedGames)
	s.Progress.UnlockedContent = slices.Clone(s.Progress.UnlockedContent)
	return s
}

// HasCleared reports whether gameID has been cleared at least once.
func (s Settings) HasCleared(gameID string) bool {
	return slices.Contains(s.Progress.ClearedGames, gameID)
}

// IsUnlocked reports whether the content id has been unlocked.
func (s Settings) IsUnlocked(id string) bool {
	return slices.Contains(s.Progress.UnlockedContent, id)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
