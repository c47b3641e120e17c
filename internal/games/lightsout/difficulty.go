// Package lightsout implements the Lights Out puzzle: a grid of covered cells
// where toggling a cell flips it and its orthogonal neighbours. The run is won
// once every cell is revealed; completed runs feed a per-difficulty best score.
package lightsout

import "strings"

// Difficulty selects the grid size.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// DefaultDifficulty is used when neither the player nor the settings pick one.
const DefaultDifficulty = Normal

var difficulties = []Difficulty{Easy, Normal, Hard}

// Difficulties returns all difficulties from smallest to largest grid.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// ParseDifficulty parses a difficulty name, ignoring case and surrounding space.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Valid()
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Normal, Hard:
		return true
	}
	return false
}

// Dimensions returns the grid size for d. Unknown values get the smallest grid.
func (d Difficulty) Dimensions() (rows, cols int) {
	switch d {
	case Normal:
		return 4, 4
	case Hard:
		return 5, 5
	default:
		return 3, 3
	}
}

// Label returns the display name.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return string(d)
	}
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	return d.shift(1)
}

// Prev returns the preceding difficulty, wrapping around.
func (d Difficulty) Prev() Difficulty {
	return d.shift(-1)
}

func (d Difficulty) shift(by int) Difficulty {
	idx := 0
	for i, v := range difficulties {
		if v == d {
			idx = i
			break
		}
	}
	n := len(difficulties)
	return difficulties[((idx+by)%n+n)%n]
}

// ScoreKeyPrefix starts every best-record key.
const ScoreKeyPrefix = "lights-out-"

// ScoreKey returns the store key holding the best record for d.
func ScoreKey(d Difficulty) string {
	return ScoreKeyPrefix + string(d)
}
