package lightsout

import (
	"math"

	"github.com/vovakirdan/lights-arcade/internal/core"
)

// Picture is the image hidden under the board of one difficulty. It is drawn
// procedurally so it scales to any board size.
type Picture struct {
	Name string
	draw func(x, y, w, h int) (rune, core.Color)
}

// At returns the glyph at (x, y) of a w×h rendering of the picture.
func (p Picture) At(x, y, w, h int) (rune, core.Color) {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x >= w || y >= h {
		return ' ', core.ColorDefault
	}
	return p.draw(x, y, w, h)
}

// Render draws the picture into r.
func (p Picture) Render(dst *core.Screen, r core.Rect) {
	for y := range r.H {
		for x := range r.W {
			ch, c := p.At(x, y, r.W, r.H)
			dst.SetColored(r.X+x, r.Y+y, ch, c)
		}
	}
}

var pictures = map[Difficulty]Picture{
	Easy:   {Name: "Sunrise", draw: drawSunrise},
	Normal: {Name: "Night Harbor", draw: drawHarbor},
	Hard:   {Name: "Mountain Range", draw: drawMountains},
}

// PictureFor returns the picture for d. Unknown difficulties share the
// smallest board's picture.
func PictureFor(d Difficulty) Picture {
	if p, ok := pictures[d]; ok {
		return p
	}
	return pictures[Easy]
}

// ProgressID is the id recorded in the player's cleared games.
const ProgressID = "lights-out"

// GalleryKey is the unlockable content id of the picture for d.
func GalleryKey(d Difficulty) string {
	return ScoreKey(d)
}

// ellipse distance with terminal cells counted as twice as tall as wide.
func dist(x, y int, cx, cy float64) float64 {
	dx := (float64(x) + 0.5 - cx) / 2
	dy := float64(y) + 0.5 - cy
	return math.Sqrt(dx*dx + dy*dy)
}

func drawSunrise(x, y, w, h int) (rune, core.Color) {
	horizon := h * 2 / 3
	sun := dist(x, y, float64(w)/2, float64(horizon))
	radius := float64(h) / 3

	switch {
	case y >= horizon:
		if (x+y)%3 == 0 {
			return '≈', core.ColorBlue
		}
		return '~', core.ColorCyan
	case sun <= radius*0.6:
		return '█', core.ColorBrightYellow
	case sun <= radius:
		return '▓', core.ColorYellow
	case sun <= radius*1.5:
		return '░', core.ColorOrange
	case y < h/4:
		return ' ', core.ColorDefault
	default:
		return '·', core.ColorRed
	}
}

func drawHarbor(x, y, w, h int) (rune, core.Color) {
	water := h * 3 / 4
	moon := dist(x, y, float64(w)*3/4, float64(h)/4)
	radius := float64(h) / 6

	switch {
	case y >= water:
		if x%4 == (y*2)%4 {
			return '~', core.ColorBrightCyan
		}
		return '~', core.ColorBlue
	case y == water-1 && x > w/8 && x < w*3/8:
		return '▄', core.ColorGray
	case moon <= radius:
		return '●', core.ColorWhite
	case star(x, y):
		return '*', core.ColorBrightYellow
	default:
		return ' ', core.ColorDefault
	}
}

// star scatters stars with a fixed hash so the sky is stable between frames.
func star(x, y int) bool {
	v := uint32(x*73856093) ^ uint32(y*19349663)
	return v%17 == 0
}

func drawMountains(x, y, w, h int) (rune, core.Color) {
	peaks := []struct{ at, height float64 }{
		{0.2, 0.55},
		{0.5, 0.9},
		{0.8, 0.65},
	}

	top := h
	for _, p := range peaks {
		cx := p.at * float64(w)
		slope := float64(h) * p.height / (float64(w) * 0.3)
		ridge := float64(h) - float64(h)*p.height + math.Abs(float64(x)+0.5-cx)*slope
		if r := int(ridge); r < top {
			top = r
		}
	}

	switch {
	case y < top:
		if y == 0 && x%5 == 2 {
			return '~', core.ColorWhite
		}
		return ' ', core.ColorDefault
	case y < top+1 && y < h/2:
		return '^', core.ColorWhite
	case y >= h-1:
		return '▒', core.ColorGreen
	case (x+y)%2 == 0:
		return '/', core.ColorGray
	default:
		return '\\', core.ColorGray
	}
}
