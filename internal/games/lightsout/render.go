package lightsout

import (
	"fmt"

	"github.com/vovakirdan/lights-arcade/internal/core"
)

const (
	hudHeight   = 3
	panelHeight = 2
	minHUDWidth = 44
)

// layout is where the board sits on screen for the current difficulty.
type layout struct {
	rows, cols   int
	cellW, cellH int // inner cell size, borders excluded
	boardX       int
	boardY       int
	boardW       int
	boardH       int
	hudX, hudW   int
	minW, minH   int
}

func (g *Game) layout() layout {
	rows, cols := g.dims()
	l := layout{
		rows:  rows,
		cols:  cols,
		cellW: g.cfg.Display.CellWidth,
		cellH: g.cfg.Display.CellHeight,
	}
	l.boardW = cols*(l.cellW+1) + 1
	l.boardH = rows*(l.cellH+1) + 1
	l.boardX = (g.screenW - l.boardW) / 2
	l.boardY = hudHeight
	l.hudW = max(l.boardW, minHUDWidth)
	l.hudX = (g.screenW - l.hudW) / 2
	l.minW = l.hudW
	l.minH = hudHeight + l.boardH + panelHeight + 1
	return l
}

func (l layout) board() core.Rect {
	return core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH)
}

// cellOrigin returns the top-left inner screen position of cell p.
func (l layout) cellOrigin(p Position) (x, y int) {
	return l.boardX + 1 + p.Col*(l.cellW+1), l.boardY + 1 + p.Row*(l.cellH+1)
}

// cellAt maps a screen position to the cell whose interior contains it.
// Grid lines belong to no cell.
func (l layout) cellAt(x, y int) (Position, bool) {
	if !l.board().Inset(1).Contains(x, y) {
		return Position{}, false
	}
	rx, ry := x-l.boardX, y-l.boardY
	if rx%(l.cellW+1) == 0 || ry%(l.cellH+1) == 0 {
		return Position{}, false
	}
	return Position{Row: ry / (l.cellH + 1), Col: rx / (l.cellW + 1)}, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	grid := g.engine.Grid()
	run := g.engine.Run()

	g.renderHUD(dst, l, grid, run)
	g.renderBoard(dst, l, grid)
	g.renderPanel(dst, l, run)
	dst.DrawTextCentered(g.screenH-1, g.Controls(), core.ColorDim)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	l := g.layout()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", l.minW, l.minH, g.screenW, g.screenH), core.ColorDim)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the title, difficulty, timer and move counter.
func (g *Game) renderHUD(dst *core.Screen, l layout, grid *Grid, run Run) {
	dst.DrawTextCentered(0, "LIGHTS OUT", core.ColorBrightCyan)

	diff := "Difficulty: " + g.engine.Difficulty().Label()
	dst.DrawText(l.hudX, 1, diff)

	stats := fmt.Sprintf("Time %s  Moves %d", FormatTime(run.ElapsedSeconds), run.Moves)
	dst.DrawText(l.hudX+l.hudW-len(stats), 1, stats)

	progress := fmt.Sprintf("%d/%d revealed", grid.RevealedCount(), grid.Len())
	dst.DrawTextCentered(2, progress, core.ColorDim)
}

// renderBoard draws the grid lines, covered cells and the uncovered picture.
func (g *Game) renderBoard(dst *core.Screen, l layout, grid *Grid) {
	lineColor := core.ParseColor(g.cfg.Display.GridColor)
	if g.animations && g.flashTicks > 0 && (g.flashTicks/5)%2 == 0 {
		lineColor = core.ColorBrightYellow
	}
	g.drawGridLines(dst, l, lineColor)

	covered := g.cfg.Display.CoveredRune()
	coveredColor := core.ParseColor(g.cfg.Display.CoveredColor)
	pic := PictureFor(g.engine.Difficulty())
	picW, picH := l.cols*l.cellW, l.rows*l.cellH

	for _, c := range grid.Cells() {
		ox, oy := l.cellOrigin(c.Pos)
		for j := range l.cellH {
			for i := range l.cellW {
				if !c.Revealed {
					dst.SetColored(ox+i, oy+j, covered, coveredColor)
					continue
				}
				if !g.showPicture {
					dst.Set(ox+i, oy+j, ' ')
					continue
				}
				r, col := pic.At(c.Pos.Col*l.cellW+i, c.Pos.Row*l.cellH+j, picW, picH)
				dst.SetColored(ox+i, oy+j, r, col)
			}
		}
	}

	if !grid.AllRevealed() {
		g.drawCursor(dst, l)
	}
}

// drawGridLines draws the lattice of box characters around every cell.
func (g *Game) drawGridLines(dst *core.Screen, l layout, color core.Color) {
	for y := range l.rows + 1 {
		for x := range l.cols + 1 {
			px := l.boardX + x*(l.cellW+1)
			py := l.boardY + y*(l.cellH+1)

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == l.cols:
				corner = '┐'
			case y == l.rows && x == 0:
				corner = '└'
			case y == l.rows && x == l.cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == l.rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == l.cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, color)

			if x < l.cols {
				for i := 1; i <= l.cellW; i++ {
					dst.SetColored(px+i, py, '─', color)
				}
			}
			if y < l.rows {
				for i := 1; i <= l.cellH; i++ {
					dst.SetColored(px, py+i, '│', color)
				}
			}
		}
	}
}

// drawCursor redraws the border of the cursor cell with double lines.
func (g *Game) drawCursor(dst *core.Screen, l layout) {
	color := core.ParseColor(g.cfg.Display.CursorColor)
	ox, oy := l.cellOrigin(g.cursor)
	left, top := ox-1, oy-1
	right, bottom := ox+l.cellW, oy+l.cellH

	for x := ox; x < right; x++ {
		dst.SetColored(x, top, '═', color)
		dst.SetColored(x, bottom, '═', color)
	}
	for y := oy; y < bottom; y++ {
		dst.SetColored(left, y, '║', color)
		dst.SetColored(right, y, '║', color)
	}
	dst.SetColored(left, top, '╔', color)
	dst.SetColored(right, top, '╗', color)
	dst.SetColored(left, bottom, '╚', color)
	dst.SetColored(right, bottom, '╝', color)
}

// renderPanel draws the best record and, after a clear, the win banner.
func (g *Game) renderPanel(dst *core.Screen, l layout, run Run) {
	y := l.boardY + l.boardH

	if run.Won {
		banner := fmt.Sprintf("CLEARED in %d moves, %s", run.Moves, FormatTime(run.ElapsedSeconds))
		if g.newBest {
			banner += "  NEW BEST!"
		}
		dst.DrawTextCentered(y, banner, core.ColorGreen)
	} else {
		dst.DrawTextCentered(y, PictureFor(g.engine.Difficulty()).Name, core.ColorDim)
	}

	best := "Best: none yet"
	if g.hasBest {
		best = fmt.Sprintf("Best: %d moves in %s (%d clears)",
			g.best.BestMoves, FormatTime(g.best.BestTimeSeconds), g.best.ClearCount)
	}
	if run.Won {
		best += "  R: play again"
	}
	dst.DrawTextCentered(y+1, best, core.ColorYellow)
}

// FormatTime formats seconds as mm:ss. Minutes are not capped at 59.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
