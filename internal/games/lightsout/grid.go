package lightsout

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row int
	Col int
}

// Cell is one grid position. Revealed is true once the cell has been
// flipped an odd number of times.
type Cell struct {
	Pos      Position
	Revealed bool
}

// neighbourhood is the cell itself plus its four orthogonal neighbours.
var neighbourhood = [5]Position{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// Grid is a rows×cols board stored in row-major order.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates a grid with every cell covered.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// In reports whether p is inside the grid.
func (g *Grid) In(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// At returns the cell at p. ok is false when p is out of bounds.
func (g *Grid) At(p Position) (Cell, bool) {
	if !g.In(p) {
		return Cell{}, false
	}
	return Cell{Pos: p, Revealed: g.cells[g.index(p)]}, true
}

// Revealed reports whether the cell at p is revealed. Out of bounds is false.
func (g *Grid) Revealed(p Position) bool {
	c, _ := g.At(p)
	return c.Revealed
}

// Flip inverts one cell. It returns false and does nothing when p is out of bounds.
func (g *Grid) Flip(p Position) bool {
	if !g.In(p) {
		return false
	}
	i := g.index(p)
	g.cells[i] = !g.cells[i]
	return true
}

// Toggle flips p and each in-bounds orthogonal neighbour and returns how
// many cells changed.
func (g *Grid) Toggle(p Position) int {
	if !g.In(p) {
		return 0
	}
	flipped := 0
	for _, d := range neighbourhood {
		if g.Flip(Position{Row: p.Row + d.Row, Col: p.Col + d.Col}) {
			flipped++
		}
	}
	return flipped
}

// AllRevealed reports whether every cell is revealed.
func (g *Grid) AllRevealed() bool {
	for _, r := range g.cells {
		if !r {
			return false
		}
	}
	return true
}

// RevealedCount returns the number of revealed cells.
func (g *Grid) RevealedCount() int {
	n := 0
	for _, r := range g.cells {
		if r {
			n++
		}
	}
	return n
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for i, r := range g.cells {
		out = append(out, Cell{
			Pos:      Position{Row: i / g.cols, Col: i % g.cols},
			Revealed: r,
		})
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Pattern renders the grid as rows of '#' (revealed) and '.' (covered).
func (g *Grid) Pattern() []string {
	out := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]byte, g.cols)
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] {
				row[c] = '#'
			} else {
				row[c] = '.'
			}
		}
		out[r] = string(row)
	}
	return out
}
