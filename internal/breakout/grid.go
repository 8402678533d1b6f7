package breakout

// Grid is the brick lattice: Columns x Rows cells, each alive or broken.
// Row 0 is the top row, nearest the wall.
type Grid struct {
	cells [Columns][Rows]bool
}

// NewGrid returns a grid in its starting pattern.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset restores the starting stripes: rows with row%8 < 4 are alive.
func (g *Grid) Reset() {
	for col := range Columns {
		for row := range Rows {
			g.cells[col][row] = row%8 < 4
		}
	}
}

// IsAlive reports whether a brick stands at (col, row).
// Cells outside the lattice are never alive.
func (g *Grid) IsAlive(col, row int) bool {
	if !inBounds(col, row) {
		return false
	}
	return g.cells[col][row]
}

// Kill breaks the brick at (col, row). Breaking a broken brick is a no-op.
func (g *Grid) Kill(col, row int) {
	if !inBounds(col, row) {
		return
	}
	g.cells[col][row] = false
}

// DescendLines shifts every row one step toward the paddle and fills the
// top row with alive. The bottom row falls off the lattice.
func (g *Grid) DescendLines(alive bool) {
	for col := range Columns {
		for row := Rows - 1; row > 0; row-- {
			g.cells[col][row] = g.cells[col][row-1]
		}
		g.cells[col][0] = alive
	}
}

// Alive returns the number of standing bricks.
func (g *Grid) Alive() int {
	n := 0
	for col := range Columns {
		for row := range Rows {
			if g.cells[col][row] {
				n++
			}
		}
	}
	return n
}

// Cells returns a copy of the lattice indexed [col][row].
func (g *Grid) Cells() [Columns][Rows]bool {
	return g.cells
}

func inBounds(col, row int) bool {
	return col >= 0 && col < Columns && row >= 0 && row < Rows
}
