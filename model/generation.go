package model

// Generation is a read-only view of one grid state, stored row-major.
type Generation struct {
	width  int
	height int
	cells  []Cell
}

// Width returns the number of columns.
func (g Generation) Width() int { return g.width }

// Height returns the number of rows.
func (g Generation) Height() int { return g.height }

// Len returns the number of cells, always width*height.
func (g Generation) Len() int { return len(g.cells) }

// Alive reports whether the cell at c is alive. Coordinates off the grid are dead.
func (g Generation) Alive(c Coord) bool {
	if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
		return false
	}
	return g.cells[c.Y*g.width+c.X].alive
}

// At returns the cell at (x, y). It panics if (x, y) is off the grid.
func (g Generation) At(x, y int) Cell {
	return g.cells[y*g.width+x]
}

// Cells returns the cells in row-major order. The slice must not be modified.
func (g Generation) Cells() []Cell { return g.cells }
