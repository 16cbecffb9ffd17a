package model

import "github.com/pkg/errors"

// Coord is a cell position, 0 <= X < width and 0 <= Y < height.
type Coord struct {
	X, Y int
}

// Lookup answers whether the cell at a coordinate is alive in some generation.
type Lookup interface {
	Alive(c Coord) bool
}

// Cell is one grid position with its alive flag and its bounds-clipped
// Moore neighborhood.
type Cell struct {
	coord     Coord
	alive     bool
	neighbors []Coord // shared between generations, never written after construction
}

// NewCell creates a dead cell at (x, y) on a width x height grid.
func NewCell(x, y, width, height int) (Cell, error) {
	if err := checkDimensions(width, height); err != nil {
		return Cell{}, errors.Wrap(err, "[NewCell]")
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "[NewCell] (%d,%d) on %dx%d grid", x, y, width, height)
	}
	c := Coord{X: x, Y: y}
	return Cell{coord: c, neighbors: neighborsOf(c, width, height)}, nil
}

// neighborsOf combines the four boundary predicates pairwise for the diagonals.
func neighborsOf(c Coord, width, height int) []Coord {
	var (
		left  = c.X-1 >= 0
		right = c.X+1 < width
		up    = c.Y-1 >= 0
		down  = c.Y+1 < height
	)

	out := make([]Coord, 0, 8)
	if right {
		out = append(out, Coord{c.X + 1, c.Y})
	}
	if left {
		out = append(out, Coord{c.X - 1, c.Y})
	}
	if left && down {
		out = append(out, Coord{c.X - 1, c.Y + 1})
	}
	if right && down {
		out = append(out, Coord{c.X + 1, c.Y + 1})
	}
	if up {
		out = append(out, Coord{c.X, c.Y - 1})
	}
	if down {
		out = append(out, Coord{c.X, c.Y + 1})
	}
	if left && up {
		out = append(out, Coord{c.X - 1, c.Y - 1})
	}
	if right && up {
		out = append(out, Coord{c.X + 1, c.Y - 1})
	}
	return out
}

// Coord returns the cell's position.
func (c Cell) Coord() Coord { return c.coord }

// IsAlive returns the current alive/dead flag.
func (c Cell) IsAlive() bool { return c.alive }

// SetAlive sets the alive flag.
func (c *Cell) SetAlive(alive bool) { c.alive = alive }

// NeighborCoordinates returns a copy of the precomputed neighbor set.
func (c Cell) NeighborCoordinates() []Coord {
	out := make([]Coord, len(c.neighbors))
	copy(out, c.neighbors)
	return out
}

// CountAliveNeighbors counts live neighbors using a coordinate-indexed lookup.
func (c Cell) CountAliveNeighbors(gen Lookup) (count int) {
	for _, n := range c.neighbors {
		if gen.Alive(n) {
			count++
		}
	}
	return
}

// CountAliveNeighborsScan counts live neighbors by scanning every cell in the
// generation. O(len(cells)) per call; kept for small grids and as a reference
// for CountAliveNeighbors.
func (c Cell) CountAliveNeighborsScan(cells []Cell) (count int) {
	for _, other := range cells {
		if !other.alive {
			continue
		}
		for _, n := range c.neighbors {
			if n == other.coord {
				count++
				break
			}
		}
	}
	return
}
