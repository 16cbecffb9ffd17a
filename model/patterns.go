package model

import "github.com/pkg/errors"

// Pattern is a set of live cells relative to a top-left origin.
type Pattern []Coord

var (
	// Glider moves one cell diagonally every four generations.
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	// Blinker is a horizontal period-2 oscillator.
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	// Block is a 2x2 still life.
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// Place sets every cell of p alive with its origin at (startX, startY). It
// fails without changing the grid if any cell would fall off the grid.
func (g *Grid) Place(p Pattern, startX, startY int) error {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, c := range p {
		x, y := startX+c.X, startY+c.Y
		if x < 0 || x >= g.width || y < 0 || y >= g.height {
			return errors.Wrapf(ErrOutOfBounds, "[Place] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
		}
	}
	for _, c := range p {
		g.cur[(startY+c.Y)*g.width+startX+c.X].alive = true
	}
	return nil
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) error {
	return g.Place(Glider, startX, startY)
}

// AddBlinker adds a horizontal blinker at the specified position
func (g *Grid) AddBlinker(startX, startY int) error {
	return g.Place(Blinker, startX, startY)
}

// AddBlock adds a 2x2 block at the specified position
func (g *Grid) AddBlock(startX, startY int) error {
	return g.Place(Block, startX, startY)
}
