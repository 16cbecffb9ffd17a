package model

import (
	"crypto/md5"
	"fmt"
	"io"
	"iter"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/rules"
)

// Counter selects how neighbor counts are computed during an update.
type Counter int

const (
	// IndexedCounter looks up each neighbor by coordinate, O(8) per cell.
	IndexedCounter Counter = iota
	// ScanCounter scans the whole generation per cell, O(width*height) per cell.
	ScanCounter
)

// Grid is a bounded, non-wrapping Game of Life board.
//
// The current generation is never written during an update: the next
// generation is computed into a second buffer and swapped in once complete.
type Grid struct {
	// mu guards width, height, cur and generation against readers.
	mu sync.RWMutex
	// stepMu serializes writers.
	stepMu sync.Mutex

	width      int
	height     int
	cur        []Cell
	nxt        []Cell
	generation int

	workers int
	counter Counter
	pool    *GridPool
}

type options struct {
	rng     *rand.Rand
	empty   bool
	workers int
	counter Counter
	pool    *GridPool
}

// Option configures a Grid at construction.
type Option func(*options)

// WithSeed seeds the initial random state so that runs are reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(uint64(seed), 0)) }
}

// WithRand seeds the initial state from r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithEmpty starts the grid with every cell dead instead of seeding it.
func WithEmpty() Option {
	return func(o *options) { o.empty = true }
}

// WithWorkers sets how many goroutines compute a generation. n <= 0 uses runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithCounter selects the neighbor counting strategy.
func WithCounter(c Counter) Option {
	return func(o *options) { o.counter = c }
}

// WithPool makes NextGeneration draw its result grids from p.
func WithPool(p *GridPool) Option {
	return func(o *options) { o.pool = p }
}

// NewGrid creates a width x height grid. Unless WithEmpty is given, each cell
// is alive with probability 0.5.
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}

	g := &Grid{
		width:   width,
		height:  height,
		cur:     buildCells(width, height),
		workers: o.workers,
		counter: o.counter,
		pool:    o.pool,
	}

	if !o.empty {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		for i := range g.cur {
			g.cur[i].alive = rng.IntN(2) == 0
		}
	}
	return g, nil
}

func buildCells(width, height int) []Cell {
	cells := make([]Cell, 0, width*height)
	for y := range height {
		for x := range width {
			c := Coord{X: x, Y: y}
			cells = append(cells, Cell{coord: c, neighbors: neighborsOf(c, width, height)})
		}
	}
	return cells
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cur)
}

// Generation returns how many generations this grid is past its seed.
func (g *Grid) Generation() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.generation
}

// PixelSize returns the drawing surface size for square cells of cellSize pixels.
func (g *Grid) PixelSize(cellSize int) (int, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.width * cellSize, g.height * cellSize
}

// Get returns the state of a cell. Coordinates off the grid are dead.
func (g *Grid) Get(x, y int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.view().Alive(Coord{X: x, Y: y})
}

// Set sets a cell to alive (true) or dead (false). Meant for seeding, not
// for use between the reads of an update.
func (g *Grid) Set(x, y int, alive bool) error {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()
	g.mu.Lock()
	defer g.mu.Unlock()

	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	g.cur[y*g.width+x].alive = alive
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.cur {
		g.cur[i].alive = false
	}
}

// Snapshot returns a copy of the current generation.
func (g *Grid) Snapshot() Generation {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cells := make([]Cell, len(g.cur))
	copy(cells, g.cur)
	return Generation{width: g.width, height: g.height, cells: cells}
}

// Cells returns a row-major copy of the current cells.
func (g *Grid) Cells() []Cell {
	return g.Snapshot().cells
}

// All yields every coordinate and its state in row-major order. The grid is
// read-locked for the whole iteration, so the loop body must not call Step,
// Set or Clear.
func (g *Grid) All() iter.Seq2[Coord, bool] {
	return func(yield func(Coord, bool) bool) {
		g.mu.RLock()
		defer g.mu.RUnlock()
		for _, c := range g.cur {
			if !yield(c.coord, c.alive) {
				return
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, c := range g.cur {
		if c.alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h := md5.New()
	for _, c := range g.cur {
		if c.alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Dump writes one line per cell, "Alive" or "Dead", in row-major order.
func (g *Grid) Dump(w io.Writer) error {
	for c, alive := range g.All() {
		state := "Dead"
		if alive {
			state = "Alive"
		}
		if _, err := fmt.Fprintln(w, state); err != nil {
			return errors.Wrapf(err, "[Dump] failed to write cell (%d,%d)", c.X, c.Y)
		}
	}
	return nil
}

func (g *Grid) view() Generation {
	return Generation{width: g.width, height: g.height, cells: g.cur}
}

// Step advances the grid one generation in place. The next generation is
// built in a second buffer and swapped in under the write lock.
func (g *Grid) Step() {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()

	if len(g.nxt) != len(g.cur) {
		g.nxt = make([]Cell, len(g.cur))
	}
	// Readers may hold the read lock concurrently: cur is only read here.
	g.update(g.view(), g.nxt)

	g.mu.Lock()
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
	g.mu.Unlock()
}

// NextGeneration returns the following generation as a new grid and leaves g
// unchanged. When g was built WithPool, the result comes from the pool.
func (g *Grid) NextGeneration() *Grid {
	g.stepMu.Lock()
	defer g.stepMu.Unlock()

	var next *Grid
	if g.pool != nil {
		next = g.pool.Get(g.width, g.height)
	} else {
		next = &Grid{width: g.width, height: g.height, cur: make([]Cell, len(g.cur))}
	}
	next.workers = g.workers
	next.counter = g.counter
	next.pool = g.pool
	next.generation = g.generation + 1

	g.update(g.view(), next.cur)
	return next
}

// update writes the generation after src into dst, which must have src.Len()
// slots. Rows are split across workers; each worker writes only its own rows.
func (g *Grid) update(src Generation, dst []Cell) {
	workers := min(g.workers, src.height)
	if workers <= 1 {
		g.updateRows(src, dst, 0, src.height)
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (src.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.height)
		)
		if startRow >= src.height {
			break
		}

		eg.Go(func() error {
			g.updateRows(src, dst, startRow, endRow)
			return nil
		})
	}

	_ = eg.Wait()
}

func (g *Grid) updateRows(src Generation, dst []Cell, startRow, endRow int) {
	for i := startRow * src.width; i < endRow*src.width; i++ {
		c := src.cells[i]

		var neighbors int
		if g.counter == ScanCounter {
			neighbors = c.CountAliveNeighborsScan(src.cells)
		} else {
			neighbors = c.CountAliveNeighbors(src)
		}

		c.alive = rules.Classify(neighbors, c.alive).Alive()
		dst[i] = c
	}
}
