package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles the cell buffers of retired generations.
type GridPool struct {
	pool sync.Pool
}

// NewGridPool returns an empty pool.
func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool sized for width x height with every
// cell dead.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put returns a grid to the pool. The grid must not be used afterwards.
func (p *GridPool) Put(g *Grid) {
	g.mu.Lock()
	g.generation = 0
	g.mu.Unlock()
	p.pool.Put(g)
}

// reset keeps the cells when they were built for width x height and only
// kills them; otherwise it rebuilds the cells for the new dimensions.
func (g *Grid) reset(width, height int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.generation = 0
	if g.width == width && g.height == height && len(g.cur) == width*height {
		for i := range g.cur {
			g.cur[i].alive = false
		}
		return
	}

	g.width = width
	g.height = height
	g.cur = buildCells(width, height)
	g.nxt = nil
}
