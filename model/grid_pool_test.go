package model

import "testing"

func TestPooledNextGeneration(t *testing.T) {
	pool := NewGridPool()
	g, err := NewGrid(5, 5, WithEmpty(), WithPool(pool))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range Blinker {
		if err := g.Set(1+c.X, 2+c.Y, true); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < 4; i++ {
		next := g.NextGeneration()
		GridToPool(g, pool)
		g = next
	}

	if g.Len() != 25 {
		t.Fatalf("Len() = %d, want 25", g.Len())
	}
	if g.Generation() != 4 {
		t.Fatalf("Generation() = %d, want 4", g.Generation())
	}
	expectLive(t, g, Coord{1, 2}, Coord{2, 2}, Coord{3, 2})
}

// expectCovers checks that g holds every coordinate of its dimensions once,
// in row-major order, each with the neighborhood a fresh cell would have.
func expectCovers(t *testing.T, g *Grid, width, height int) {
	t.Helper()
	if g.Width() != width || g.Height() != height || g.Len() != width*height {
		t.Fatalf("got %dx%d with %d cells, want %dx%d", g.Width(), g.Height(), g.Len(), width, height)
	}
	for i, c := range g.Cells() {
		want, err := NewCell(i%width, i/width, width, height)
		if err != nil {
			t.Fatal(err)
		}
		if c.Coord() != want.Coord() {
			t.Fatalf("entry %d is %v, want %v", i, c.Coord(), want.Coord())
		}
		if len(c.NeighborCoordinates()) != len(want.NeighborCoordinates()) {
			t.Fatalf("cell %v has %d neighbors, want %d", c.Coord(), len(c.NeighborCoordinates()), len(want.NeighborCoordinates()))
		}
		if c.IsAlive() {
			t.Fatalf("cell %v from the pool is alive", c.Coord())
		}
	}
}

func TestPoolGetFromEmptyPool(t *testing.T) {
	expectCovers(t, NewGridPool().Get(3, 3), 3, 3)
}

func TestPoolResizesGrids(t *testing.T) {
	pool := NewGridPool()

	big, err := NewGrid(5, 5, WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	pool.Put(big)
	expectCovers(t, pool.Get(2, 2), 2, 2)

	small, err := NewGrid(2, 2, WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	pool.Put(small)
	expectCovers(t, pool.Get(10, 3), 10, 3)
}

func TestPoolReusesSameSizeGridDead(t *testing.T) {
	pool := NewGridPool()
	g, err := NewGrid(4, 4, WithSeed(8))
	if err != nil {
		t.Fatal(err)
	}
	pool.Put(g)
	expectCovers(t, pool.Get(4, 4), 4, 4)
}

func TestGridToPoolNil(t *testing.T) {
	GridToPool(nil, NewGridPool())
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	GridToPool(g, nil)
	if g.Len() != 4 {
		t.Fatal("GridToPool with a nil pool modified the grid")
	}
}
