package projectile

import (
	"testing"

	"github.com/turnforge/tidepath/terrain"
)

func blankGrid(w, h int) *terrain.Grid {
	return terrain.NewBlankWaterGrid(w, h)
}

func TestAirSameTileArrivesImmediately(t *testing.T) {
	g := blankGrid(8, 8)
	a := NewAir()
	tile := g.Ref(3, 3)
	next, arrived := a.Next([]terrain.Tile{tile}, tile, g, 42)
	if !arrived || next != tile {
		t.Fatalf("got (%v, %v), want (%v, true)", next, arrived, tile)
	}
}

func TestAirPanicsOnSourceSet(t *testing.T) {
	g := blankGrid(8, 8)
	a := NewAir()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when given more than one source tile")
		}
	}()
	a.Next([]terrain.Tile{g.Ref(0, 0), g.Ref(1, 1)}, g.Ref(2, 2), g, 1)
}

func TestAirEventuallyReachesGoal(t *testing.T) {
	g := blankGrid(16, 16)
	a := NewAir()
	from := g.Ref(0, 0)
	goal := g.Ref(5, 3)

	tile := from
	for i, arrived := 0, false; !arrived && i < 1000; i++ {
		var next terrain.Tile
		next, arrived = a.Next([]terrain.Tile{tile}, goal, g, uint64(i))
		if g.ManhattanDist(tile, next) != 1 {
			t.Fatalf("step %d: non-adjacent move %v -> %v", i, tile, next)
		}
		tile = next
		if arrived {
			if tile != goal {
				t.Fatalf("arrived but tile = %v, want %v", tile, goal)
			}
			return
		}
	}
	t.Fatal("air stepper did not reach goal within 1000 steps")
}

func TestAirIsDeterministicForSameTick(t *testing.T) {
	g := blankGrid(16, 16)
	from := g.Ref(2, 2)
	goal := g.Ref(9, 7)

	a1, a2 := NewAir(), NewAir()
	n1, ok1 := a1.Next([]terrain.Tile{from}, goal, g, 777)
	n2, ok2 := a2.Next([]terrain.Tile{from}, goal, g, 777)
	if n1 != n2 || ok1 != ok2 {
		t.Fatalf("same tick should reproduce the same step: (%v,%v) vs (%v,%v)", n1, ok1, n2, ok2)
	}
}

func TestParabolaReachesTargetAfterFullTraversal(t *testing.T) {
	g := blankGrid(32, 32)
	from := g.Ref(2, 2)
	to := g.Ref(20, 10)

	p := NewParabola(g, from, to, 0.05)
	var last terrain.Tile
	arrived := false
	for i := 0; i < 1000 && !arrived; i++ {
		last, arrived = p.Next(1.0)
	}
	if !arrived {
		t.Fatal("parabola never arrived")
	}
	if last != to {
		t.Fatalf("final tile = %v, want %v", last, to)
	}
}

func TestParabolaStaysWithinGridBounds(t *testing.T) {
	g := blankGrid(32, 32)
	from := g.Ref(0, 0)
	to := g.Ref(31, 31)

	p := NewParabola(g, from, to, 0.1)
	for i := 0; i < 20; i++ {
		tile, arrived := p.Next(1.0)
		x, y := g.X(tile), g.Y(tile)
		if x < 0 || x >= g.Width() || y < 0 || y >= g.Height() {
			t.Fatalf("step %d tile %v out of bounds", i, tile)
		}
		if arrived {
			break
		}
	}
}

func TestParabolaZeroDistanceArrivesImmediately(t *testing.T) {
	g := blankGrid(8, 8)
	tile := g.Ref(4, 4)
	p := NewParabola(g, tile, tile, 0.1)
	got, arrived := p.Next(1.0)
	if !arrived || got != tile {
		t.Fatalf("got (%v, %v), want (%v, true)", got, arrived, tile)
	}
}
