package stepper

import (
	"testing"

	"github.com/turnforge/tidepath/terrain"
)

// fakePathfinder returns a fixed canned path (or fails) regardless of
// starts/goal, and counts how many times it was called.
type fakePathfinder struct {
	path  []terrain.Tile
	ok    bool
	calls int
}

func (f *fakePathfinder) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	f.calls++
	return f.path, f.ok
}

func straightGrid() *terrain.Grid {
	return terrain.NewGridBuilder().Rows(`
WWWWW
WWWWW
WWWWW
`).Build()
}

func TestNextReturnsCompleteWhenAlreadyAtDestination(t *testing.T) {
	g := straightGrid()
	pf := &fakePathfinder{}
	s := New(g, pf)

	tile := g.Ref(1, 1)
	res := s.Next(tile, tile, 0)
	if res.Kind != KindComplete || res.Tile != tile {
		t.Fatalf("got %+v, want complete at %v", res, tile)
	}
	if pf.calls != 0 {
		t.Fatalf("pathfinder should not be consulted when from==to, got %d calls", pf.calls)
	}
}

func TestNextCompletesEarlyWithinDistThreshold(t *testing.T) {
	g := straightGrid()
	pf := &fakePathfinder{}
	s := New(g, pf)

	from := g.Ref(0, 0)
	to := g.Ref(2, 0)
	res := s.Next(from, to, 2)
	if res.Kind != KindComplete || res.Tile != from {
		t.Fatalf("got %+v, want complete at %v (within dist threshold)", res, from)
	}
	if pf.calls != 0 {
		t.Fatalf("pathfinder should not be consulted within dist threshold, got %d calls", pf.calls)
	}
}

func TestNextComputesAndYieldsCachedPath(t *testing.T) {
	g := straightGrid()
	from := g.Ref(0, 0)
	to := g.Ref(2, 0)
	mid := g.Ref(1, 0)
	pf := &fakePathfinder{path: []terrain.Tile{from, mid, to}, ok: true}
	s := New(g, pf)

	r1 := s.Next(from, to, 0)
	if r1.Kind != KindNext || r1.Tile != from {
		t.Fatalf("step 1 = %+v, want next %v", r1, from)
	}
	r2 := s.Next(from, to, 0)
	if r2.Kind != KindNext || r2.Tile != mid {
		t.Fatalf("step 2 = %+v, want next %v", r2, mid)
	}
	if pf.calls != 1 {
		t.Fatalf("path should be computed once and cached, got %d calls", pf.calls)
	}
}

func TestNextRecomputesWhenDestinationChanges(t *testing.T) {
	g := straightGrid()
	from := g.Ref(0, 0)
	to1 := g.Ref(2, 0)
	to2 := g.Ref(3, 0)
	pf := &fakePathfinder{path: []terrain.Tile{from, g.Ref(1, 0), to1}, ok: true}
	s := New(g, pf)

	s.Next(from, to1, 0)
	if pf.calls != 1 {
		t.Fatalf("expected 1 call after first Next, got %d", pf.calls)
	}
	s.Next(from, to2, 0)
	if pf.calls != 2 {
		t.Fatalf("expected recompute on destination change, got %d calls", pf.calls)
	}
}

func TestNextRecomputesOnDrift(t *testing.T) {
	g := straightGrid()
	from := g.Ref(0, 0)
	mid := g.Ref(1, 0)
	to := g.Ref(2, 0)
	drifted := g.Ref(0, 1)

	pf := &fakePathfinder{path: []terrain.Tile{from, mid, to}, ok: true}
	s := New(g, pf)

	s.Next(from, to, 0) // yields from, calls=1
	s.Next(drifted, to, 0) // caller reports a different tile than expected: recompute
	if pf.calls != 2 {
		t.Fatalf("expected recompute on drift, got %d calls", pf.calls)
	}
}

func TestNextReturnsNotFoundWhenPathfinderFails(t *testing.T) {
	g := straightGrid()
	pf := &fakePathfinder{ok: false}
	s := New(g, pf)

	res := s.Next(g.Ref(0, 0), g.Ref(2, 0), 0)
	if res.Kind != KindNotFound {
		t.Fatalf("got %+v, want not-found", res)
	}
}

func TestNextCompletesWhenPathExhausted(t *testing.T) {
	g := straightGrid()
	from := g.Ref(0, 0)
	to := g.Ref(1, 0)
	pf := &fakePathfinder{path: []terrain.Tile{from, to}, ok: true}
	s := New(g, pf)

	s.Next(from, to, 0) // yields from
	s.Next(to, to, 0)   // from==to now: complete
	res := s.Next(to, to, 0)
	if res.Kind != KindComplete {
		t.Fatalf("got %+v, want complete", res)
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	g := straightGrid()
	from := g.Ref(0, 0)
	to := g.Ref(2, 0)
	pf := &fakePathfinder{path: []terrain.Tile{from, g.Ref(1, 0), to}, ok: true}
	s := New(g, pf)

	s.Next(from, to, 0)
	s.Invalidate()
	s.Next(from, to, 0)
	if pf.calls != 2 {
		t.Fatalf("expected recompute after Invalidate, got %d calls", pf.calls)
	}
}

func TestFindPathBypassesCache(t *testing.T) {
	g := straightGrid()
	from := g.Ref(0, 0)
	to := g.Ref(2, 0)
	pf := &fakePathfinder{path: []terrain.Tile{from, g.Ref(1, 0), to}, ok: true}
	s := New(g, pf)

	path, ok := s.FindPath(from, to)
	if !ok || len(path) != 3 {
		t.Fatalf("FindPath = %v, %v", path, ok)
	}
	if pf.calls != 1 {
		t.Fatalf("FindPath should call through directly, got %d calls", pf.calls)
	}
}
