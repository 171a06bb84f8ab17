package transform

import (
	"testing"

	"github.com/turnforge/tidepath/astar"
	"github.com/turnforge/tidepath/terrain"
	"pgregory.net/rapid"
)

func TestSmoothingReplacesZigzagWithStraightLine(t *testing.T) {
	g := terrain.NewBlankWaterGrid(10, 10)
	full := []terrain.Tile{
		g.Ref(0, 0), g.Ref(0, 1), g.Ref(1, 1), g.Ref(1, 0), g.Ref(2, 0),
		g.Ref(2, 1), g.Ref(3, 1), g.Ref(3, 0), g.Ref(4, 0),
	}
	inner := Func(func(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
		return full, true
	})
	smoother := NewBresenhamSmoothingTransformer(g, 100, inner)

	smoothed, ok := smoother.FindPath([]terrain.Tile{g.Ref(0, 0)}, g.Ref(4, 0))
	if !ok {
		t.Fatal("expected a path")
	}
	if len(smoothed) >= len(full) {
		t.Fatalf("expected smoothing to shorten the zigzag path: got %d tiles, input had %d", len(smoothed), len(full))
	}
	if smoothed[0] != full[0] || smoothed[len(smoothed)-1] != full[len(full)-1] {
		t.Fatal("smoothing must preserve the original endpoints")
	}
	for _, tile := range smoothed {
		if !g.IsWater(tile) {
			t.Fatalf("smoothed path introduced a non-water tile %v", tile)
		}
	}
}

func TestSmoothingNeverCrossesLand(t *testing.T) {
	g := terrain.NewGridBuilder().Rows(`
WWWWW
WWLWW
WWWWW
`).Build()
	// A detour around the central land tile; a straight line from (0,1) to
	// (4,1) would cross it, so smoothing must not collapse this segment.
	full := []terrain.Tile{g.Ref(0, 1), g.Ref(1, 1), g.Ref(2, 0), g.Ref(3, 1), g.Ref(4, 1)}
	inner := Func(func(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
		return full, true
	})
	smoother := NewBresenhamSmoothingTransformer(g, 100, inner)

	smoothed, ok := smoother.FindPath([]terrain.Tile{full[0]}, full[len(full)-1])
	if !ok {
		t.Fatal("expected a path")
	}
	for _, tile := range smoothed {
		if g.IsLand(tile) {
			t.Fatalf("smoothed path crossed the land tile %v", tile)
		}
	}
}

// TestSmoothingNeverIntroducesNonTraversableTile is the property spec.md §8
// names explicitly: run the full find-then-smooth pipeline over randomly
// generated land/water grids and assert every tile the smoother emits is
// still water or shore, never land.
func TestSmoothingNeverIntroducesNonTraversableTile(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.IntRange(4, 20).Draw(rt, "w")
		h := rapid.IntRange(4, 20).Draw(rt, "h")

		g := terrain.NewBlankWaterGrid(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				land := rapid.Float64Range(0, 1).Draw(rt, "land") < 0.15
				g.SetLand(x, y, land)
			}
		}
		g.SetLand(0, 0, false)
		g.SetLand(w-1, h-1, false)

		s := astar.NewSearch(astar.NewWaterAdapter(g, astar.DefaultHeuristicWeight))
		rawPath, ok := astar.FindWaterPath(s, g.Ref(0, 0), g.Ref(w-1, h-1))
		if !ok {
			return // disjoint water bodies on this draw; nothing to smooth
		}

		inner := Func(func(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
			return rawPath, true
		})
		smoother := NewBresenhamSmoothingTransformer(g, 100, inner)
		smoothed, ok := smoother.FindPath([]terrain.Tile{rawPath[0]}, rawPath[len(rawPath)-1])
		if !ok {
			rt.Fatal("smoother reported no path though its inner pathfinder found one")
		}
		for _, tile := range smoothed {
			if !(g.IsWater(tile) || g.IsShore(tile)) {
				rt.Fatalf("smoothed path contains non-traversable tile %v", tile)
			}
		}
	})
}
