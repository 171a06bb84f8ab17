package spatial

import (
	"testing"

	"github.com/turnforge/tidepath/terrain"
)

func TestBFSNearestFindsClosestMatch(t *testing.T) {
	g := terrain.NewGridBuilder().Rows(`
WWWWW
WWLWW
WWWWW
`).Build()

	from := g.Ref(0, 0)
	target := g.Ref(2, 1) // the land tile
	result, ok := BFSNearest(g, from, 10, g.IsWater, func(tl terrain.Tile) bool {
		return tl == target
	})
	if ok {
		t.Fatalf("land target should never match a water-only traversable predicate, got %v", result)
	}

	waterTarget := g.Ref(4, 2)
	result, ok = BFSNearest(g, from, 10, g.IsWater, func(tl terrain.Tile) bool {
		return tl == waterTarget
	})
	if !ok || result != waterTarget {
		t.Fatalf("BFSNearest() = %v, %v; want %v, true", result, ok, waterTarget)
	}
}

func TestBFSNearestRespectsMaxDist(t *testing.T) {
	g := terrain.NewGridBuilder().Row("WWWWWWWW").Build()
	from := g.Ref(0, 0)
	target := g.Ref(7, 0)

	_, ok := BFSNearest(g, from, 2, g.IsWater, func(tl terrain.Tile) bool { return tl == target })
	if ok {
		t.Fatal("expected no match within a too-small maxDist")
	}
}

func TestBFSWithinDistanceEnumeratesReachableSet(t *testing.T) {
	g := terrain.NewGridBuilder().Row("WWW").Build()
	got := BFSWithinDistance(g, g.Ref(0, 0), 5, g.IsWater)
	if len(got) != 2 {
		t.Fatalf("len(BFSWithinDistance) = %d; want 2", len(got))
	}
}

func TestManhattanNearestBreaksTiesByFirstSeen(t *testing.T) {
	g := terrain.NewGridBuilder().Rows(`
WWWWW
WWWWW
WWWWW
`).Build()
	target := g.Ref(2, 1)
	candidates := []terrain.Tile{g.Ref(0, 1), g.Ref(4, 1)} // both distance 2

	got, ok := ManhattanNearest(g, candidates, target)
	if !ok || got != candidates[0] {
		t.Fatalf("ManhattanNearest() = %v; want first-seen tie %v", got, candidates[0])
	}
}
