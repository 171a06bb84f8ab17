package transform

import (
	"testing"

	"github.com/turnforge/tidepath/terrain"
)

func TestMinimapTransformerDownscalesAndPinsEndpoints(t *testing.T) {
	g := terrain.NewBlankWaterGrid(20, 4)
	mini := terrain.NewMinimap(g)

	var sawStarts []terrain.Tile
	var sawGoal terrain.Tile
	inner := Func(func(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
		sawStarts = starts
		sawGoal = goal
		return []terrain.Tile{starts[0], goal}, true
	})

	mt := NewMinimapTransformer(g, mini, inner)
	start := g.Ref(1, 0)
	goal := g.Ref(19, 2)

	path, ok := mt.FindPath([]terrain.Tile{start}, goal)
	if !ok {
		t.Fatal("expected a path")
	}
	if sawStarts[0] != mini.Ref(0, 0) {
		t.Fatalf("inner saw start %v; want minimap (0,0)", sawStarts[0])
	}
	if sawGoal != mini.Ref(9, 1) {
		t.Fatalf("inner saw goal %v; want minimap (9,1)", sawGoal)
	}
	if path[0] != start {
		t.Fatalf("path[0] = %v; want pinned start %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Fatalf("path[last] = %v; want pinned goal %v", path[len(path)-1], goal)
	}
}

func TestMinimapTransformerNoPathPropagates(t *testing.T) {
	g := terrain.NewBlankWaterGrid(8, 8)
	mini := terrain.NewMinimap(g)
	inner := Func(func(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
		return nil, false
	})
	mt := NewMinimapTransformer(g, mini, inner)

	_, ok := mt.FindPath([]terrain.Tile{g.Ref(0, 0)}, g.Ref(7, 7))
	if ok {
		t.Fatal("expected no-path to propagate through the minimap transformer")
	}
}
