package transform

import (
	"testing"

	"github.com/turnforge/tidepath/terrain"
)

func TestShoreCoercionSubstitutesAdjacentWater(t *testing.T) {
	g := terrain.NewGridBuilder().Row("LW").Build()
	inner := &fakePathfinder{ok: true, path: []terrain.Tile{g.Ref(1, 0)}}
	coerce := NewShoreCoercingTransformer(g, inner)

	_, ok := coerce.FindPath([]terrain.Tile{g.Ref(0, 0)}, g.Ref(1, 0))
	if !ok {
		t.Fatal("expected coercion to find the adjacent water tile")
	}
}

func TestShoreCoercionFailsWithNoWaterNeighbour(t *testing.T) {
	g := terrain.NewGridBuilder().Rows(`
LL
LL
`).Build()
	inner := &fakePathfinder{ok: true, path: []terrain.Tile{g.Ref(0, 0)}}
	coerce := NewShoreCoercingTransformer(g, inner)

	_, ok := coerce.FindPath([]terrain.Tile{g.Ref(0, 0)}, g.Ref(1, 1))
	if ok {
		t.Fatal("expected failure: goal has no water neighbour to coerce to")
	}
	if inner.called {
		t.Fatal("inner should not run when the goal cannot be coerced")
	}
}
