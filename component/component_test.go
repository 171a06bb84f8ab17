package component

import (
	"testing"

	"github.com/turnforge/tidepath/terrain"
	"pgregory.net/rapid"
)

func TestLandTilesAreComponentZero(t *testing.T) {
	g := terrain.NewGridBuilder().Rows(`
WWLWW
WWLWW
`).Build()
	labels := Build(g)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tl := g.Ref(x, y)
			if g.IsLand(tl) && labels.ComponentID(tl) != 0 {
				t.Fatalf("land tile (%d,%d) has nonzero component id", x, y)
			}
			if g.IsWater(tl) && labels.ComponentID(tl) == 0 {
				t.Fatalf("water tile (%d,%d) has component id 0", x, y)
			}
		}
	}
}

func TestDisjointWaterBodiesGetDistinctComponents(t *testing.T) {
	// columns 0-1 water, 2-4 land, 5-6 water — spec.md §8 scenario 5.
	g := terrain.NewGridBuilder().Rows(`
WWLLLWW
WWLLLWW
WWLLLWW
WWLLLWW
WWLLLWW
`).Build()
	labels := Build(g)

	left := g.Ref(0, 0)
	right := g.Ref(5, 0)
	leftSame := g.Ref(1, 4)

	if labels.InSameComponent(left, right) {
		t.Fatal("disjoint water bodies must not share a component")
	}
	if !labels.InSameComponent(left, leftSame) {
		t.Fatal("tiles within the same water body must share a component")
	}
}

// referenceUnionFind is a plain union-find over a grid, used as an oracle
// independent of the flood-fill implementation under test.
type referenceUnionFind struct {
	parent []int
}

func newReferenceUnionFind(n int) *referenceUnionFind {
	uf := &referenceUnionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *referenceUnionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *referenceUnionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

func TestComponentLabellerAgreesWithUnionFind(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		const side = 64
		water := make([]bool, side*side)
		for i := range water {
			water[i] = rapid.Float64Range(0, 1).Draw(rt, "p") < 0.55
		}

		g := terrain.NewBlankWaterGrid(side, side)
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				g.SetLand(x, y, !water[y*side+x])
			}
		}

		labels := Build(g)

		uf := newReferenceUnionFind(side * side)
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				if !water[y*side+x] {
					continue
				}
				if x+1 < side && water[y*side+x+1] {
					uf.union(y*side+x, y*side+x+1)
				}
				if y+1 < side && water[(y+1)*side+x] {
					uf.union(y*side+x, (y+1)*side+x)
				}
			}
		}

		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				idx := y*side + x
				tl := g.Ref(x, y)
				if !water[idx] {
					if labels.ComponentID(tl) != 0 {
						rt.Fatalf("land tile (%d,%d) got nonzero component", x, y)
					}
					continue
				}
				for dy := 0; dy < side; dy += 17 { // sparse cross-check, full n^2 is too slow per draw
					for dx := 0; dx < side; dx += 17 {
						oidx := dy*side + dx
						if !water[oidx] {
							continue
						}
						otherTile := g.Ref(dx, dy)
						wantSame := uf.find(idx) == uf.find(oidx)
						gotSame := labels.InSameComponent(tl, otherTile)
						if wantSame != gotSame {
							rt.Fatalf("InSameComponent(%d,%d) = %v; union-find says %v", idx, oidx, gotSame, wantSame)
						}
					}
				}
			}
		}
	})
}
