package terrain

import "strings"

// LandBit is the terrain byte encoding bit: set means land, clear means
// water. This mirrors the "terrain encoding (bit 7 = land)" hot-path
// optimisation spec.md calls out — inlined A* loops may read Raw() and mask
// against LandBit directly, but every correctness decision in this package
// goes through the predicate methods below, never the byte.
const LandBit = 0x80

const landBit = LandBit

// Grid is a concrete, in-memory View: a rectangular array of land/water
// bytes. It is the terrain representation used by tests and by the
// tidepathctl demo CLI; a real game supplies its own View backed by its
// loaded map format instead.
type Grid struct {
	width, height int
	cells         []byte
	shore         []bool
}

// NewGrid builds a Grid from rows of 'W' (water) and 'L'/'.' (land)
// characters. All rows must have equal length.
func NewGrid(rows []string) *Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := &Grid{width: w, height: h, cells: make([]byte, w*h)}
	for y, row := range rows {
		for x := 0; x < w; x++ {
			if x < len(row) && row[x] == 'W' {
				g.cells[y*w+x] = 0
			} else {
				g.cells[y*w+x] = landBit
			}
		}
	}
	g.computeShore()
	return g
}

// NewBlankWaterGrid builds a w x h grid of all-water tiles, used by
// benchmarks and by callers that paint land afterwards with SetLand.
func NewBlankWaterGrid(w, h int) *Grid {
	g := &Grid{width: w, height: h, cells: make([]byte, w*h)}
	g.computeShore()
	return g
}

// SetLand marks (x, y) as land (or water, if land is false) and refreshes
// the derived shore classification. Construction-time only: callers must
// not mutate a Grid once it has been handed to a gateway graph builder or
// an A* instance, per spec.md's "read-only after construction" contract.
func (g *Grid) SetLand(x, y int, land bool) {
	if !g.InBounds(x, y) {
		return
	}
	idx := y*g.width + x
	if land {
		g.cells[idx] = landBit
	} else {
		g.cells[idx] = 0
	}
	g.computeShore()
}

// computeShore marks every tile adjacent to a tile of the opposite
// land/water class — the glossary's symmetric definition. A water tile
// next to land is shore (the classic "coastal water" sense, the one the
// shore-coercion transformer snaps land endpoints onto); a land tile next
// to water is also shore (what lets rail depart onto water in the first
// place, spec.md §4.5.1's "entering water except from shoreline tiles").
func (g *Grid) computeShore() {
	g.shore = make([]bool, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := y*g.width + x
			if g.adjacentToOppositeClass(x, y) {
				g.shore[idx] = true
			}
		}
	}
}

func (g *Grid) adjacentToOppositeClass(x, y int) bool {
	here := g.cells[y*g.width+x] & landBit
	deltas := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.cells[ny*g.width+nx]&landBit != here {
			return true
		}
	}
	return false
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Ref(x, y int) Tile { return Tile(y*g.width + x) }
func (g *Grid) X(t Tile) int      { return int(t) % g.width }
func (g *Grid) Y(t Tile) int      { return int(t) / g.width }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) IsWater(t Tile) bool { return g.cells[t]&landBit == 0 }
func (g *Grid) IsLand(t Tile) bool  { return g.cells[t]&landBit != 0 }
func (g *Grid) IsShore(t Tile) bool { return g.shore[t] }

func (g *Grid) Neighbours(t Tile, dst []Tile) []Tile {
	x, y := g.X(t), g.Y(t)
	if g.InBounds(x, y-1) {
		dst = append(dst, Tile(t)-Tile(g.width))
	}
	if g.InBounds(x, y+1) {
		dst = append(dst, Tile(t)+Tile(g.width))
	}
	if g.InBounds(x-1, y) {
		dst = append(dst, Tile(t)-1)
	}
	if g.InBounds(x+1, y) {
		dst = append(dst, Tile(t)+1)
	}
	return dst
}

func (g *Grid) ManhattanDist(a, b Tile) int { return ManhattanDist(g.width, a, b) }

// Raw exposes the bit7-land-encoded byte array for hot-loop specialisations
// such as astar's inlined grid water search. Correctness never depends on
// this; it exists purely for throughput.
func (g *Grid) Raw() []byte { return g.cells }

// RawAccessor is implemented by any View willing to expose its backing
// byte array for the inlined A* specialisation.
type RawAccessor interface {
	Raw() []byte
}

// GridBuilder is a fluent test-fixture builder, grounded on the teacher's
// testGameBuilder (lib/attack_test.go): accumulate rows, then Build.
type GridBuilder struct {
	rows []string
}

func NewGridBuilder() *GridBuilder { return &GridBuilder{} }

func (b *GridBuilder) Row(row string) *GridBuilder {
	b.rows = append(b.rows, row)
	return b
}

// Rows splits a multi-line string (blank lines ignored) into rows in one
// call, convenient for literal map fixtures in tests.
func (b *GridBuilder) Rows(block string) *GridBuilder {
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.rows = append(b.rows, line)
	}
	return b
}

func (b *GridBuilder) Build() *Grid { return NewGrid(b.rows) }
