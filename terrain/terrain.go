// Package terrain defines the read-only grid contract the pathfinder
// consumes and a minimap view derived from it at half linear resolution.
//
// The terrain bitmap itself — how tiles are loaded, stored, or painted by an
// editor — is an external collaborator. This package only specifies (and, for
// tests and the demo CLI, implements) the contract the pathfinding core
// relies on.
package terrain

// Tile is an opaque reference into a grid: y*width + x. Equality is plain
// integer equality; tiles are never owned by the pathfinder, only borrowed.
type Tile int

// Cell is a signed (x, y) pair, used only for upscaling arithmetic where
// coordinates must go negative transiently (e.g. interpolation deltas).
type Cell struct {
	X, Y int
}

// View is the read-only grid contract. Any terrain representation —
// a loaded bitmap, a procedurally generated map, a test fixture — satisfies
// it the same way.
type View interface {
	Width() int
	Height() int

	// Ref returns the tile at (x, y). Callers must keep x, y in bounds;
	// Ref does not itself validate — InBounds does.
	Ref(x, y int) Tile
	X(t Tile) int
	Y(t Tile) int
	InBounds(x, y int) bool

	IsWater(t Tile) bool
	IsLand(t Tile) bool
	IsShore(t Tile) bool

	// Neighbours appends t's up-to-four orthogonal neighbours (in stable
	// up, down, left, right order) to dst and returns the extended slice.
	// Tiles past a map edge are omitted, not clamped.
	Neighbours(t Tile, dst []Tile) []Tile

	ManhattanDist(a, b Tile) int
}

// ManhattanDist is the shared Manhattan-distance implementation every View
// in this package uses; it needs only the width to decode tiles.
func ManhattanDist(width int, a, b Tile) int {
	ax, ay := int(a)%width, int(a)/width
	bx, by := int(b)%width, int(b)/width
	return abs(ax-bx) + abs(ay-by)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
