// Package geom provides the square-grid line-drawing and interpolation
// primitives used by package transform: Bresenham for the smoothing
// transformer and Lerp/MaxAxis for the minimap transformer's upscaling. The
// parabola projectile pathfinder does not use it. Bresenham is the 4-connected
// square-grid counterpart of the teacher's hex cube-lerp (board.go's
// LineDraw/hexLerp).
package geom

// Cell is a signed (x, y) pair, used wherever arithmetic needs to go
// negative or off-grid temporarily (upscaling, line tracing) before being
// clamped back into a terrain.Tile.
type Cell struct {
	X, Y int
}

// Bresenham traces every 4-connected grid cell from a to b inclusive, using
// an integer-only DDA walk (no float division, matching the hot-path no-
// allocation-beyond-the-result-slice discipline the rest of this module
// follows). A pure diagonal segment resolves to two 4-connected moves per
// step rather than an 8-connected jump: the caller decides whether to take
// the horizontal-first or vertical-first tie-break via xFirst.
func Bresenham(a, b Cell, xFirst bool) []Cell {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx := sign(b.X - a.X)
	sy := sign(b.Y - a.Y)

	cells := make([]Cell, 0, dx+dy+1)
	x, y := a.X, a.Y
	cells = append(cells, Cell{X: x, Y: y})

	err := dx - dy
	for x != b.X || y != b.Y {
		e2 := 2 * err
		movedX, movedY := false, false
		if e2 > -dy {
			err -= dy
			x += sx
			movedX = true
		}
		if e2 < dx {
			err += dx
			y += sy
			movedY = true
		}
		if movedX && movedY {
			// Diagonal step: split into two 4-connected moves so every
			// intermediate cell in the returned sequence is orthogonally
			// adjacent to its predecessor.
			if xFirst {
				cells = append(cells, Cell{X: x, Y: y - sy})
			} else {
				cells = append(cells, Cell{X: x - sx, Y: y})
			}
		}
		cells = append(cells, Cell{X: x, Y: y})
	}
	return cells
}

// Lerp produces the midpoint-rounded linear interpolation between a and b at
// parameter t in [0, 1], the square-grid analogue of the teacher's hexLerp
// used by the minimap transformer's upscale sub-stepping.
func Lerp(a, b Cell, t float64) Cell {
	return Cell{
		X: a.X + roundHalfAwayFromZero(float64(b.X-a.X)*t),
		Y: a.Y + roundHalfAwayFromZero(float64(b.Y-a.Y)*t),
	}
}

func roundHalfAwayFromZero(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// ManhattanDist is the Cell-typed counterpart of terrain.ManhattanDist, used
// by callers working in the signed Cell domain rather than with borrowed
// terrain.Tile indices.
func ManhattanDist(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// MaxAxis returns max(|dx|, |dy|) between a and b — the sub-step count the
// minimap transformer uses when interpolating an upscaled segment.
func MaxAxis(a, b Cell) int {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	if dx > dy {
		return dx
	}
	return dy
}
