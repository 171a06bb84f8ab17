package projectile

import (
	"math"

	"github.com/turnforge/tidepath/terrain"
)

// heightRatio and minArcHeight shape the perpendicular bow of the arc:
// the control points are offset by max(dist*heightRatio, minArcHeight)
// tiles, so short hops still arc visibly and long ones scale up.
const (
	heightRatio  = 0.25
	minArcHeight = 1.5
)

type point struct{ x, y float64 }

func lerpPoint(a, b point, t float64) point {
	return point{x: a.x + (b.x-a.x)*t, y: a.y + (b.y-a.y)*t}
}

// Parabola discretises a cubic Bezier arc from a fixed launch tile to a
// fixed target tile (spec.md §4.10): two control points offset
// perpendicular to the launch-target line by a height that scales with
// distance, clamped to a minimum so point-blank shots still arc. Next
// advances the curve parameter by speed*increment per call.
type Parabola struct {
	view terrain.View
	to   terrain.Tile

	p0, p1, p2, p3 point
	t              float64
	increment      float64
}

// NewParabola builds the arc from -> to over view, discretised in steps of
// increment per unit speed (e.g. increment 0.02 takes 50 full-speed Next
// calls to traverse the whole arc).
func NewParabola(view terrain.View, from, to terrain.Tile, increment float64) *Parabola {
	p0 := point{x: float64(view.X(from)), y: float64(view.Y(from))}
	p3 := point{x: float64(view.X(to)), y: float64(view.Y(to))}

	dx, dy := p3.x-p0.x, p3.y-p0.y
	dist := math.Hypot(dx, dy)

	height := dist * heightRatio
	if height < minArcHeight {
		height = minArcHeight
	}

	var perp point
	if dist > 0 {
		ux, uy := dx/dist, dy/dist
		perp = point{x: -uy * height, y: ux * height}
	}

	p1 := lerpPoint(p0, p3, 1.0/3.0)
	p1.x += perp.x
	p1.y += perp.y
	p2 := lerpPoint(p0, p3, 2.0/3.0)
	p2.x += perp.x
	p2.y += perp.y

	t := 0.0
	if dist == 0 {
		t = 1 // launch tile and target coincide: already there
	}
	return &Parabola{view: view, to: to, p0: p0, p1: p1, p2: p2, p3: p3, increment: increment, t: t}
}

// Next advances the arc parameter by speed*increment (clamped to the end
// of the curve) and returns the tile nearest the new position. arrived is
// true once the parameter has reached the end of the curve, at which
// point Next always returns the target tile.
func (p *Parabola) Next(speed float64) (tile terrain.Tile, arrived bool) {
	if p.t >= 1 {
		return p.to, true
	}

	p.t += speed * p.increment
	if p.t >= 1 {
		p.t = 1
		return p.to, true
	}

	pos := evalCubicBezier(p.p0, p.p1, p.p2, p.p3, p.t)
	return clampToTile(p.view, pos), false
}

func evalCubicBezier(p0, p1, p2, p3 point, t float64) point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return point{
		x: a*p0.x + b*p1.x + c*p2.x + d*p3.x,
		y: a*p0.y + b*p1.y + c*p2.y + d*p3.y,
	}
}

func clampToTile(view terrain.View, p point) terrain.Tile {
	x := roundHalfAwayFromZero(p.x)
	y := roundHalfAwayFromZero(p.y)
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= view.Width() {
		x = view.Width() - 1
	}
	if y >= view.Height() {
		y = view.Height() - 1
	}
	return view.Ref(x, y)
}

func roundHalfAwayFromZero(f float64) int {
	if f >= 0 {
		return int(f + 0.5)
	}
	return -int(-f + 0.5)
}
