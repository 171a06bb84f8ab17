// Package projectile implements the two non-search movement rules of
// spec.md §4.10: Air, a deterministic pseudo-random axis stepper, and
// Parabola, a cubic-Bezier arc. Neither searches a grid; both produce the
// next tile for a single in-flight projectile given its current position.
package projectile

import (
	"math/rand"

	"github.com/turnforge/tidepath/terrain"
)

// Air is a deterministic pseudo-random stepper: at each call it decides to
// advance on the x or y axis with a probability derived from the residual
// distance to goal on each axis, seeded by the caller-supplied tick so that
// replaying the same tick sequence reproduces the same run. Per spec.md
// §9's explicit resolution, the seed must come from the caller (the
// simulation's tick counter) — Air never reads the wall clock.
type Air struct{}

// NewAir returns an Air stepper. It carries no state of its own; every
// call to Next is a pure function of its arguments.
func NewAir() *Air { return &Air{} }

// Next returns the tile to move to from the single tile in starts, biased
// toward closing whichever axis has more residual distance to goal.
// It panics if starts does not contain exactly one tile: spec.md §4.10 is
// explicit that Air never accepts a source set, only a single position.
func (a *Air) Next(starts []terrain.Tile, goal terrain.Tile, view terrain.View, tick uint64) (tile terrain.Tile, arrived bool) {
	if len(starts) != 1 {
		panic("projectile: Air.Next requires exactly one source tile, not a source set")
	}
	from := starts[0]
	if from == goal {
		return goal, true
	}

	dx := view.X(goal) - view.X(from)
	dy := view.Y(goal) - view.Y(from)
	adx, ady := abs(dx), abs(dy)

	src := rand.New(rand.NewSource(int64(tick)))
	roll := src.Float64()

	x, y := view.X(from), view.Y(from)
	xRatio := 0.0
	if total := adx + ady; total > 0 {
		xRatio = float64(adx) / float64(total)
	}

	moveX := dx != 0 && (dy == 0 || roll < xRatio)
	if moveX {
		x += sign(dx)
	} else {
		y += sign(dy)
	}

	next := view.Ref(x, y)
	return next, next == goal
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
