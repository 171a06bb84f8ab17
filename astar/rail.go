package astar

import "github.com/turnforge/tidepath/terrain"

// direction encodes one of the four orthogonal steps as a small integer so
// RailAdapter can cheaply compare "did we just turn" without storing (dx,
// dy) pairs.
type direction int8

const (
	dirNone direction = iota
	dirUp
	dirDown
	dirLeft
	dirRight
)

func directionBetween(view terrain.View, from, to terrain.Tile) direction {
	fx, fy := view.X(from), view.Y(from)
	tx, ty := view.X(to), view.Y(to)
	switch {
	case tx == fx && ty == fy-1:
		return dirUp
	case tx == fx && ty == fy+1:
		return dirDown
	case tx == fx-1 && ty == fy:
		return dirLeft
	case tx == fx+1 && ty == fy:
		return dirRight
	default:
		return dirNone
	}
}

// RailAdapter is the rail-graph A* (spec.md §4.5.1): cost 1 plus a water
// penalty on water tiles, plus an optional direction-change penalty;
// traversal may only enter water from a shoreline tile — this is what lets
// rail cross narrow straits via a ferry link without modelling one
// explicitly.
type RailAdapter struct {
	view                   terrain.View
	waterPenalty           int32
	directionChangePenalty int32
}

// NewRailAdapter builds a RailAdapter. waterPenalty and
// directionChangePenalty are both required; the root package's
// DefaultConfig supplies 3 and 0 respectively.
func NewRailAdapter(view terrain.View, waterPenalty, directionChangePenalty int) *RailAdapter {
	return &RailAdapter{
		view:                   view,
		waterPenalty:           int32(waterPenalty),
		directionChangePenalty: int32(directionChangePenalty),
	}
}

func (a *RailAdapter) NumNodes() int      { return a.view.Width() * a.view.Height() }
func (a *RailAdapter) MaxNeighbours() int { return 4 }

func (a *RailAdapter) MaxPriority() int {
	w, h := a.view.Width(), a.view.Height()
	maxEdgeCost := int32(1) + a.waterPenalty + a.directionChangePenalty
	return int(maxEdgeCost)*(w*h) + (w + h) + 1
}

func (a *RailAdapter) Neighbours(n int32, dst []int32) []int32 {
	t := terrain.Tile(n)
	var buf [4]terrain.Tile
	for _, nb := range a.view.Neighbours(t, buf[:0]) {
		if a.canEnter(nb) {
			dst = append(dst, int32(nb))
		}
	}
	return dst
}

// canEnter forbids stepping onto any water tile except a shoreline one
// (spec.md §4.5.1): rail can hug the coast — a narrow strait, a harbour —
// but never cross open water with no land tile adjacent to it.
func (a *RailAdapter) canEnter(to terrain.Tile) bool {
	if a.view.IsLand(to) {
		return true
	}
	return a.view.IsShore(to)
}

func (a *RailAdapter) Cost(from, to, prevOfFrom int32) int32 {
	cost := int32(1)
	if a.view.IsWater(terrain.Tile(to)) {
		cost += a.waterPenalty
	}
	if a.directionChangePenalty != 0 && prevOfFrom != NoParent {
		prevDir := directionBetween(a.view, terrain.Tile(prevOfFrom), terrain.Tile(from))
		curDir := directionBetween(a.view, terrain.Tile(from), terrain.Tile(to))
		if prevDir != dirNone && curDir != dirNone && prevDir != curDir {
			cost += a.directionChangePenalty
		}
	}
	return cost
}

func (a *RailAdapter) Heuristic(n, goal int32) int32 {
	return int32(a.view.ManhattanDist(terrain.Tile(n), terrain.Tile(goal)))
}
