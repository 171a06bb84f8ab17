package astar

import "github.com/turnforge/tidepath/terrain"

// DefaultHeuristicWeight is spec.md §6's heuristic_weight default: a
// deliberately greedy (inadmissible) weight trading strict optimality for
// search speed on large water regions.
const DefaultHeuristicWeight = 15

// WaterAdapter is the generic-adapter form of the water-grid A* (spec.md
// §4.5.1): uniform cost 1, traversable iff water, heuristic
// weight*manhattan. It is graph-agnostic via the Adapter interface — for
// the hot path that reads terrain bytes directly instead, see
// NewInlinedWaterSearch in inlined.go.
type WaterAdapter struct {
	view   terrain.View
	weight int32
}

// NewWaterAdapter builds a WaterAdapter over view with the given heuristic
// weight (spec.md §6 default: 15).
func NewWaterAdapter(view terrain.View, weight int) *WaterAdapter {
	return &WaterAdapter{view: view, weight: int32(weight)}
}

func (a *WaterAdapter) NumNodes() int      { return a.view.Width() * a.view.Height() }
func (a *WaterAdapter) MaxNeighbours() int { return 4 }

// MaxPriority must strictly exceed any f-score the weighted-Manhattan
// heuristic can produce: worst case is weight * (width+height) plus the
// longest possible g (bounded by total tile count, since cost is uniform
// 1). Sizing generously here trades a larger bucket array for a bound that
// never clamps on any grid this adapter is built over.
func (a *WaterAdapter) MaxPriority() int {
	w, h := a.view.Width(), a.view.Height()
	return int(a.weight)*(w+h) + w*h + 1
}

func (a *WaterAdapter) Neighbours(n int32, dst []int32) []int32 {
	t := terrain.Tile(n)
	var buf [4]terrain.Tile
	ns := a.view.Neighbours(t, buf[:0])
	for _, nb := range ns {
		if a.view.IsWater(nb) {
			dst = append(dst, int32(nb))
		}
	}
	return dst
}

func (a *WaterAdapter) Cost(from, to, prevOfFrom int32) int32 { return 1 }

func (a *WaterAdapter) Heuristic(n, goal int32) int32 {
	d := int32(a.view.ManhattanDist(terrain.Tile(n), terrain.Tile(goal)))
	return a.weight * d
}

// FindWaterPath runs the adapter-driven water A* from start to goal,
// translating between terrain.Tile and the Adapter's int32 node ids.
func FindWaterPath(s *Search[*WaterAdapter], start, goal terrain.Tile) ([]terrain.Tile, bool) {
	nodes, ok := s.Find(int32(start), int32(goal))
	if !ok {
		return nil, false
	}
	return tilesFromNodes(nodes), true
}

// FindWaterPathMulti is the multi-source form (spec.md §8 scenario 4).
func FindWaterPathMulti(s *Search[*WaterAdapter], starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	nodeStarts := make([]int32, len(starts))
	for i, t := range starts {
		nodeStarts[i] = int32(t)
	}
	nodes, ok := s.FindMulti(nodeStarts, int32(goal))
	if !ok {
		return nil, false
	}
	return tilesFromNodes(nodes), true
}

func tilesFromNodes(nodes []int32) []terrain.Tile {
	tiles := make([]terrain.Tile, len(nodes))
	for i, n := range nodes {
		tiles[i] = terrain.Tile(n)
	}
	return tiles
}
