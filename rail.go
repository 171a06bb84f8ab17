package tidepath

import (
	"github.com/turnforge/tidepath/astar"
	"github.com/turnforge/tidepath/stepper"
	"github.com/turnforge/tidepath/terrain"
)

// RailPathfinder is the rail entry point: a direct full-resolution A* over
// RailAdapter (spec.md §4.5.1 — cost 1 plus a water penalty, entering
// water only from shore), wrapped in the stepping facade. It does not run
// through the hierarchical/transformer pipeline: rail networks are sparse
// and bounded enough that spec.md never asks for minimap acceleration on
// them, only on the water search.
type RailPathfinder struct {
	full   terrain.View
	search *astar.Search[*astar.RailAdapter]
	step   *stepper.Stepper
}

// NewRailPathfinder builds a RailPathfinder over full.
func NewRailPathfinder(full terrain.View, cfg Config) *RailPathfinder {
	adapter := astar.NewRailAdapter(full, cfg.RailWaterPenalty, cfg.RailDirectionChangePenalty)
	r := &RailPathfinder{
		full:   full,
		search: astar.NewSearchWithLimit(adapter, cfg.MaxIterations),
	}
	r.step = stepper.New(full, r)
	return r
}

// FindPath runs the rail A* from any of starts to goal.
func (r *RailPathfinder) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	nodeStarts := make([]int32, len(starts))
	for i, t := range starts {
		nodeStarts[i] = int32(t)
	}
	nodes, ok := r.search.FindMulti(nodeStarts, int32(goal))
	if !ok {
		return nil, false
	}
	tiles := make([]terrain.Tile, len(nodes))
	for i, n := range nodes {
		tiles[i] = terrain.Tile(n)
	}
	return tiles, true
}

// Next advances the cached rail path one tile.
func (r *RailPathfinder) Next(from, to terrain.Tile, dist int) stepper.Result {
	return r.step.Next(from, to, dist)
}

// Invalidate clears the stepping cache unconditionally.
func (r *RailPathfinder) Invalidate() {
	r.step.Invalidate()
}
