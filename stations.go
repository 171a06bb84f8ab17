package tidepath

import "github.com/turnforge/tidepath/astar"

// StationsPathfinder is the station-graph entry point: A* over an
// externally-constructed astar.StationGraph (spec.md §1 places station and
// station-cluster construction out of scope; this package only consumes
// the resulting graph's contract).
//
// Unlike Water and Rail, StationsPathfinder has no stepping facade: its
// node space is the station graph's own ids, not terrain.Tile, and
// package stepper's cache is keyed on terrain.Tile equality and Manhattan
// distance. A caller that wants stepwise station movement can drive
// FindPath once per order and walk the returned id sequence itself — the
// station graph is small and sparse enough (spec.md never asks for
// minimap-style acceleration on it) that recomputing per order is cheap.
type StationsPathfinder struct {
	search *astar.Search[*astar.StationAdapter]
}

// NewStationsPathfinder builds a StationsPathfinder over graph.
// maxNeighbours bounds the largest neighbour list any station can produce.
func NewStationsPathfinder(graph astar.StationGraph, maxNeighbours int, cfg Config) *StationsPathfinder {
	adapter := astar.NewStationAdapter(graph, maxNeighbours)
	return &StationsPathfinder{search: astar.NewSearchWithLimit(adapter, cfg.MaxIterations)}
}

// FindPath runs the station A* from start to goal, both station ids.
func (s *StationsPathfinder) FindPath(start, goal int32) ([]int32, bool) {
	return s.search.Find(start, goal)
}
