package astar

// StationGraph is the contract the station-cluster graph exposes to A*.
// Building that graph (clustering stations, wiring rail connections between
// them) is an external collaborator per spec.md §1 — this package only
// consumes it.
type StationGraph interface {
	NumStations() int
	// Neighbours returns id's directly-connected station ids.
	Neighbours(id int32) []int32
	// Position returns id's representative tile coordinates, used only for
	// the Manhattan heuristic.
	Position(id int32) (x, y int)
}

// StationAdapter is the station-graph A* (spec.md §4.5.1): cost 1 per edge,
// heuristic is Manhattan distance between station tile positions.
type StationAdapter struct {
	graph         StationGraph
	maxNeighbours int
}

// NewStationAdapter builds a StationAdapter. maxNeighbours bounds the
// largest neighbour list any station in graph can produce.
func NewStationAdapter(graph StationGraph, maxNeighbours int) *StationAdapter {
	return &StationAdapter{graph: graph, maxNeighbours: maxNeighbours}
}

func (a *StationAdapter) NumNodes() int      { return a.graph.NumStations() }
func (a *StationAdapter) MaxNeighbours() int { return a.maxNeighbours }

func (a *StationAdapter) MaxPriority() int {
	// Edge cost is always 1, so g is bounded by NumStations(); the
	// Manhattan heuristic is bounded by the sum of the graph's coordinate
	// spans, which the adapter does not know — callers with station
	// positions spanning an unusually large map should construct their own
	// Search with a wider bucket, or rely on the heap fallback by
	// returning <= 0 here via a wrapping adapter.
	return a.graph.NumStations()*2 + 1<<20
}

func (a *StationAdapter) Neighbours(n int32, dst []int32) []int32 {
	return append(dst, a.graph.Neighbours(n)...)
}

func (a *StationAdapter) Cost(from, to, prevOfFrom int32) int32 { return 1 }

func (a *StationAdapter) Heuristic(n, goal int32) int32 {
	nx, ny := a.graph.Position(n)
	gx, gy := a.graph.Position(goal)
	dx := nx - gx
	if dx < 0 {
		dx = -dx
	}
	dy := ny - gy
	if dy < 0 {
		dy = -dy
	}
	return int32(dx + dy)
}
