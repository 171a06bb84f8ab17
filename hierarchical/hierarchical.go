// Package hierarchical implements the seven-step hierarchical pathfinder
// of spec.md §4.7: short-distance bypass, endpoint snapping to a
// water-reachable gateway, the same-gateway shortcut, abstract-graph
// search over package gateway's Graph, per-hop refinement with a bounded
// A*, and concatenation of the refined segments. It operates entirely in
// minimap tile space — the minimap/full-resolution boundary lives in
// package transform's MinimapTransformer, one layer above this package.
package hierarchical

import (
	"log/slog"

	"github.com/turnforge/tidepath/astar"
	"github.com/turnforge/tidepath/gateway"
	"github.com/turnforge/tidepath/spatial"
	"github.com/turnforge/tidepath/terrain"
)

// Config carries the spec.md §6 knobs this package consumes.
type Config struct {
	ClusterSize                  int
	ShortDistanceBypassThreshold int // default: ClusterSize
	HeuristicWeight              int
}

// Pathfinder is the hierarchical core. It is built once over an immutable
// minimap and gateway graph and is safe for reuse across queries, but (like
// every astar.Search) is not safe for concurrent use by two callers at
// once, since it owns one astar.Search and one astar.Bounded instance.
type Pathfinder struct {
	mini    *terrain.Minimap
	graph   *gateway.Graph
	bounded *astar.Bounded
	search  *astar.Search[*gateway.Graph]
	cfg     Config
	log     *slog.Logger
}

// New builds a Pathfinder over graph. bounded must have enough capacity
// for a 3x3-cluster window (spec.md §4.7's snapping/bypass window size);
// see CapacityFor3x3 for the minimum.
func New(mini *terrain.Minimap, graph *gateway.Graph, bounded *astar.Bounded, cfg Config, logger *slog.Logger) *Pathfinder {
	if cfg.ShortDistanceBypassThreshold == 0 {
		cfg.ShortDistanceBypassThreshold = cfg.ClusterSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pathfinder{
		mini:    mini,
		graph:   graph,
		bounded: bounded,
		search:  astar.NewSearch(graph),
		cfg:     cfg,
		log:     logger,
	}
}

// CapacityFor3x3 returns the minimum astar.Bounded capacity a caller must
// preallocate for a 3x3-cluster window at the given cluster size.
func CapacityFor3x3(clusterSize int) int {
	side := clusterSize * 3
	return side * side
}

// FindPath runs the full seven-step algorithm from any of starts to goal,
// both in minimap tile space.
func (p *Pathfinder) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	if len(starts) == 1 {
		if path, ok := p.shortDistanceBypass(starts[0], goal); ok {
			return path, true
		}
	}

	snapped := make(map[gateway.NodeID][]terrain.Tile)
	for _, s := range starts {
		node, ok := p.snapToGateway(s)
		if !ok {
			continue
		}
		snapped[node] = append(snapped[node], s)
	}
	if len(snapped) == 0 {
		return nil, false
	}

	goalNode, ok := p.snapToGateway(goal)
	if !ok {
		return nil, false
	}

	if startTiles, sameGateway := snapped[goalNode]; sameGateway {
		if path, ok := p.sameGatewayShortcut(startTiles, goal, goalNode); ok {
			return path, true
		}
	}

	startNodeIDs := make([]int32, 0, len(snapped))
	for n := range snapped {
		startNodeIDs = append(startNodeIDs, int32(n))
	}
	abstractPath, ok := p.search.FindMulti(startNodeIDs, int32(goalNode))
	if !ok {
		return nil, false
	}

	usedStartNode := gateway.NodeID(abstractPath[0])
	startTile, ok := spatial.ManhattanNearest(p.mini, snapped[usedStartNode], p.graph.NodeTile(usedStartNode))
	if !ok {
		return nil, false
	}

	return p.refine(startTile, goal, abstractPath)
}

// shortDistanceBypass attempts a single bounded A* in the 3x3-cluster
// window around start when the endpoints are close enough to make the
// full hierarchical machinery wasteful (spec.md §4.7 step 1).
func (p *Pathfinder) shortDistanceBypass(start, goal terrain.Tile) ([]terrain.Tile, bool) {
	if p.mini.ManhattanDist(start, goal) > p.cfg.ShortDistanceBypassThreshold {
		return nil, false
	}
	rect := p.graph.Window(p.graph.ClusterOf(start), 1)
	path, ok, err := p.bounded.Find(p.mini, rect, start, goal)
	if err != nil {
		p.log.Debug("hierarchical: short-distance bypass window too small", "err", err)
		return nil, false
	}
	return path, ok
}

// snapToGateway locates the nearest gateway reachable by water BFS from t,
// restricted to a 3x3-cluster block around t's cluster and a radius of
// 3*ClusterSize (spec.md §4.7 step 2). Manhattan-nearest is deliberately
// not used here: it can pick a gateway across land that water BFS would
// never reach.
func (p *Pathfinder) snapToGateway(t terrain.Tile) (gateway.NodeID, bool) {
	candidates := p.graph.NodesInWindow(p.graph.ClusterOf(t), 1)
	if len(candidates) == 0 {
		return 0, false
	}
	byTile := make(map[terrain.Tile]gateway.NodeID, len(candidates))
	for _, id := range candidates {
		byTile[p.graph.NodeTile(id)] = id
	}

	match := func(tile terrain.Tile) bool {
		_, ok := byTile[tile]
		return ok
	}
	traversable := func(tile terrain.Tile) bool { return p.mini.IsWater(tile) }

	radius := 3 * p.cfg.ClusterSize
	found, ok := spatial.BFSNearest(p.mini, t, radius, traversable, match)
	if !ok {
		return 0, false
	}
	return byTile[found], true
}

// sameGatewayShortcut handles both endpoints snapping to the same node
// (spec.md §4.7 step 3): a direct bounded A* in the 3x3-cluster window
// around the shared gateway's cluster suffices since no abstract hop is
// needed.
func (p *Pathfinder) sameGatewayShortcut(starts []terrain.Tile, goal terrain.Tile, node gateway.NodeID) ([]terrain.Tile, bool) {
	rect := p.graph.Window(p.graph.ClusterOf(p.graph.NodeTile(node)), 1)
	path, ok, err := p.bounded.FindMulti(p.mini, rect, starts, goal)
	if err != nil {
		p.log.Debug("hierarchical: same-gateway shortcut window too small", "err", err)
		return nil, false
	}
	return path, ok
}

// refine walks the abstract node sequence, computing (or reusing a cached)
// bounded-A* tile sequence for every hop, plus the start-to-first-gateway
// and last-gateway-to-goal segments, and concatenates them with the
// joining endpoint de-duplicated (spec.md §4.7 step 5). A segment the
// abstract graph promises but bounded A* cannot reproduce is a build/
// caching inconsistency: spec.md §4.7 says log and return none, never
// silently fall back to an unbounded search.
func (p *Pathfinder) refine(start, goal terrain.Tile, abstractPath []int32) ([]terrain.Tile, bool) {
	nodes := make([]gateway.NodeID, len(abstractPath))
	for i, n := range abstractPath {
		nodes[i] = gateway.NodeID(n)
	}

	var full []terrain.Tile

	firstRect := p.graph.Window(p.graph.ClusterOf(start), 1)
	firstHop, ok, err := p.bounded.Find(p.mini, firstRect, start, p.graph.NodeTile(nodes[0]))
	if err != nil || !ok {
		p.log.Debug("hierarchical: segment refinement failed (start->first gateway)", "err", err)
		return nil, false
	}
	full = append(full, firstHop...)

	for i := 0; i < len(nodes)-1; i++ {
		a, b := nodes[i], nodes[i+1]
		segment, ok := p.refineHop(a, b)
		if !ok {
			p.log.Debug("hierarchical: segment refinement failed (abstract hop)", "a", a, "b", b)
			return nil, false
		}
		full = append(full, segment[1:]...)
	}

	lastRect := p.graph.Window(p.graph.ClusterOf(goal), 1)
	lastHop, ok, err := p.bounded.Find(p.mini, lastRect, p.graph.NodeTile(nodes[len(nodes)-1]), goal)
	if err != nil || !ok {
		p.log.Debug("hierarchical: segment refinement failed (last gateway->goal)", "err", err)
		return nil, false
	}
	full = append(full, lastHop[1:]...)

	return full, true
}

// refineHop returns the tile sequence between two adjacent abstract
// nodes, reusing the edge's cached path (oriented a->b) if present.
func (p *Pathfinder) refineHop(a, b gateway.NodeID) ([]terrain.Tile, bool) {
	if edge, ok := p.graph.Edge(a, b); ok && edge.Path != nil {
		if edge.A == a {
			return edge.Path, true
		}
		return reversed(edge.Path), true
	}

	rect := p.graph.Window(p.graph.ClusterOf(p.graph.NodeTile(a)), 1)
	path, ok, err := p.bounded.Find(p.mini, rect, p.graph.NodeTile(a), p.graph.NodeTile(b))
	if err != nil || !ok {
		return nil, false
	}
	return path, true
}

func reversed(path []terrain.Tile) []terrain.Tile {
	out := make([]terrain.Tile, len(path))
	for i, t := range path {
		out[len(path)-1-i] = t
	}
	return out
}
