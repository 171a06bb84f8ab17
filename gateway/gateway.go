// Package gateway builds the hierarchical cluster/gateway graph spec.md
// §4.6 describes: the minimap is tiled into square clusters, maximal
// water-water runs along interior cluster edges become abstract nodes
// shared by both clusters they separate, and intra-cluster connectivity is
// probed once at build time with a bounded A* and cached as edges. Once
// built the graph is read-only for the lifetime of the map, same as the
// water-component labels (package component).
package gateway

import (
	"sort"

	"github.com/turnforge/tidepath/astar"
	"github.com/turnforge/tidepath/terrain"
)

// Side records which interior cluster boundary a gateway run lies on.
type Side int8

const (
	SideRight Side = iota
	SideBottom
)

// ClusterCoord identifies one cell of the cluster tiling.
type ClusterCoord struct {
	CX, CY int
}

// NodeID indexes Graph.nodes directly — node ids are dense [0, len(nodes)).
type NodeID int32

// Node is one abstract graph node: a maximal run of mutually-water tiles
// straddling a cluster boundary, collapsed to a single representative tile
// at the midpoint of the run (spec.md §9's gateway-position open question,
// resolved toward the midpoint — see DESIGN.md). It belongs to both
// clusters sharing the boundary; that dual membership is what makes
// cross-cluster connectivity emerge from purely intra-cluster edge
// probing (spec.md §9 "gateway-shared-across-clusters").
type Node struct {
	ID       NodeID
	ClusterA ClusterCoord
	ClusterB ClusterCoord
	Side     Side
	Tile     terrain.Tile // minimap tile, midpoint of the run, on the ClusterA side of the boundary
	Length   int          // number of tile positions in the run
}

// Edge is an undirected abstract-graph connection, probed once between two
// nodes of the same cluster. Path is populated only when the graph is built
// with cacheRefinedEdges (spec.md §6's cache_refined_edges), and is
// direction-independent — spec.md §3 notes a consumer needing it reversed
// must reverse it itself.
type Edge struct {
	A, B    NodeID
	Cost    int32
	Cluster ClusterCoord
	Path    []terrain.Tile
}

type adjEntry struct {
	to   NodeID
	cost int32
}

// Graph is the built, immutable abstract graph plus the minimap it was
// built over. It implements astar.Adapter directly so the same generic
// Search engine runs the abstract search of spec.md §4.7 step 4.
type Graph struct {
	minimap        *terrain.Minimap
	clusterSize    int
	nodes          []Node
	nodesByCluster map[ClusterCoord][]NodeID
	adjacency      [][]adjEntry // parallel to nodes
	edges          map[edgeKey]*Edge
	maxPriority    int
}

type edgeKey struct{ a, b NodeID }

func makeEdgeKey(a, b NodeID) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Build tiles minimap into clusterSize x clusterSize clusters, detects
// gateways along every interior right/bottom cluster edge, and probes
// intra-cluster connectivity between every pair of nodes sharing a
// cluster with boundedSearch, a water-only bounded A* whose capacity must
// cover a window of (clusterSize+2)^2 tiles (one ring of padding either
// side of the cluster so boundary-straddling gateway tiles are reachable).
// Edges that already exist from another cluster keep the cheaper probe
// (spec.md §9's duplicate-edge open question, resolved toward "cheaper" —
// see PreferCheaperEdge).
func Build(minimap *terrain.Minimap, clusterSize int, boundedSearch *astar.Bounded, cacheRefinedEdges bool) *Graph {
	g := &Graph{
		minimap:        minimap,
		clusterSize:    clusterSize,
		nodesByCluster: make(map[ClusterCoord][]NodeID),
		edges:          make(map[edgeKey]*Edge),
	}

	g.detectGateways()
	g.buildIntraClusterEdges(boundedSearch, cacheRefinedEdges)
	g.finalizeAdjacency()
	return g
}

func (g *Graph) clusterOf(x, y int) ClusterCoord {
	return ClusterCoord{CX: x / g.clusterSize, CY: y / g.clusterSize}
}

// detectGateways scans every interior right and bottom cluster edge for
// maximal mutually-water runs and turns each into a Node.
func (g *Graph) detectGateways() {
	w, h := g.minimap.Width(), g.minimap.Height()

	// Right edges: boundary column between cluster cx and cx+1.
	for x := g.clusterSize - 1; x < w-1; x += g.clusterSize {
		g.scanRun(x, 0, w, h, SideRight)
	}
	// Bottom edges: boundary row between cluster cy and cy+1.
	for y := g.clusterSize - 1; y < h-1; y += g.clusterSize {
		g.scanRun(0, y, w, h, SideBottom)
	}
}

// scanRun walks one interior boundary line, collecting maximal runs of
// positions where both the edge tile and its cross-edge neighbour are
// water, and emits one Node per run. A run is cut at every cluster corner
// along the line, so each run lies on the edge of exactly one cluster pair.
func (g *Graph) scanRun(fixedX, fixedY, w, h int, side Side) {
	var runStart int = -1

	flush := func(runEnd int) {
		if runStart < 0 {
			return
		}
		mid := (runStart + runEnd) / 2
		var tile terrain.Tile
		var clusterA, clusterB ClusterCoord
		switch side {
		case SideRight:
			tile = g.minimap.Ref(fixedX, mid)
			clusterA = g.clusterOf(fixedX, mid)
			clusterB = g.clusterOf(fixedX+1, mid)
		case SideBottom:
			tile = g.minimap.Ref(mid, fixedY)
			clusterA = g.clusterOf(mid, fixedY)
			clusterB = g.clusterOf(mid, fixedY+1)
		}
		id := NodeID(len(g.nodes))
		g.nodes = append(g.nodes, Node{
			ID:       id,
			ClusterA: clusterA,
			ClusterB: clusterB,
			Side:     side,
			Tile:     tile,
			Length:   runEnd - runStart + 1,
		})
		g.nodesByCluster[clusterA] = append(g.nodesByCluster[clusterA], id)
		g.nodesByCluster[clusterB] = append(g.nodesByCluster[clusterB], id)
		runStart = -1
	}

	switch side {
	case SideRight:
		for y := 0; y < h; y++ {
			if y%g.clusterSize == 0 {
				flush(y - 1)
			}
			waterBoth := g.minimap.IsWater(g.minimap.Ref(fixedX, y)) && g.minimap.IsWater(g.minimap.Ref(fixedX+1, y))
			if waterBoth {
				if runStart < 0 {
					runStart = y
				}
			} else {
				flush(y - 1)
			}
		}
		flush(h - 1)
	case SideBottom:
		for x := 0; x < w; x++ {
			if x%g.clusterSize == 0 {
				flush(x - 1)
			}
			waterBoth := g.minimap.IsWater(g.minimap.Ref(x, fixedY)) && g.minimap.IsWater(g.minimap.Ref(x, fixedY+1))
			if waterBoth {
				if runStart < 0 {
					runStart = x
				}
			} else {
				flush(x - 1)
			}
		}
		flush(w - 1)
	}
}

// buildIntraClusterEdges probes every pair of distinct nodes sharing a
// cluster, over a window padded by one minimap tile on each side so
// boundary-straddling representative tiles on the far side of the window
// are still inside it.
func (g *Graph) buildIntraClusterEdges(boundedSearch *astar.Bounded, cacheRefinedEdges bool) {
	clusters := make([]ClusterCoord, 0, len(g.nodesByCluster))
	for c := range g.nodesByCluster {
		clusters = append(clusters, c)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].CY != clusters[j].CY {
			return clusters[i].CY < clusters[j].CY
		}
		return clusters[i].CX < clusters[j].CX
	})

	w, h := g.minimap.Width(), g.minimap.Height()
	for _, cluster := range clusters {
		ids := g.nodesByCluster[cluster]
		if len(ids) < 2 {
			continue
		}
		rect := g.clusterWindow(cluster, w, h)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				g.probeEdge(cluster, ids[i], ids[j], rect, boundedSearch, cacheRefinedEdges)
			}
		}
	}
}

// clusterWindow is the single-cluster-plus-one-tile-padding window used
// while probing intra-cluster edges at build time: just wide enough that a
// boundary-straddling representative tile on the far side is still inside
// it.
func (g *Graph) clusterWindow(c ClusterCoord, w, h int) astar.Rect {
	minX := c.CX*g.clusterSize - 1
	minY := c.CY*g.clusterSize - 1
	maxX := (c.CX+1)*g.clusterSize
	maxY := (c.CY+1)*g.clusterSize
	return clampRect(minX, minY, maxX, maxY, w, h)
}

// Window returns the axis-aligned minimap rectangle spanning
// (2*clusterRadius+1)^2 clusters centered on center, clamped to the
// minimap's bounds — the "3x3-cluster window" spec.md §4.7 uses for
// short-distance bypass and endpoint-snapping restriction (clusterRadius
// 1), exported for package hierarchical.
func (g *Graph) Window(center ClusterCoord, clusterRadius int) astar.Rect {
	w, h := g.minimap.Width(), g.minimap.Height()
	minX := (center.CX - clusterRadius) * g.clusterSize
	minY := (center.CY - clusterRadius) * g.clusterSize
	maxX := (center.CX+clusterRadius+1)*g.clusterSize - 1
	maxY := (center.CY+clusterRadius+1)*g.clusterSize - 1
	return clampRect(minX, minY, maxX, maxY, w, h)
}

func clampRect(minX, minY, maxX, maxY, w, h int) astar.Rect {
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if maxY > h-1 {
		maxY = h - 1
	}
	return astar.Rect{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// PreferCheaperEdge resolves spec.md §9's duplicate-edge open question:
// when two nodes are already connected from an earlier cluster's probe, a
// cheaper probe from a later cluster replaces it rather than being
// discarded in favour of first-seen.
const PreferCheaperEdge = true

func (g *Graph) probeEdge(cluster ClusterCoord, a, b NodeID, rect astar.Rect, boundedSearch *astar.Bounded, cacheRefinedEdges bool) {
	fromTile := g.nodes[a].Tile
	toTile := g.nodes[b].Tile
	path, ok, err := boundedSearch.Find(g.minimap, rect, fromTile, toTile)
	if err != nil || !ok {
		return
	}

	key := makeEdgeKey(a, b)
	cost := int32(len(path))
	existing, has := g.edges[key]
	if has && PreferCheaperEdge && existing.Cost <= cost {
		return
	}

	edge := &Edge{A: key.a, B: key.b, Cost: cost, Cluster: cluster}
	if cacheRefinedEdges {
		edge.Path = path
	}
	g.edges[key] = edge
}

func (g *Graph) finalizeAdjacency() {
	g.adjacency = make([][]adjEntry, len(g.nodes))
	for _, e := range g.edges {
		g.adjacency[e.A] = append(g.adjacency[e.A], adjEntry{to: e.B, cost: e.Cost})
		g.adjacency[e.B] = append(g.adjacency[e.B], adjEntry{to: e.A, cost: e.Cost})
	}
	// Edge costs are refined path lengths with no tight bound analogous to
	// a weighted-Manhattan heuristic, so Graph reports a non-positive
	// MaxPriority and the generic Search falls back to the binary heap
	// (spec.md §9 "bucket vs. heap").
	g.maxPriority = 0
}

// --- astar.Adapter ---

func (g *Graph) NumNodes() int      { return len(g.nodes) }
func (g *Graph) MaxNeighbours() int { return maxDegree(g.adjacency) }
func (g *Graph) MaxPriority() int   { return g.maxPriority }

func maxDegree(adj [][]adjEntry) int {
	max := 0
	for _, list := range adj {
		if len(list) > max {
			max = len(list)
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

func (g *Graph) Neighbours(n int32, dst []int32) []int32 {
	for _, e := range g.adjacency[n] {
		dst = append(dst, int32(e.to))
	}
	return dst
}

func (g *Graph) Cost(from, to, _ int32) int32 {
	for _, e := range g.adjacency[from] {
		if e.to == NodeID(to) {
			return e.cost
		}
	}
	return 1
}

func (g *Graph) Heuristic(n, goal int32) int32 {
	a, b := g.nodes[n].Tile, g.nodes[goal].Tile
	return int32(g.minimap.ManhattanDist(a, b))
}

// --- queries used by package hierarchical ---

// NodeTile returns a node's representative minimap tile.
func (g *Graph) NodeTile(id NodeID) terrain.Tile { return g.nodes[id].Tile }

// Node returns the full Node record for id.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// NodesInCluster returns the node ids belonging to cluster c (as either
// ClusterA or ClusterB).
func (g *Graph) NodesInCluster(c ClusterCoord) []NodeID { return g.nodesByCluster[c] }

// NodesInWindow returns every node belonging to any cluster within radius
// clusters of center (inclusive), used by the hierarchical pathfinder's
// endpoint-snapping 3x3-block restriction (spec.md §4.7 step 2).
func (g *Graph) NodesInWindow(center ClusterCoord, radius int) []NodeID {
	var out []NodeID
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			out = append(out, g.nodesByCluster[ClusterCoord{CX: center.CX + dx, CY: center.CY + dy}]...)
		}
	}
	return out
}

// ClusterOf exposes the cluster a minimap tile falls in.
func (g *Graph) ClusterOf(t terrain.Tile) ClusterCoord {
	return g.clusterOf(g.minimap.X(t), g.minimap.Y(t))
}

// ClusterSize returns the cluster side length the graph was built with.
func (g *Graph) ClusterSize() int { return g.clusterSize }

// Minimap returns the minimap the graph was built over.
func (g *Graph) Minimap() *terrain.Minimap { return g.minimap }

// Edge looks up the probed edge between a and b, if any.
func (g *Graph) Edge(a, b NodeID) (*Edge, bool) {
	e, ok := g.edges[makeEdgeKey(a, b)]
	return e, ok
}

// NumEdges reports how many distinct abstract edges were built.
func (g *Graph) NumEdges() int { return len(g.edges) }
