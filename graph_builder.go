package tidepath

import (
	"github.com/turnforge/tidepath/astar"
	"github.com/turnforge/tidepath/component"
	"github.com/turnforge/tidepath/gateway"
	"github.com/turnforge/tidepath/hierarchical"
	"github.com/turnforge/tidepath/terrain"
)

// GraphBuilder owns the three pieces of state that are immutable for the
// full-resolution view's lifetime (spec.md §5): the minimap, the water-
// component labels, and the gateway graph. It builds them lazily on first
// access rather than eagerly at construction — spec.md §7's "graph not
// initialized" policy is to auto-initialize on first call, not to fault.
//
// GraphBuilder is not safe for concurrent use during its first access (no
// locks, per spec.md §5 — the pathfinder runs inside a single-threaded
// game tick); build it once up front if that matters to a caller.
type GraphBuilder struct {
	full terrain.View
	cfg  Config

	initialized bool
	mini        *terrain.Minimap
	labels      *component.Labels
	graph       *gateway.Graph
}

// NewGraphBuilder returns a builder over full. Nothing is computed until
// the first call to Minimap, Labels, or Graph.
func NewGraphBuilder(full terrain.View, cfg Config) *GraphBuilder {
	return &GraphBuilder{full: full, cfg: cfg}
}

func (b *GraphBuilder) ensureInitialized() {
	if b.initialized {
		return
	}
	b.mini = terrain.NewMinimap(b.full)
	b.labels = component.Build(b.mini)
	scratch := astar.NewBounded(hierarchical.CapacityFor3x3(b.cfg.ClusterSize), b.cfg.HeuristicWeight)
	b.graph = gateway.Build(b.mini, b.cfg.ClusterSize, scratch, b.cfg.CacheRefinedEdges)
	b.initialized = true
}

// Minimap returns the half-resolution view derived from full, building it
// (and the component labels and gateway graph) on first call.
func (b *GraphBuilder) Minimap() *terrain.Minimap {
	b.ensureInitialized()
	return b.mini
}

// Labels returns the minimap's water-component labels.
func (b *GraphBuilder) Labels() *component.Labels {
	b.ensureInitialized()
	return b.labels
}

// Graph returns the minimap's gateway graph.
func (b *GraphBuilder) Graph() *gateway.Graph {
	b.ensureInitialized()
	return b.graph
}
