package tidepath

import (
	"log/slog"

	"github.com/turnforge/tidepath/astar"
	"github.com/turnforge/tidepath/hierarchical"
	"github.com/turnforge/tidepath/stepper"
	"github.com/turnforge/tidepath/terrain"
	"github.com/turnforge/tidepath/transform"
)

// WaterPathfinder is the naval entry point: hierarchical search over the
// gateway graph, wrapped in the full spec.md §4.8 transformer pipeline,
// wrapped again in the spec.md §4.9 stepping facade.
type WaterPathfinder struct {
	full     terrain.View
	core     *hierarchical.Pathfinder
	pipeline transform.Pathfinder
	step     *stepper.Stepper
}

// NewWaterPathfinder builds a WaterPathfinder over full, using builder's
// (lazily-initialized) minimap, component labels, and gateway graph.
func NewWaterPathfinder(full terrain.View, builder *GraphBuilder, cfg Config, logger *slog.Logger) *WaterPathfinder {
	mini := builder.Minimap()
	labels := builder.Labels()
	graph := builder.Graph()

	bounded := astar.NewBounded(hierarchical.CapacityFor3x3(cfg.ClusterSize), cfg.HeuristicWeight)
	hcfg := hierarchical.Config{
		ClusterSize:                  cfg.ClusterSize,
		ShortDistanceBypassThreshold: cfg.ShortDistanceBypassThreshold,
		HeuristicWeight:              cfg.HeuristicWeight,
	}
	core := hierarchical.New(mini, graph, bounded, hcfg, logger)

	pipeline := transform.BuildPipeline(full, mini, labels, transform.PipelineConfig{
		SmoothingWindowBase: cfg.SmoothingWindowBase,
	}, transform.Func(core.FindPath))

	return &WaterPathfinder{
		full:     full,
		core:     core,
		pipeline: pipeline,
		step:     stepper.New(full, pipeline),
	}
}

// FindPath runs the full pipeline from any of starts to goal, bypassing
// the stepping cache — spec.md §4.9's find_path contract, generalised to
// the multi-source form the pipeline itself supports.
func (w *WaterPathfinder) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	return w.pipeline.FindPath(starts, goal)
}

// Next advances the cached path one tile (spec.md §4.9).
func (w *WaterPathfinder) Next(from, to terrain.Tile, dist int) stepper.Result {
	return w.step.Next(from, to, dist)
}

// Invalidate clears the stepping cache unconditionally.
func (w *WaterPathfinder) Invalidate() {
	w.step.Invalidate()
}
