package transform

import (
	"github.com/turnforge/tidepath/component"
	"github.com/turnforge/tidepath/terrain"
)

// PipelineConfig carries the subset of spec.md §6's knobs the pipeline
// itself consumes.
type PipelineConfig struct {
	SmoothingWindowBase int
}

// BuildPipeline assembles the full transformer chain around core (the
// hierarchical pathfinder, or anything else satisfying Pathfinder,
// operating in minimap tile space) per spec.md §4.8, resolved per spec.md
// §9's open question toward post-upscale-only smoothing: outside-in this
// is smoothing ∘ minimap ∘ shore-coercion ∘ component-check ∘ core,
// which places smoothing (and the full-resolution view it needs for
// traversability checks) outside the minimap boundary rather than inside
// it as the spec's illustrative composition string lists — see
// DESIGN.md's Open Question decisions for the full reasoning.
func BuildPipeline(full terrain.View, mini *terrain.Minimap, miniLabels *component.Labels, cfg PipelineConfig, core Pathfinder) Pathfinder {
	gated := NewComponentCheckTransformer(miniLabels, core)
	coerced := NewShoreCoercingTransformer(mini, gated)
	upscaled := NewMinimapTransformer(full, mini, coerced)
	return NewBresenhamSmoothingTransformer(full, cfg.SmoothingWindowBase, upscaled)
}
