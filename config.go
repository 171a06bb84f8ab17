// Package tidepath is the root facade: WaterPathfinder, RailPathfinder,
// StationsPathfinder, and the Air/Parabola projectile entry points, each
// wiring the lower packages (terrain, astar, gateway, hierarchical,
// transform, stepper, projectile) into the API spec.md §6 describes.
package tidepath

import "github.com/turnforge/tidepath/astar"

// Config carries every caller-supplied knob spec.md §6 enumerates, with the
// defaults it lists.
type Config struct {
	// ClusterSize is the gateway graph's cluster edge length in minimap
	// tiles. spec.md §6 lists 16, 32, or 64 as the expected range.
	ClusterSize int
	// HeuristicWeight biases the water searches' heuristic (spec.md default
	// 15, deliberately inadmissible for search speed on large water bodies).
	// The rail, station and abstract-graph heuristics are unweighted.
	HeuristicWeight int
	// MaxIterations is the synchronous ceiling of the rail and station
	// searches (spec.md default 500 000). The water pathfinder's bounded
	// and abstract-graph searches do not read it; they always use
	// astar.DefaultMaxIterations.
	MaxIterations int
	// RailWaterPenalty and RailDirectionChangePenalty tune RailAdapter
	// (spec.md defaults 3 and 0).
	RailWaterPenalty           int
	RailDirectionChangePenalty int
	// SmoothingWindowBase is the Bresenham smoothing transformer's base
	// window (spec.md default 100; it scales to 200/300 on longer paths).
	SmoothingWindowBase int
	// ShortDistanceBypassThreshold is the hierarchical pathfinder's bypass
	// cutoff. Zero defaults to ClusterSize, per spec.md §6.
	ShortDistanceBypassThreshold int
	// CacheRefinedEdges controls whether the gateway graph caches each
	// abstract edge's refined tile sequence at build time.
	CacheRefinedEdges bool
}

// DefaultConfig returns spec.md §6's defaults verbatim.
func DefaultConfig() Config {
	return Config{
		ClusterSize:                  32,
		HeuristicWeight:              astar.DefaultHeuristicWeight,
		MaxIterations:                astar.DefaultMaxIterations,
		RailWaterPenalty:             3,
		RailDirectionChangePenalty:   0,
		SmoothingWindowBase:          100,
		ShortDistanceBypassThreshold: 0,
		CacheRefinedEdges:            true,
	}
}
