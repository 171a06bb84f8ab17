// Package transform implements the composable pathfinder wrappers of
// spec.md §4.8: minimap downscale/upscale, shore coercion, connected-
// component short-circuiting, and Bresenham line-of-sight smoothing. Each
// wrapper implements the same Pathfinder contract as the thing it wraps,
// so the pipeline is just nested construction — no special-cased glue.
package transform

import "github.com/turnforge/tidepath/terrain"

// Pathfinder is the contract every pipeline stage implements: a possibly
// multi-source search that returns a tile sequence or reports no path.
type Pathfinder interface {
	FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool)
}

// Func adapts a plain function to Pathfinder, the way http.HandlerFunc
// adapts a function to http.Handler — used to hand the hierarchical
// pathfinder's method value to the pipeline without a wrapper type.
type Func func(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool)

func (f Func) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	return f(starts, goal)
}
