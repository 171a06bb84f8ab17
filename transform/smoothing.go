package transform

import (
	"github.com/turnforge/tidepath/geom"
	"github.com/turnforge/tidepath/terrain"
)

// maxSmoothingAttempts guards against a pathological path defeating the
// sliding-window advance (spec.md §4.8's "bounded by a tiles-count guard
// to prevent pathological loops").
const maxSmoothingAttempts = 1 << 20

// BresenhamSmoothingTransformer post-processes a returned path with
// sliding-window line-of-sight smoothing (spec.md §4.8): default
// resolution is post-upscale only (spec.md §9's smoothing-placement open
// question) — see DESIGN.md for why this wraps outside MinimapTransformer
// rather than inside it, operating on the full-resolution view and path.
type BresenhamSmoothingTransformer struct {
	view       terrain.View
	windowBase int
	inner      Pathfinder
}

// NewBresenhamSmoothingTransformer wraps inner with smoothing over view.
// windowBase is spec.md §6's smoothing_window_base (default 100); the
// effective window scales with path length per pickWindow.
func NewBresenhamSmoothingTransformer(view terrain.View, windowBase int, inner Pathfinder) *BresenhamSmoothingTransformer {
	return &BresenhamSmoothingTransformer{view: view, windowBase: windowBase, inner: inner}
}

func (b *BresenhamSmoothingTransformer) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	path, ok := b.inner.FindPath(starts, goal)
	if !ok {
		return nil, false
	}
	return b.smooth(path), true
}

// pickWindow scales the window with path length (100, 200, or 300) so the
// smoothing pass amortises its cost on long paths rather than making a
// fixed number of increasingly useless small-window attempts.
func (b *BresenhamSmoothingTransformer) pickWindow(pathLen int) int {
	switch {
	case pathLen > 6*b.windowBase:
		return 3 * b.windowBase
	case pathLen > 3*b.windowBase:
		return 2 * b.windowBase
	default:
		return b.windowBase
	}
}

func (b *BresenhamSmoothingTransformer) smooth(path []terrain.Tile) []terrain.Tile {
	if len(path) < 3 {
		return path
	}
	window := b.pickWindow(len(path))

	out := make([]terrain.Tile, 0, len(path))
	out = append(out, path[0])

	i := 0
	attempts := 0
	for i < len(path)-1 && attempts < maxSmoothingAttempts {
		attempts++
		end := i + window
		if end >= len(path) {
			end = len(path) - 1
		}

		replaced := false
		for end > i+1 {
			if line, ok := b.traceLine(path[i], path[end]); ok {
				out = append(out, line[1:]...)
				i = end
				replaced = true
				break
			}
			end--
		}
		if !replaced {
			i++
			out = append(out, path[i])
		}
	}
	return out
}

// traceLine Bresenham-traces from to end; it succeeds only if every traced
// tile is traversable (water or shore). Pure diagonal segments are tried
// both x-first and y-first, since spec.md §4.8 requires trying both
// tie-breaks before giving up on a diagonal replacement.
func (b *BresenhamSmoothingTransformer) traceLine(from, to terrain.Tile) ([]terrain.Tile, bool) {
	a := geom.Cell{X: b.view.X(from), Y: b.view.Y(from)}
	c := geom.Cell{X: b.view.X(to), Y: b.view.Y(to)}

	for _, xFirst := range []bool{true, false} {
		cells := geom.Bresenham(a, c, xFirst)
		tiles := make([]terrain.Tile, len(cells))
		ok := true
		for i, cell := range cells {
			if !b.view.InBounds(cell.X, cell.Y) {
				ok = false
				break
			}
			t := b.view.Ref(cell.X, cell.Y)
			if !(b.view.IsWater(t) || b.view.IsShore(t)) {
				ok = false
				break
			}
			tiles[i] = t
		}
		if ok {
			return tiles, true
		}
	}
	return nil, false
}
