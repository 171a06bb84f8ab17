package transform

import (
	"github.com/turnforge/tidepath/geom"
	"github.com/turnforge/tidepath/terrain"
)

// MinimapTransformer downscales full-resolution input coordinates to the
// minimap, runs inner entirely in minimap space, then upscales the result
// back to full resolution and pins the exact requested endpoints (spec.md
// §4.8). inner — and everything it wraps in turn (shore coercion,
// component check, the hierarchical core) — only ever sees minimap tiles;
// this transformer is the sole boundary between the two coordinate
// spaces.
type MinimapTransformer struct {
	full  terrain.View
	mini  *terrain.Minimap
	inner Pathfinder
}

// NewMinimapTransformer wraps inner, which must operate on mini's tile
// space, translating full's tile space at the boundary.
func NewMinimapTransformer(full terrain.View, mini *terrain.Minimap, inner Pathfinder) *MinimapTransformer {
	return &MinimapTransformer{full: full, mini: mini, inner: inner}
}

func (m *MinimapTransformer) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	miniStarts := make([]terrain.Tile, len(starts))
	for i, s := range starts {
		miniStarts[i] = m.downscale(s)
	}
	miniGoal := m.downscale(goal)

	miniPath, ok := m.inner.FindPath(miniStarts, miniGoal)
	if !ok {
		return nil, false
	}

	upscaled := m.upscalePath(miniPath)
	return m.pinEndpoints(upscaled, starts, goal), true
}

func (m *MinimapTransformer) downscale(t terrain.Tile) terrain.Tile {
	x, y := m.full.X(t), m.full.Y(t)
	mc := terrain.ToMinimap(terrain.Cell{X: x, Y: y})
	return m.mini.Ref(mc.X, mc.Y)
}

// upscalePath multiplies every minimap cell by Downscale and linearly
// interpolates between consecutive scaled cells with max(|dx|,|dy|)
// sub-steps, so the returned full-resolution path has no gap larger than
// one tile between successive entries.
func (m *MinimapTransformer) upscalePath(miniPath []terrain.Tile) []terrain.Tile {
	if len(miniPath) == 0 {
		return nil
	}
	cells := make([]geom.Cell, len(miniPath))
	for i, t := range miniPath {
		full := m.mini.ToFull(terrain.Cell{X: m.mini.X(t), Y: m.mini.Y(t)})
		cells[i] = geom.Cell{X: full.X, Y: full.Y}
	}

	out := make([]terrain.Tile, 0, len(cells)*terrain.Downscale)
	out = append(out, m.clampRef(cells[0]))
	for i := 1; i < len(cells); i++ {
		steps := geom.MaxAxis(cells[i-1], cells[i])
		for step := 1; step <= steps; step++ {
			t := float64(step) / float64(steps)
			out = append(out, m.clampRef(geom.Lerp(cells[i-1], cells[i], t)))
		}
	}
	return out
}

func (m *MinimapTransformer) clampRef(c geom.Cell) terrain.Tile {
	x, y := c.X, c.Y
	if x >= m.full.Width() {
		x = m.full.Width() - 1
	}
	if y >= m.full.Height() {
		y = m.full.Height() - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return m.full.Ref(x, y)
}

// pinEndpoints enforces that the returned path starts and ends at the
// caller's exact full-resolution request, trimming or prepending/
// appending as needed (spec.md §4.8). For a multi-source query the pinned
// start is whichever source is Manhattan-closest to the upscaled path's
// first cell.
func (m *MinimapTransformer) pinEndpoints(path []terrain.Tile, starts []terrain.Tile, goal terrain.Tile) []terrain.Tile {
	if len(path) == 0 {
		return path
	}

	pinnedStart := starts[0]
	if len(starts) > 1 {
		best := m.full.ManhattanDist(starts[0], path[0])
		for _, s := range starts[1:] {
			if d := m.full.ManhattanDist(s, path[0]); d < best {
				best = d
				pinnedStart = s
			}
		}
	}

	path = pinEndpoint(path, pinnedStart, true)
	path = pinEndpoint(path, goal, false)
	return path
}

// pinEndpoint trims everything before (or after, for the goal) the first
// occurrence of want in path, or prepends/appends it if absent.
func pinEndpoint(path []terrain.Tile, want terrain.Tile, isStart bool) []terrain.Tile {
	idx := -1
	if isStart {
		for i, t := range path {
			if t == want {
				idx = i
				break
			}
		}
	} else {
		for i := len(path) - 1; i >= 0; i-- {
			if path[i] == want {
				idx = i
				break
			}
		}
	}

	switch {
	case idx < 0 && isStart:
		return append([]terrain.Tile{want}, path...)
	case idx < 0:
		return append(path, want)
	case isStart:
		return path[idx:]
	default:
		return path[:idx+1]
	}
}
