package transform

import (
	"github.com/turnforge/tidepath/component"
	"github.com/turnforge/tidepath/terrain"
)

// ComponentCheckTransformer short-circuits to no-path before delegating
// whenever none of the start tiles share a water component with the goal
// (spec.md §4.8's component-check transformer). A land goal or land start
// is never in a water component (component id 0 never matches another
// tile's id), so this also rejects the all-land case without a separate
// branch — exactly the short-circuit spec.md §2's data flow describes for
// "endpoints are in different water components".
type ComponentCheckTransformer struct {
	labels *component.Labels
	inner  Pathfinder
}

// NewComponentCheckTransformer wraps inner with a component-connectivity
// gate over labels.
func NewComponentCheckTransformer(labels *component.Labels, inner Pathfinder) *ComponentCheckTransformer {
	return &ComponentCheckTransformer{labels: labels, inner: inner}
}

func (c *ComponentCheckTransformer) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	connected := false
	for _, s := range starts {
		if c.labels.InSameComponent(s, goal) {
			connected = true
			break
		}
	}
	if !connected {
		return nil, false
	}
	return c.inner.FindPath(starts, goal)
}
