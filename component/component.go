// Package component labels every water tile of a terrain view with a
// connected-component id in one flood-fill pass, answering "are these two
// water tiles in the same reachable region" in O(1) afterwards (spec.md
// §4.4). Land tiles always carry component id 0.
package component

import "github.com/turnforge/tidepath/terrain"

// ID is a water-component identifier. 0 is reserved for land.
type ID uint32

// Labels holds one ID per tile of the view it was built from. It is built
// once and never mutated afterwards — same lifecycle as the gateway graph.
type Labels struct {
	ids   []ID
	count ID
}

// Build flood-fills view, assigning the next component id to every
// unvisited water tile's 4-connected region.
func Build(view terrain.View) *Labels {
	n := view.Width() * view.Height()
	l := &Labels{ids: make([]ID, n)}

	queue := make([]terrain.Tile, 0, 64)
	nbuf := make([]terrain.Tile, 0, 4)

	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			t := view.Ref(x, y)
			if !view.IsWater(t) || l.ids[t] != 0 {
				continue
			}
			l.count++
			l.ids[t] = l.count

			queue = queue[:0]
			queue = append(queue, t)
			for head := 0; head < len(queue); head++ {
				cur := queue[head]
				for _, n := range view.Neighbours(cur, nbuf[:0]) {
					if view.IsWater(n) && l.ids[n] == 0 {
						l.ids[n] = l.count
						queue = append(queue, n)
					}
				}
			}
		}
	}
	return l
}

// ComponentID returns 0 for land, otherwise the tile's water-region id.
func (l *Labels) ComponentID(t terrain.Tile) ID { return l.ids[t] }

// InSameComponent is the derived equality test: true iff both tiles are
// water and share a component id. Two land tiles are never "in the same
// component" even though both carry id 0 — 0 means "not water", not a
// region.
func (l *Labels) InSameComponent(a, b terrain.Tile) bool {
	ia, ib := l.ids[a], l.ids[b]
	return ia != 0 && ia == ib
}

// Count returns the number of distinct water components found.
func (l *Labels) Count() ID { return l.count }
