package transform

import "github.com/turnforge/tidepath/terrain"

// ShoreCoercingTransformer substitutes a land endpoint for an adjacent
// water tile before delegating (spec.md §4.8). A land tile with no water
// neighbour cannot be coerced: per spec.md it "fails" — for a single goal
// that means the whole query fails; for a multi-source start set, an
// uncoercible individual start is simply dropped, and only an empty
// resulting start set fails the query outright. The coerced tile is never
// restored on return — the caller treats shore departure/arrival as part
// of the routing contract, not a detail to hide.
type ShoreCoercingTransformer struct {
	view  terrain.View
	inner Pathfinder
}

// NewShoreCoercingTransformer wraps inner with shore coercion over view.
func NewShoreCoercingTransformer(view terrain.View, inner Pathfinder) *ShoreCoercingTransformer {
	return &ShoreCoercingTransformer{view: view, inner: inner}
}

func (s *ShoreCoercingTransformer) FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	coercedGoal, ok := s.coerce(goal)
	if !ok {
		return nil, false
	}

	coercedStarts := make([]terrain.Tile, 0, len(starts))
	for _, t := range starts {
		if c, ok := s.coerce(t); ok {
			coercedStarts = append(coercedStarts, c)
		}
	}
	if len(coercedStarts) == 0 {
		return nil, false
	}

	return s.inner.FindPath(coercedStarts, coercedGoal)
}

func (s *ShoreCoercingTransformer) coerce(t terrain.Tile) (terrain.Tile, bool) {
	if s.view.IsWater(t) {
		return t, true
	}
	var buf [4]terrain.Tile
	for _, n := range s.view.Neighbours(t, buf[:0]) {
		if s.view.IsWater(n) {
			return n, true
		}
	}
	return t, false
}
