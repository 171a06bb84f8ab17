// Package stepper implements the stateful stepping facade of spec.md
// §4.9: it caches a computed path and yields it one tile per Next call,
// with dist-threshold early termination, automatic invalidation when the
// destination changes, and recomputation when the caller's reported
// position drifts off the cached path.
package stepper

import "github.com/turnforge/tidepath/terrain"

// Pathfinder is the contract the facade wraps — satisfied directly by
// anything in package transform's Pathfinder family, or by the
// hierarchical/water core itself.
type Pathfinder interface {
	FindPath(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool)
}

// Kind discriminates a Next/FindPath result. Pending exists only because
// spec.md §6 reserves it in the general interface for a future incremental
// search; this package's synchronous implementation never produces it.
type Kind int

const (
	KindNext Kind = iota
	KindComplete
	KindNotFound
	KindPending
)

// Result is what Next returns: Tile is meaningful for KindNext and
// KindComplete, and zero otherwise.
type Result struct {
	Kind Kind
	Tile terrain.Tile
}

func next(t terrain.Tile) Result     { return Result{Kind: KindNext, Tile: t} }
func complete(t terrain.Tile) Result { return Result{Kind: KindComplete, Tile: t} }
func notFound() Result               { return Result{Kind: KindNotFound} }

// Stepper holds at most one cached path, its traversal index, and the
// destination it was computed for — spec.md §3's "the stepping facade
// owns at most one cached path and one cached destination at any time".
type Stepper struct {
	view terrain.View
	pf   Pathfinder

	hasDestination bool
	destination    terrain.Tile

	hasPath bool
	path    []terrain.Tile
	index   int

	hasYielded  bool
	lastYielded terrain.Tile
}

// New builds a Stepper over view (used for the Manhattan dist-threshold
// and from==to checks) wrapping pf.
func New(view terrain.View, pf Pathfinder) *Stepper {
	return &Stepper{view: view, pf: pf}
}

// Next advances the cached path by one tile, recomputing or invalidating
// as spec.md §4.9 describes. dist <= 0 disables the early-termination
// check.
func (s *Stepper) Next(from, to terrain.Tile, dist int) Result {
	if from == to {
		return complete(to)
	}
	if dist > 0 && s.view.ManhattanDist(from, to) <= dist {
		return complete(from)
	}

	if !s.hasDestination || s.destination != to {
		s.clearPath()
		s.destination = to
		s.hasDestination = true
	}

	if s.hasPath && s.hasYielded && from != s.lastYielded {
		// The unit drifted off the cached path: recompute from where it
		// actually is, same as a fresh query.
		s.clearPath()
	}

	if !s.hasPath {
		path, ok := s.pf.FindPath([]terrain.Tile{from}, to)
		if !ok {
			return notFound()
		}
		s.path = path
		s.index = 0
		s.hasPath = true
	}

	if s.index >= len(s.path) {
		return complete(to)
	}
	tile := s.path[s.index]
	s.index++
	s.hasYielded = true
	s.lastYielded = tile

	if s.index >= len(s.path) {
		// The tile just yielded is the last one in the cached path; the
		// caller is expected to arrive at it and be done.
		return next(tile)
	}
	return next(tile)
}

// FindPath bypasses the stepping cache entirely and returns the full
// sequence from from to to, same as calling the wrapped pathfinder
// directly (spec.md §4.9).
func (s *Stepper) FindPath(from, to terrain.Tile) ([]terrain.Tile, bool) {
	return s.pf.FindPath([]terrain.Tile{from}, to)
}

// Invalidate clears the cache unconditionally (spec.md §4.9).
func (s *Stepper) Invalidate() {
	s.clearPath()
	s.hasDestination = false
}

func (s *Stepper) clearPath() {
	s.hasPath = false
	s.path = nil
	s.index = 0
	s.hasYielded = false
}
