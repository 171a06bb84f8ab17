// Package spatial provides the bounded spatial queries the hierarchical
// pathfinder and the shore-coercion transformer need: nearest-match BFS and
// Manhattan-nearest reduction over a tile grid (spec.md §4.3).
package spatial

import "github.com/turnforge/tidepath/terrain"

// Predicate reports whether a tile satisfies some caller-defined condition.
type Predicate func(t terrain.Tile) bool

// Traversable is a Predicate restricting BFS expansion; BFSNearest only
// steps onto tiles traversable(t) accepts.
type Traversable func(t terrain.Tile) bool

// BFSNearest runs a traversable-respecting BFS from 'from', expanding only
// tiles traversable accepts, and returns the first visited tile for which
// match holds. It halts once the frontier's distance from 'from' exceeds
// maxDist. ok is false if no match is found within maxDist.
func BFSNearest(view terrain.View, from terrain.Tile, maxDist int, traversable Traversable, match Predicate) (result terrain.Tile, ok bool) {
	if match(from) {
		return from, true
	}

	type queued struct {
		tile terrain.Tile
		dist int
	}

	visited := map[terrain.Tile]bool{from: true}
	queue := []queued{{from, 0}}
	nbuf := make([]terrain.Tile, 0, 4)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.dist >= maxDist {
			continue
		}
		for _, n := range view.Neighbours(cur.tile, nbuf[:0]) {
			if visited[n] || !traversable(n) {
				continue
			}
			visited[n] = true
			if match(n) {
				return n, true
			}
			queue = append(queue, queued{n, cur.dist + 1})
		}
	}
	return 0, false
}

// BFSWithinDistance returns every tile reachable from 'from' through
// traversable tiles within maxDist steps, used to enumerate candidate
// shores. The result never includes 'from' itself unless traversable(from)
// and a cycle brings BFS back to it (which a simple 4-connected grid BFS
// never does), so callers that want 'from' included should add it
// themselves.
func BFSWithinDistance(view terrain.View, from terrain.Tile, maxDist int, traversable Traversable) []terrain.Tile {
	type queued struct {
		tile terrain.Tile
		dist int
	}

	visited := map[terrain.Tile]bool{from: true}
	queue := []queued{{from, 0}}
	var result []terrain.Tile
	nbuf := make([]terrain.Tile, 0, 4)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.dist >= maxDist {
			continue
		}
		for _, n := range view.Neighbours(cur.tile, nbuf[:0]) {
			if visited[n] || !traversable(n) {
				continue
			}
			visited[n] = true
			result = append(result, n)
			queue = append(queue, queued{n, cur.dist + 1})
		}
	}
	return result
}

// ManhattanNearest is a linear reduction over tiles, returning the one
// closest to target by Manhattan distance; ties break by first-seen (i.e.
// the earliest tile in tiles among those tied for minimum).
func ManhattanNearest(view terrain.View, tiles []terrain.Tile, target terrain.Tile) (result terrain.Tile, ok bool) {
	best := -1
	for _, t := range tiles {
		d := view.ManhattanDist(t, target)
		if best == -1 || d < best {
			best = d
			result = t
			ok = true
		}
	}
	return result, ok
}
