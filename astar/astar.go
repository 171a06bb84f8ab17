// Package astar implements the A* family spec.md §4.5 describes: a generic
// adapter-driven search reused for water, rail, and abstract-graph queries,
// an inlined grid specialisation for throughput, and a bounded variant whose
// state is sized to a rectangle rather than the whole map.
//
// Every variant shares the stamp-based reset spec.md §3 and §9 describe:
// resetting a Search for a new query is an O(1) counter increment, not an
// O(n) array clear. Node state is only ever meaningful when its stamp
// matches the search's current stamp.
package astar

import (
	"errors"

	"github.com/turnforge/tidepath/queue"
)

// DefaultMaxIterations is the synchronous iteration ceiling spec.md §6 lists
// as a configuration default. There is no cancellation protocol (spec.md
// §5); this is the sole termination guard against a pathological query.
const DefaultMaxIterations = 500_000

// NoParent marks a node with no predecessor — either the search root, or
// "not yet visited".
const NoParent int32 = -1

// ErrIterationLimit and ErrRegionTooLarge are the two failure kinds spec.md
// §7 allows to surface beyond a plain "no path". Both are reported as
// no-path to ordinary callers; Search.LastOutcome lets a caller distinguish
// them for logging, the same "log and return none" policy spec.md §4.7
// describes for segment-refinement failure.
var (
	ErrIterationLimit = errors.New("astar: iteration limit reached")
	ErrRegionTooLarge = errors.New("astar: region exceeds preallocated capacity")
)

// Adapter is the graph contract the generic A* searches. Implementations
// exist for the water grid, the rail graph, the station graph, and the
// abstract gateway graph (see water.go, rail.go, station.go, and package
// gateway). Search is generic over Adapter so the Go compiler devirtualises
// every Adapter call for a concrete adapter type — the idiomatic resolution
// of spec.md §9's "adapter vs. inlined" tension, instead of hand-duplicating
// the algorithm per graph kind.
type Adapter interface {
	// NumNodes bounds every node id the adapter can produce: valid ids are
	// [0, NumNodes()).
	NumNodes() int
	// MaxNeighbours bounds the neighbour buffer Search preallocates.
	MaxNeighbours() int
	// MaxPriority is a strict upper bound on any f-score the adapter's
	// heuristic can produce, used to size a bucket queue. A value <= 0
	// tells Search to use the binary heap instead (spec.md §9's
	// "bucket vs. heap": heaps serve graphs like the abstract graph where
	// edge costs are refined path lengths too hard to bound tightly).
	MaxPriority() int
	// Neighbours appends n's neighbours to dst and returns the extended
	// slice, in the adapter's canonical (stable) order.
	Neighbours(n int32, dst []int32) []int32
	// Cost returns the cost of moving from 'from' to 'to', given the node
	// that preceded 'from' on the current best path (or NoParent). Rail
	// direction-change penalties are the reason prevOfFrom exists.
	Cost(from, to, prevOfFrom int32) int32
	// Heuristic estimates the remaining cost from n to goal. Must be
	// admissible for optimality guarantees to hold; spec.md's water
	// adapter deliberately uses an inadmissible weighted heuristic and
	// documents the tradeoff.
	Heuristic(n, goal int32) int32
}

// Outcome records why the most recent Search call returned no path, purely
// for logging — spec.md §7 treats "no path" as the only outcome visible to
// ordinary callers.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeNoPath
	OutcomeIterationLimit
)

// Search holds the reusable per-query state for one adapter instance: g,
// parent, and stamp arrays sized to the adapter's node count, plus a
// priority queue chosen once at construction. It is not safe for concurrent
// use by two callers (spec.md §5) — each goroutine needing concurrent
// searches should own its own Search.
type Search[A Adapter] struct {
	adapter A

	maxIterations int

	stamp       uint32
	openStamp   []uint32
	closedStamp []uint32
	g           []int32
	fScore      []int32 // scratch for the heap queue; unused by the bucket queue
	parent      []int32

	nbuf []int32

	useHeap bool
	bucket  *queue.Bucket
	heap    *queue.Heap

	lastOutcome Outcome
}

// NewSearch builds a Search over adapter with the default iteration ceiling.
func NewSearch[A Adapter](adapter A) *Search[A] {
	return NewSearchWithLimit(adapter, DefaultMaxIterations)
}

// NewSearchWithLimit is NewSearch with an explicit iteration ceiling —
// spec.md §6's configurable max_iterations.
func NewSearchWithLimit[A Adapter](adapter A, maxIterations int) *Search[A] {
	n := adapter.NumNodes()
	s := &Search[A]{
		adapter:       adapter,
		maxIterations: maxIterations,
		openStamp:     make([]uint32, n),
		closedStamp:   make([]uint32, n),
		g:             make([]int32, n),
		fScore:        make([]int32, n),
		parent:        make([]int32, n),
		nbuf:          make([]int32, 0, adapter.MaxNeighbours()),
	}
	if mp := adapter.MaxPriority(); mp > 0 {
		s.bucket = queue.NewBucket(mp)
	} else {
		s.useHeap = true
		s.heap = queue.NewHeap(n, s.fScore)
	}
	return s
}

// LastOutcome reports why the previous Search call returned no path.
func (s *Search[A]) LastOutcome() Outcome { return s.lastOutcome }

// Find runs A* from a single start to goal.
func (s *Search[A]) Find(start, goal int32) ([]int32, bool) {
	return s.FindMulti([]int32{start}, goal)
}

// FindMulti runs A* from any of starts to goal — spec.md §8 scenario 4's
// multi-source query. The returned path's first element is whichever start
// the search actually expanded from.
func (s *Search[A]) FindMulti(starts []int32, goal int32) ([]int32, bool) {
	s.advanceStamp()
	s.clearQueue()

	for _, start := range starts {
		s.g[start] = 0
		s.parent[start] = NoParent
		s.openStamp[start] = s.stamp
		s.pushNode(start, s.adapter.Heuristic(start, goal))
	}

	iterations := 0
	for {
		current, ok := s.popNode()
		if !ok {
			s.lastOutcome = OutcomeNoPath
			return nil, false
		}
		if s.closedStamp[current] == s.stamp {
			continue
		}
		s.closedStamp[current] = s.stamp

		if current == goal {
			s.lastOutcome = OutcomeFound
			return s.reconstruct(current), true
		}

		iterations++
		if iterations >= s.maxIterations {
			s.lastOutcome = OutcomeIterationLimit
			return nil, false
		}

		s.nbuf = s.adapter.Neighbours(current, s.nbuf[:0])
		prevOfCurrent := NoParent
		if s.parent[current] != NoParent {
			prevOfCurrent = s.parent[current]
		}
		for _, n := range s.nbuf {
			if s.closedStamp[n] == s.stamp {
				continue
			}
			tentativeG := s.g[current] + s.adapter.Cost(current, n, prevOfCurrent)
			if s.openStamp[n] != s.stamp || tentativeG < s.g[n] {
				s.g[n] = tentativeG
				s.parent[n] = current
				s.openStamp[n] = s.stamp
				s.pushNode(n, tentativeG+s.adapter.Heuristic(n, goal))
			}
		}
	}
}

// Reachable returns every node reachable from start with cumulative Cost no
// greater than budget — a bounded Dijkstra relaxation over the same
// adapter, state arrays, and queue as Find. This is the generalisation of
// the teacher's CanMove/GetMovementRange pair (see SPEC_FULL.md's
// "Supplemented features"): instead of summing costs along repeated
// point-to-point searches, one relaxation produces the whole reachable set.
func (s *Search[A]) Reachable(start int32, budget int32) []int32 {
	s.advanceStamp()
	s.clearQueue()

	s.g[start] = 0
	s.parent[start] = NoParent
	s.openStamp[start] = s.stamp
	s.pushNode(start, 0)

	var result []int32
	for {
		current, ok := s.popNode()
		if !ok {
			return result
		}
		if s.closedStamp[current] == s.stamp {
			continue
		}
		s.closedStamp[current] = s.stamp
		result = append(result, current)

		prevOfCurrent := s.parent[current]
		s.nbuf = s.adapter.Neighbours(current, s.nbuf[:0])
		for _, n := range s.nbuf {
			if s.closedStamp[n] == s.stamp {
				continue
			}
			tentativeG := s.g[current] + s.adapter.Cost(current, n, prevOfCurrent)
			if tentativeG > budget {
				continue
			}
			if s.openStamp[n] != s.stamp || tentativeG < s.g[n] {
				s.g[n] = tentativeG
				s.parent[n] = current
				s.openStamp[n] = s.stamp
				s.pushNode(n, tentativeG)
			}
		}
	}
}

func (s *Search[A]) reconstruct(goal int32) []int32 {
	n := 1
	for cur := goal; s.parent[cur] != NoParent; cur = s.parent[cur] {
		n++
	}
	path := make([]int32, n)
	idx := n - 1
	for cur := goal; ; cur = s.parent[cur] {
		path[idx] = cur
		idx--
		if s.parent[cur] == NoParent {
			break
		}
	}
	return path
}

func (s *Search[A]) pushNode(node, f int32) {
	if s.useHeap {
		s.fScore[node] = f
		if s.heap.Contains(node) {
			s.heap.Fix(node)
		} else {
			s.heap.Push(node)
		}
		return
	}
	s.bucket.Push(node, int(f))
}

func (s *Search[A]) popNode() (int32, bool) {
	if s.useHeap {
		return s.heap.Pop()
	}
	return s.bucket.Pop()
}

func (s *Search[A]) clearQueue() {
	if s.useHeap {
		s.heap.Clear()
	} else {
		s.bucket.Clear()
	}
}

// advanceStamp increments the query counter; on uint32 overflow it zeroes
// every stamp array and restarts at 1, per spec.md §3 and §5.
func (s *Search[A]) advanceStamp() {
	s.stamp++
	if s.stamp == 0 {
		for i := range s.openStamp {
			s.openStamp[i] = 0
			s.closedStamp[i] = 0
		}
		s.stamp = 1
	}
}
