package astar

import (
	"github.com/turnforge/tidepath/queue"
	"github.com/turnforge/tidepath/terrain"
)

// InlinedWaterSearch is the grid-water A* specialised for throughput
// (spec.md §4.5.2): neighbour enumeration is four inlined bound checks
// against a directly-read terrain byte array instead of going through
// terrain.View and the Adapter interface. Its correctness is identical to
// WaterAdapter run through Search — this exists purely because the hot
// loop of a long-range naval query is dominated by neighbour enumeration,
// and removing the View/Adapter indirection there measurably matters.
type InlinedWaterSearch struct {
	raw           []byte
	width, height int
	weight        int32
	maxIterations int

	stamp       uint32
	openStamp   []uint32
	closedStamp []uint32
	g           []int32
	parent      []int32
	bucket      *queue.Bucket
}

// NewInlinedWaterSearch builds the specialisation over view. ok is false if
// view does not expose its backing byte array via terrain.RawAccessor —
// callers should fall back to WaterAdapter + Search in that case.
func NewInlinedWaterSearch(view terrain.View, weight int) (s *InlinedWaterSearch, ok bool) {
	ra, isRaw := view.(terrain.RawAccessor)
	if !isRaw {
		return nil, false
	}
	w, h := view.Width(), view.Height()
	n := w * h
	s = &InlinedWaterSearch{
		raw:           ra.Raw(),
		width:         w,
		height:        h,
		weight:        int32(weight),
		maxIterations: DefaultMaxIterations,
		openStamp:     make([]uint32, n),
		closedStamp:   make([]uint32, n),
		g:             make([]int32, n),
		parent:        make([]int32, n),
	}
	s.bucket = queue.NewBucket(int(s.weight)*(w+h) + n + 1)
	return s, true
}

// SetMaxIterations overrides DefaultMaxIterations (spec.md §6).
func (s *InlinedWaterSearch) SetMaxIterations(n int) { s.maxIterations = n }

func (s *InlinedWaterSearch) heuristic(n int32, goalX, goalY int32) int32 {
	x, y := n%int32(s.width), n/int32(s.width)
	dx := x - goalX
	if dx < 0 {
		dx = -dx
	}
	dy := y - goalY
	if dy < 0 {
		dy = -dy
	}
	return s.weight * (dx + dy)
}

// Find runs the inlined search from start to goal.
func (s *InlinedWaterSearch) Find(start, goal terrain.Tile) ([]terrain.Tile, bool) {
	return s.FindMulti([]terrain.Tile{start}, goal)
}

// FindMulti is the multi-source inlined search.
func (s *InlinedWaterSearch) FindMulti(starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool) {
	s.advanceStamp()
	s.bucket.Clear()

	goalX, goalY := int32(goal)%int32(s.width), int32(goal)/int32(s.width)
	width := int32(s.width)

	for _, start := range starts {
		st := int32(start)
		s.g[st] = 0
		s.parent[st] = NoParent
		s.openStamp[st] = s.stamp
		s.bucket.Push(st, int(s.heuristic(st, goalX, goalY)))
	}

	iterations := 0
	for {
		current, ok := s.bucket.Pop()
		if !ok {
			return nil, false
		}
		if s.closedStamp[current] == s.stamp {
			continue
		}
		s.closedStamp[current] = s.stamp

		if current == int32(goal) {
			return s.reconstruct(current), true
		}

		iterations++
		if iterations >= s.maxIterations {
			return nil, false
		}

		x, y := current%width, current/width

		if y > 0 {
			s.relax(current, current-width, goalX, goalY)
		}
		if y < int32(s.height)-1 {
			s.relax(current, current+width, goalX, goalY)
		}
		if x > 0 {
			s.relax(current, current-1, goalX, goalY)
		}
		if x < width-1 {
			s.relax(current, current+1, goalX, goalY)
		}
	}
}

func (s *InlinedWaterSearch) relax(current, n, goalX, goalY int32) {
	if s.raw[n]&terrain.LandBit != 0 { // water = bit clear
		return
	}
	if s.closedStamp[n] == s.stamp {
		return
	}
	tentativeG := s.g[current] + 1
	if s.openStamp[n] != s.stamp || tentativeG < s.g[n] {
		s.g[n] = tentativeG
		s.parent[n] = current
		s.openStamp[n] = s.stamp
		s.bucket.Push(n, int(tentativeG+s.heuristic(n, goalX, goalY)))
	}
}

func (s *InlinedWaterSearch) reconstruct(goal int32) []terrain.Tile {
	n := 1
	for cur := goal; s.parent[cur] != NoParent; cur = s.parent[cur] {
		n++
	}
	path := make([]terrain.Tile, n)
	idx := n - 1
	for cur := goal; ; cur = s.parent[cur] {
		path[idx] = terrain.Tile(cur)
		idx--
		if s.parent[cur] == NoParent {
			break
		}
	}
	return path
}

func (s *InlinedWaterSearch) advanceStamp() {
	s.stamp++
	if s.stamp == 0 {
		for i := range s.openStamp {
			s.openStamp[i] = 0
			s.closedStamp[i] = 0
		}
		s.stamp = 1
	}
}
