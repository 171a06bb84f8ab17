package astar

import (
	"github.com/turnforge/tidepath/queue"
	"github.com/turnforge/tidepath/terrain"
)

// Rect is an axis-aligned, inclusive tile rectangle.
type Rect struct {
	MinX, MaxX, MinY, MaxY int
}

func (r Rect) width() int  { return r.MaxX - r.MinX + 1 }
func (r Rect) height() int { return r.MaxY - r.MinY + 1 }
func (r Rect) count() int  { return r.width() * r.height() }

func (r Rect) clamp(x, y int) (int, int) {
	if x < r.MinX {
		x = r.MinX
	} else if x > r.MaxX {
		x = r.MaxX
	}
	if y < r.MinY {
		y = r.MinY
	} else if y > r.MaxY {
		y = r.MaxY
	}
	return x, y
}

// Bounded is a water A* confined to an axis-aligned rectangle, re-indexed
// into a local frame sized to the rectangle rather than the full map
// (spec.md §4.5.3). Its arrays are preallocated to Capacity tiles and
// reused across rectangles of varying size; a rectangle whose tile count
// exceeds Capacity fails with ErrRegionTooLarge rather than silently
// growing, since an unbounded grow would defeat the point of bounding the
// search.
type Bounded struct {
	capacity      int
	weight        int32
	maxIterations int

	stamp       uint32
	openStamp   []uint32
	closedStamp []uint32
	g           []int32
	parent      []int32
	bucket      *queue.Bucket
}

// NewBounded preallocates state for rectangles of up to capacity tiles.
func NewBounded(capacity, weight int) *Bounded {
	b := &Bounded{
		capacity:      capacity,
		weight:        int32(weight),
		maxIterations: DefaultMaxIterations,
		openStamp:     make([]uint32, capacity),
		closedStamp:   make([]uint32, capacity),
		g:             make([]int32, capacity),
		parent:        make([]int32, capacity),
	}
	// Worst-case f-score inside a bounded window: weight * (width+height)
	// plus the longest possible g, bounded by capacity under unit cost.
	b.bucket = queue.NewBucket(int(b.weight)*2*capacityEdge(capacity) + capacity + 1)
	return b
}

// capacityEdge approximates a square window's side length from its tile
// count, generous enough that MaxPriority never clamps in practice.
func capacityEdge(capacity int) int {
	side := 1
	for side*side < capacity {
		side++
	}
	return side + 1
}

// Capacity returns the preallocated tile budget.
func (b *Bounded) Capacity() int { return b.capacity }

// SetMaxIterations overrides DefaultMaxIterations.
func (b *Bounded) SetMaxIterations(n int) { b.maxIterations = n }

// Find searches within rect only. Endpoints outside rect are clamped onto
// its border before the search begins (spec.md §4.5.3). Returns
// ErrRegionTooLarge if rect's tile count exceeds Capacity.
func (b *Bounded) Find(view terrain.View, rect Rect, start, goal terrain.Tile) ([]terrain.Tile, bool, error) {
	return b.FindMulti(view, rect, []terrain.Tile{start}, goal)
}

// FindMulti is the multi-source form of Find.
func (b *Bounded) FindMulti(view terrain.View, rect Rect, starts []terrain.Tile, goal terrain.Tile) ([]terrain.Tile, bool, error) {
	if rect.count() > b.capacity {
		return nil, false, ErrRegionTooLarge
	}
	rw := rect.width()

	toLocal := func(t terrain.Tile) int32 {
		x, y := rect.clamp(view.X(t), view.Y(t))
		return int32((y-rect.MinY)*rw + (x - rect.MinX))
	}
	toGlobal := func(local int32) terrain.Tile {
		lx, ly := int(local)%rw, int(local)/rw
		return view.Ref(rect.MinX+lx, rect.MinY+ly)
	}

	b.advanceStamp()
	b.bucket.Clear()

	goalLocal := toLocal(goal)
	goalX, goalY := int(goalLocal)%rw, int(goalLocal)/rw

	for _, start := range starts {
		sl := toLocal(start)
		b.g[sl] = 0
		b.parent[sl] = NoParent
		b.openStamp[sl] = b.stamp
		b.bucket.Push(sl, int(b.heuristic(sl, rw, goalX, goalY)))
	}

	iterations := 0
	for {
		current, ok := b.bucket.Pop()
		if !ok {
			return nil, false, nil
		}
		if b.closedStamp[current] == b.stamp {
			continue
		}
		b.closedStamp[current] = b.stamp

		if current == goalLocal {
			return b.reconstruct(current, toGlobal), true, nil
		}

		iterations++
		if iterations >= b.maxIterations {
			return nil, false, ErrIterationLimit
		}

		lx, ly := int(current)%rw, int(current)/rw
		gx, gy := rect.MinX+lx, rect.MinY+ly

		b.tryRelax(view, rect, current, gx, gy-1, rw, goalX, goalY)
		b.tryRelax(view, rect, current, gx, gy+1, rw, goalX, goalY)
		b.tryRelax(view, rect, current, gx-1, gy, rw, goalX, goalY)
		b.tryRelax(view, rect, current, gx+1, gy, rw, goalX, goalY)
	}
}

func (b *Bounded) tryRelax(view terrain.View, rect Rect, current int32, nx, ny, rw, goalX, goalY int) {
	if nx < rect.MinX || nx > rect.MaxX || ny < rect.MinY || ny > rect.MaxY {
		return
	}
	if !view.InBounds(nx, ny) {
		return
	}
	n := view.Ref(nx, ny)
	if !view.IsWater(n) {
		return
	}
	local := int32((ny-rect.MinY)*rw + (nx - rect.MinX))
	if b.closedStamp[local] == b.stamp {
		return
	}
	tentativeG := b.g[current] + 1
	if b.openStamp[local] != b.stamp || tentativeG < b.g[local] {
		b.g[local] = tentativeG
		b.parent[local] = current
		b.openStamp[local] = b.stamp
		b.bucket.Push(local, int(tentativeG+b.heuristic(local, rw, goalX, goalY)))
	}
}

func (b *Bounded) heuristic(local int32, rw, goalX, goalY int) int32 {
	lx, ly := int(local)%rw, int(local)/rw
	dx := lx - goalX
	if dx < 0 {
		dx = -dx
	}
	dy := ly - goalY
	if dy < 0 {
		dy = -dy
	}
	return b.weight * int32(dx+dy)
}

func (b *Bounded) reconstruct(goalLocal int32, toGlobal func(int32) terrain.Tile) []terrain.Tile {
	n := 1
	for cur := goalLocal; b.parent[cur] != NoParent; cur = b.parent[cur] {
		n++
	}
	path := make([]terrain.Tile, n)
	idx := n - 1
	for cur := goalLocal; ; cur = b.parent[cur] {
		path[idx] = toGlobal(cur)
		idx--
		if b.parent[cur] == NoParent {
			break
		}
	}
	return path
}

func (b *Bounded) advanceStamp() {
	b.stamp++
	if b.stamp == 0 {
		for i := range b.openStamp {
			b.openStamp[i] = 0
			b.closedStamp[i] = 0
		}
		b.stamp = 1
	}
}
