// Package queue provides the two priority queues the A* family shares: a
// bucket queue for bounded integer priorities, and a binary min-heap over an
// external score array. Both are built once per A* instance and cleared
// (not reallocated) between queries.
package queue

import "fmt"

// Bucket is an O(1)-amortised priority queue for non-negative integer
// priorities in [0, maxPriority]. Ties within a bucket pop in LIFO
// order (spec.md §4.2), which is what makes the bucket-queue A* variants
// deterministic without an explicit tie-break field.
type Bucket struct {
	maxPriority int
	slots       [][]int32
	minNonEmpty int
	count       int
}

// NewBucket builds a bucket queue whose keys must stay in [0, maxPriority].
// maxPriority must strictly exceed any f-score the caller's heuristic can
// produce for the grid it searches — spec.md §3's bucket-queue invariant.
func NewBucket(maxPriority int) *Bucket {
	b := &Bucket{
		maxPriority: maxPriority,
		slots:       make([][]int32, maxPriority+1),
	}
	b.Clear()
	return b
}

// ErrPriorityOverflow is returned by PushStrict, the strict (non-clamping)
// form of Push, when key lies outside [0, maxPriority]. Push itself never
// fails.
var ErrPriorityOverflow = fmt.Errorf("priority-overflow")

// Push clamps key into [0, maxPriority] and appends node to that bucket.
// Clamping sacrifices optimality, not correctness, per spec.md §4.2.
func (b *Bucket) Push(node int32, key int) {
	b.push(node, b.clamp(key))
}

// PushStrict behaves like Push but returns ErrPriorityOverflow instead of
// clamping when key is out of range. Used where an out-of-range key
// indicates a programmer error in the caller's heuristic rather than a
// normal boundary case.
func (b *Bucket) PushStrict(node int32, key int) error {
	if key < 0 || key > b.maxPriority {
		return ErrPriorityOverflow
	}
	b.push(node, key)
	return nil
}

func (b *Bucket) clamp(key int) int {
	if key < 0 {
		return 0
	}
	if key > b.maxPriority {
		return b.maxPriority
	}
	return key
}

func (b *Bucket) push(node int32, key int) {
	b.slots[key] = append(b.slots[key], node)
	b.count++
	if key < b.minNonEmpty {
		b.minNonEmpty = key
	}
}

// Pop removes and returns the node with the lowest key, breaking ties LIFO
// within the bucket. ok is false if the queue is empty.
func (b *Bucket) Pop() (node int32, ok bool) {
	if b.count == 0 {
		return 0, false
	}
	for b.minNonEmpty <= b.maxPriority && len(b.slots[b.minNonEmpty]) == 0 {
		b.minNonEmpty++
	}
	slot := b.slots[b.minNonEmpty]
	n := len(slot)
	node = slot[n-1]
	b.slots[b.minNonEmpty] = slot[:n-1]
	b.count--
	return node, true
}

func (b *Bucket) Len() int { return b.count }

// Clear resets the queue for reuse across queries without reallocating the
// bucket slices themselves.
func (b *Bucket) Clear() {
	for i := range b.slots {
		if len(b.slots[i]) > 0 {
			b.slots[i] = b.slots[i][:0]
		}
	}
	b.minNonEmpty = 0
	b.count = 0
}
