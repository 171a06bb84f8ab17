package queue

import "testing"

func TestHeapPopsLowestScore(t *testing.T) {
	score := []int32{0, 30, 10, 20}
	h := NewHeap(4, score)
	h.Push(1)
	h.Push(2)
	h.Push(3)

	want := []int32{2, 3, 1}
	for _, w := range want {
		got, ok := h.Pop()
		if !ok || got != w {
			t.Fatalf("Pop() = %d, %v; want %d", got, ok, w)
		}
	}
}

func TestHeapFixReordersAfterScoreChange(t *testing.T) {
	score := []int32{0, 10, 20}
	h := NewHeap(3, score)
	h.Push(1)
	h.Push(2)

	score[2] = 1
	h.Fix(2)

	got, _ := h.Pop()
	if got != 2 {
		t.Fatalf("Pop() after Fix = %d; want 2 (lowered score)", got)
	}
}

func TestHeapTieBreakPrefersHigherG(t *testing.T) {
	score := []int32{0, 5, 5}
	g := []int32{0, 1, 3}
	h := NewHeapTieBreakHighG(3, score, g)
	h.Push(1)
	h.Push(2)

	got, _ := h.Pop()
	if got != 2 {
		t.Fatalf("Pop() = %d; want 2 (higher g wins tie)", got)
	}
}

func TestHeapContainsAndClear(t *testing.T) {
	score := []int32{0, 1, 2}
	h := NewHeap(3, score)
	h.Push(1)
	if !h.Contains(1) {
		t.Fatal("expected Contains(1) after Push")
	}
	h.Clear()
	if h.Contains(1) || h.Len() != 0 {
		t.Fatal("expected empty heap after Clear")
	}
}
