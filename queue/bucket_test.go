package queue

import "testing"

func TestBucketPopOrdersByKey(t *testing.T) {
	b := NewBucket(10)
	b.Push(1, 5)
	b.Push(2, 1)
	b.Push(3, 3)

	want := []int32{2, 3, 1}
	for _, w := range want {
		got, ok := b.Pop()
		if !ok || got != w {
			t.Fatalf("Pop() = %d, %v; want %d", got, ok, w)
		}
	}
	if _, ok := b.Pop(); ok {
		t.Fatal("expected empty queue")
	}
}

func TestBucketLIFOWithinBucket(t *testing.T) {
	b := NewBucket(10)
	b.Push(1, 4)
	b.Push(2, 4)
	b.Push(3, 4)

	want := []int32{3, 2, 1}
	for _, w := range want {
		got, _ := b.Pop()
		if got != w {
			t.Fatalf("Pop() = %d; want %d (LIFO within bucket)", got, w)
		}
	}
}

func TestBucketClampsOutOfRangeKey(t *testing.T) {
	b := NewBucket(5)
	b.Push(1, 100)
	got, ok := b.Pop()
	if !ok || got != 1 {
		t.Fatalf("clamped push should still be retrievable, got %d %v", got, ok)
	}
}

func TestBucketPushStrictOverflows(t *testing.T) {
	b := NewBucket(5)
	if err := b.PushStrict(1, 6); err != ErrPriorityOverflow {
		t.Fatalf("expected ErrPriorityOverflow, got %v", err)
	}
}

func TestBucketClearResetsState(t *testing.T) {
	b := NewBucket(10)
	b.Push(1, 2)
	b.Push(2, 9)
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("Len() after Clear = %d; want 0", b.Len())
	}
	b.Push(3, 0)
	got, ok := b.Pop()
	if !ok || got != 3 {
		t.Fatalf("Pop() after Clear+Push = %d, %v; want 3, true", got, ok)
	}
}
