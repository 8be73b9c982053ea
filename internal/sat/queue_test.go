package sat

import (
	"reflect"
	"testing"
)

func TestQueue_fifoOrder(t *testing.T) {
	q := NewQueue[int](2)
	for i := 1; i <= 10; i++ {
		q.Push(i)
	}

	for want := 1; want <= 10; want++ {
		if got := q.Pop(); got != want {
			t.Errorf("Pop() = %d, want %d", got, want)
		}
	}
	if !q.IsEmpty() {
		t.Error("queue should be empty after popping everything")
	}
}

func TestQueue_growWithWrappedRing(t *testing.T) {
	q := NewQueue[int](4)

	// Rotate the ring so that the front is in the middle of the
	// backing slice, then fill it up to force a grow.
	q.Push(0)
	q.Push(0)
	q.Pop()
	q.Pop()
	for i := 1; i <= 5; i++ {
		q.Push(i)
	}

	if got, want := q.Slice(), []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Slice() = %v, want %v", got, want)
	}
}

func TestQueue_peekDoesNotRemove(t *testing.T) {
	q := NewQueue[string](1)
	q.Push("front")
	q.Push("back")

	if got := q.Peek(); got != "front" {
		t.Errorf("Peek() = %q, want %q", got, "front")
	}
	if got := q.Size(); got != 2 {
		t.Errorf("Size() after Peek = %d, want 2", got)
	}
	if got := q.Pop(); got != "front" {
		t.Errorf("Pop() after Peek = %q, want %q", got, "front")
	}
}

func TestQueue_popEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pop on an empty queue should panic")
		}
	}()
	NewQueue[int](1).Pop()
}
