package sat

import (
	"fmt"
	"strings"
)

// Queue is a FIFO queue backed by a power-of-two ring buffer.
type Queue[T any] struct {
	ring  []T
	start int
	size  int
}

// NewQueue returns a new Queue with at least the given capacity.
func NewQueue[T any](capa int) *Queue[T] {
	if capa < 2 {
		capa = 2
	}
	capa = nextPower2(capa)
	return &Queue[T]{ring: make([]T, capa)}
}

func nextPower2(i int) int {
	p := 1
	for p < i {
		p <<= 1
	}
	return p
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *Queue[T]) Size() int {
	return q.size
}

// Push appends elem at the back of the queue.
func (q *Queue[T]) Push(elem T) {
	if q.size == len(q.ring) {
		q.grow()
	}
	q.ring[(q.start+q.size)&(len(q.ring)-1)] = elem
	q.size++
}

func (q *Queue[T]) grow() {
	newRing := make([]T, len(q.ring)*2)
	for i := 0; i < q.size; i++ {
		newRing[i] = q.ring[(q.start+i)&(len(q.ring)-1)]
	}
	q.ring = newRing
	q.start = 0
}

// Peek returns the element at the front of the queue without removing
// it. Peek panics if the queue is empty.
func (q *Queue[T]) Peek() T {
	if q.size == 0 {
		panic("peek on an empty queue")
	}
	return q.ring[q.start]
}

// Pop removes and returns the element at the front of the queue. Pop
// panics if the queue is empty.
func (q *Queue[T]) Pop() T {
	if q.size == 0 {
		panic("pop on an empty queue")
	}
	elem := q.ring[q.start]
	var zero T
	q.ring[q.start] = zero
	q.start = (q.start + 1) & (len(q.ring) - 1)
	q.size--
	return elem
}

// Slice returns the queue's elements in front-to-back order. The
// returned slice is a copy and does not alias the queue's storage.
func (q *Queue[T]) Slice() []T {
	elems := make([]T, q.size)
	for i := range elems {
		elems[i] = q.ring[(q.start+i)&(len(q.ring)-1)]
	}
	return elems
}

func (q *Queue[T]) String() string {
	sb := strings.Builder{}
	sb.WriteString("Queue[")
	for i, e := range q.Slice() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%v", e))
	}
	sb.WriteByte(']')
	return sb.String()
}
