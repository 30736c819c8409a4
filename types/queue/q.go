package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a generic stack/queue built on ef-ds/deque.
// Stack operations (Push/Pop) and queue operations (Enqueue/Dequeue) are O(1).
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// Stack Operations

// Push adds an item to the top of the stack (stack behavior)
func (q *Q[T]) Push(item T) {
	q.d.PushBack(item)
}

// Pop removes and returns the top item from the stack (stack behavior)
func (q *Q[T]) Pop() (T, bool) {
	v, ok := q.d.PopBack()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Peek returns the top item from the stack without removing it
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.d.Back()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Queue Operations

// Enqueue adds an item to the end of the queue (queue behavior)
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item from the queue (queue behavior)
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// First returns the first item in the queue without removing it
func (q *Q[T]) First() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Utility Methods

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.d = deque.New()
}

// Drain removes and returns all items in queue order
func (q *Q[T]) Drain() []T {
	items := make([]T, 0, q.d.Len())
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		items = append(items, v)
	}
	return items
}
