package collections

type Queue[T any] struct {
	items []T
	head  int
}

func (q Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

func (q Queue[T]) Len() int {
	return len(q.items) - q.head
}

func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes the front item. The slot is zeroed so the queue does not
// keep references to items it already handed out.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	front := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return front, true
}

func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}
