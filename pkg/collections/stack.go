package collections

type Stack[T any] struct {
	Items []T
}

func (s Stack[T]) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s Stack[T]) Len() int {
	return len(s.Items)
}

func (s *Stack[T]) Push(item T) {
	s.Items = append(s.Items, item)
}

// Pop removes and returns the top item. It panics on an empty stack.
func (s *Stack[T]) Pop() T {
	last := len(s.Items) - 1
	top := s.Items[last]
	var zero T
	s.Items[last] = zero
	s.Items = s.Items[:last]
	return top
}

// Top returns a pointer to the top item, valid until the next Push or Pop.
func (s *Stack[T]) Top() *T {
	return &s.Items[len(s.Items)-1]
}

// Clear empties the stack and keeps its capacity.
func (s *Stack[T]) Clear() {
	clear(s.Items)
	s.Items = s.Items[:0]
}
