package bintree

import (
	"iter"
)

// Iterator pulls one node at a time from a traversal.
//
// Next returns (nil, false) once, right after the last node, and leaves the
// iterator fresh: the following call starts a new pass from the root.
// Restart returns to the fresh state at any point. An iterator borrows the
// tree; relinking nodes during a pass gives unspecified results, and an
// iterator must not be driven from more than one goroutine.
type Iterator[E any] interface {
	Next() (*Node[E], bool)
	Restart()
}

// All adapts it to a range-over-func sequence. Each range statement starts a
// fresh pass; breaking out early restarts the iterator.
func All[E any](it Iterator[E]) iter.Seq[*Node[E]] {
	return func(yield func(*Node[E]) bool) {
		it.Restart()
		for node, ok := it.Next(); ok; node, ok = it.Next() {
			if !yield(node) {
				it.Restart()
				return
			}
		}
	}
}

// Drain runs a full pass of it and returns the nodes in order.
func Drain[E any](it Iterator[E]) []*Node[E] {
	nodes := []*Node[E]{}
	for node := range All(it) {
		nodes = append(nodes, node)
	}
	return nodes
}
