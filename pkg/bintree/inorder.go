package bintree

import (
	"github.com/mholzen/bintree/pkg/collections"
)

var _ Iterator[int] = (*InOrderIterator[int])(nil)

// InOrderIterator replays the recursive in-order walk with an explicit stack.
// cursor is the next node whose left spine still has to be pushed; after a
// node is yielded the cursor moves to its right child, which is where the
// recursive call would resume.
type InOrderIterator[E any] struct {
	root    *Node[E]
	stack   collections.Stack[*Node[E]]
	cursor  *Node[E]
	started bool
}

func NewInOrderIterator[E any](root *Node[E]) *InOrderIterator[E] {
	return &InOrderIterator[E]{root: root}
}

func (n *Node[E]) InOrderIterator() *InOrderIterator[E] {
	return NewInOrderIterator(n)
}

func (it *InOrderIterator[E]) Restart() {
	it.stack.Clear()
	it.cursor = it.root
	it.started = false
}

func (it *InOrderIterator[E]) Next() (*Node[E], bool) {
	if !it.started {
		it.Restart()
		it.started = true
	}

	for it.cursor != nil {
		it.stack.Push(it.cursor)
		it.cursor = it.cursor.left
	}

	if it.stack.IsEmpty() {
		it.started = false
		return nil, false
	}

	node := it.stack.Pop()
	it.cursor = node.right
	return node, true
}
