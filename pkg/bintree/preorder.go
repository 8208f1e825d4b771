package bintree

import (
	"github.com/mholzen/bintree/pkg/collections"
)

var _ Iterator[int] = (*PreOrderIterator[int])(nil)

// PreOrderIterator keeps the pending subtrees on a stack. The right child is
// pushed before the left one so the left subtree comes out first.
type PreOrderIterator[E any] struct {
	root    *Node[E]
	stack   collections.Stack[*Node[E]]
	started bool
}

func NewPreOrderIterator[E any](root *Node[E]) *PreOrderIterator[E] {
	return &PreOrderIterator[E]{root: root}
}

func (n *Node[E]) PreOrderIterator() *PreOrderIterator[E] {
	return NewPreOrderIterator(n)
}

func (it *PreOrderIterator[E]) Restart() {
	it.stack.Clear()
	it.started = false
}

func (it *PreOrderIterator[E]) Next() (*Node[E], bool) {
	if !it.started {
		it.stack.Clear()
		if it.root != nil {
			it.stack.Push(it.root)
		}
		it.started = true
	}

	if it.stack.IsEmpty() {
		it.started = false
		return nil, false
	}

	node := it.stack.Pop()
	if node.right != nil {
		it.stack.Push(node.right)
	}
	if node.left != nil {
		it.stack.Push(node.left)
	}
	return node, true
}
