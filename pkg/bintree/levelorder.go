package bintree

import (
	"github.com/mholzen/bintree/pkg/collections"
)

var _ Iterator[int] = (*LevelOrderIterator[int])(nil)

// LevelOrderIterator is a breadth-first walk over a FIFO queue. Its storage
// peaks at the width of the widest level.
type LevelOrderIterator[E any] struct {
	root    *Node[E]
	queue   collections.Queue[*Node[E]]
	started bool
}

func NewLevelOrderIterator[E any](root *Node[E]) *LevelOrderIterator[E] {
	return &LevelOrderIterator[E]{root: root}
}

func (n *Node[E]) LevelOrderIterator() *LevelOrderIterator[E] {
	return NewLevelOrderIterator(n)
}

func (it *LevelOrderIterator[E]) Restart() {
	it.queue.Clear()
	it.started = false
}

func (it *LevelOrderIterator[E]) Next() (*Node[E], bool) {
	if !it.started {
		it.queue.Clear()
		if it.root != nil {
			it.queue.Enqueue(it.root)
		}
		it.started = true
	}

	node, ok := it.queue.Dequeue()
	if !ok {
		it.started = false
		return nil, false
	}

	if node.left != nil {
		it.queue.Enqueue(node.left)
	}
	if node.right != nil {
		it.queue.Enqueue(node.right)
	}
	return node, true
}
