package bintree

import (
	"github.com/mholzen/bintree/pkg/collections"
)

var _ Iterator[int] = (*PostOrderIterator[int])(nil)

type postOrderFrame[E any] struct {
	node      *Node[E]
	rightDone bool
}

// PostOrderIterator walks with a stack of frames, one per node whose left
// subtree has been entered. A frame's node is yielded once its right subtree
// has been entered too and everything above it on the stack is gone. The
// tree itself is never marked.
type PostOrderIterator[E any] struct {
	root    *Node[E]
	stack   collections.Stack[postOrderFrame[E]]
	cursor  *Node[E]
	started bool
}

func NewPostOrderIterator[E any](root *Node[E]) *PostOrderIterator[E] {
	return &PostOrderIterator[E]{root: root}
}

func (n *Node[E]) PostOrderIterator() *PostOrderIterator[E] {
	return NewPostOrderIterator(n)
}

func (it *PostOrderIterator[E]) Restart() {
	it.stack.Clear()
	it.cursor = nil
	it.started = false
}

func (it *PostOrderIterator[E]) Next() (*Node[E], bool) {
	if !it.started {
		it.stack.Clear()
		it.cursor = it.root
		it.started = true
	}

	for {
		for it.cursor != nil {
			it.stack.Push(postOrderFrame[E]{node: it.cursor})
			it.cursor = it.cursor.left
		}

		if it.stack.IsEmpty() {
			it.started = false
			return nil, false
		}

		top := it.stack.Top()
		if !top.rightDone {
			top.rightDone = true
			if top.node.right != nil {
				it.cursor = top.node.right
				continue
			}
		}

		return it.stack.Pop().node, true
	}
}
