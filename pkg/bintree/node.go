// Package bintree provides a generic, unbalanced binary tree built by hand
// through InsertLeft and InsertRight, with recursive and iterative traversals
// in in-order, pre-order, post-order and level-order.
//
// A Node is both a tree and the root of every subtree below it. Traversal
// state never lives on the node: each iterator owns its own stack or queue
// and borrows references into the tree, so any number of iterators may run
// over the same tree as long as nobody relinks it meanwhile. Nodes are not
// safe for concurrent mutation.
package bintree

import (
	"fmt"
	"iter"

	"github.com/mholzen/bintree/pkg/collections"
)

type Node[E any] struct {
	value E
	left  *Node[E]
	right *Node[E]
}

// New creates a node holding the zero value of E.
func New[E any]() *Node[E] {
	return &Node[E]{}
}

func NewWithValue[E any](value E) *Node[E] {
	return &Node[E]{value: value}
}

// InsertLeft installs a new left child holding value. The previous left
// child, if any, becomes the left child of the new node. It returns the new
// node so callers can keep building depth-first.
func (n *Node[E]) InsertLeft(value E) *Node[E] {
	child := NewWithValue(value)
	child.left = n.left
	n.left = child
	return child
}

// InsertRight is the mirror of InsertLeft.
func (n *Node[E]) InsertRight(value E) *Node[E] {
	child := NewWithValue(value)
	child.right = n.right
	n.right = child
	return child
}

func (n *Node[E]) Value() E {
	return n.value
}

func (n *Node[E]) SetValue(value E) {
	n.value = value
}

func (n *Node[E]) Left() *Node[E] {
	return n.left
}

func (n *Node[E]) Right() *Node[E] {
	return n.right
}

func (n *Node[E]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *Node[E]) String() string {
	return fmt.Sprint(n.value)
}

// Node and Children make every Node a collections.TreeProvider, left child
// first.
func (n *Node[E]) Node() *Node[E] {
	return n
}

func (n *Node[E]) Children() iter.Seq[collections.TreeProvider[*Node[E]]] {
	return iter.Seq[collections.TreeProvider[*Node[E]]](func(yield func(collections.TreeProvider[*Node[E]]) bool) {
		for _, child := range []*Node[E]{n.left, n.right} {
			if child == nil {
				continue
			}
			if !yield(child) {
				break
			}
		}
	})
}

// Size returns the number of nodes in the subtree rooted at n. A nil
// receiver has size 0.
func (n *Node[E]) Size() int {
	size := 0
	it := NewLevelOrderIterator(n)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		size++
	}
	return size
}

// Height returns the number of levels in the subtree rooted at n: 0 for a
// nil receiver, 1 for a leaf.
func (n *Node[E]) Height() int {
	if n == nil {
		return 0
	}
	height := 0
	level := collections.Queue[*Node[E]]{}
	level.Enqueue(n)
	for !level.IsEmpty() {
		height++
		for range level.Len() {
			node, _ := level.Dequeue()
			if node.left != nil {
				level.Enqueue(node.left)
			}
			if node.right != nil {
				level.Enqueue(node.right)
			}
		}
	}
	return height
}

// Values collects the values of the nodes yielded by seq.
func Values[E any](seq iter.Seq[*Node[E]]) []E {
	values := []E{}
	for node := range seq {
		values = append(values, node.Value())
	}
	return values
}
