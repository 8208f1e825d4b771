package bintree

import (
	"fmt"
	"io"
	"os"
)

// Visitor consumes one node during an eager traversal.
type Visitor[E any] func(*Node[E])

// Printer returns a visitor that writes each value to w, preceded by a space.
func Printer[E any](w io.Writer) Visitor[E] {
	return func(node *Node[E]) {
		fmt.Fprintf(w, " %v", node.Value())
	}
}

// Print is the default visitor: it writes " <value>" to stdout.
func Print[E any](node *Node[E]) {
	Printer[E](os.Stdout)(node)
}

func orDefault[E any](visit Visitor[E]) Visitor[E] {
	if visit == nil {
		return Print[E]
	}
	return visit
}

// InOrder visits the left subtree, then root, then the right subtree. A nil
// root performs no visits. A nil visit uses Print.
func InOrder[E any](root *Node[E], visit Visitor[E]) {
	inOrder(root, orDefault(visit))
}

func inOrder[E any](node *Node[E], visit Visitor[E]) {
	if node == nil {
		return
	}
	inOrder(node.left, visit)
	visit(node)
	inOrder(node.right, visit)
}

// PreOrder visits root, then the left subtree, then the right subtree.
func PreOrder[E any](root *Node[E], visit Visitor[E]) {
	if root == nil {
		return
	}
	preOrder(root, orDefault(visit))
}

func preOrder[E any](node *Node[E], visit Visitor[E]) {
	visit(node)
	if node.left != nil {
		preOrder(node.left, visit)
	}
	if node.right != nil {
		preOrder(node.right, visit)
	}
}

// PostOrder visits the left subtree, then the right subtree, then root.
func PostOrder[E any](root *Node[E], visit Visitor[E]) {
	if root == nil {
		return
	}
	postOrder(root, orDefault(visit))
}

func postOrder[E any](node *Node[E], visit Visitor[E]) {
	if node.left != nil {
		postOrder(node.left, visit)
	}
	if node.right != nil {
		postOrder(node.right, visit)
	}
	visit(node)
}

// LevelOrder visits nodes breadth-first, left to right within a level. There
// is no recursive form, so it drains a LevelOrderIterator.
func LevelOrder[E any](root *Node[E], visit Visitor[E]) {
	visit = orDefault(visit)
	it := NewLevelOrderIterator(root)
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		visit(node)
	}
}

func (n *Node[E]) VisitInOrder(visit Visitor[E]) {
	InOrder(n, visit)
}

func (n *Node[E]) VisitPreOrder(visit Visitor[E]) {
	PreOrder(n, visit)
}

func (n *Node[E]) VisitPostOrder(visit Visitor[E]) {
	PostOrder(n, visit)
}

func (n *Node[E]) VisitLevelOrder(visit Visitor[E]) {
	LevelOrder(n, visit)
}
