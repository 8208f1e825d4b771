package collections

import (
	"iter"
)

// TreeProvider is the n-ary view of a tree: a node and its ordered children.
type TreeProvider[T any] interface {
	Node() T
	Children() iter.Seq[TreeProvider[T]]
}

// CountNodes returns the number of nodes reachable from root, root included.
func CountNodes[T any](root TreeProvider[T]) int {
	count := 1
	for child := range root.Children() {
		count += CountNodes(child)
	}
	return count
}
