package counter

import (
	"github.com/mholzen/bintree/pkg/collections"
)

type TreeProvider[T any] = collections.TreeProvider[T]

// TraverseTreePost calls yield for every node after all of its children,
// passing the node's parent (nil for the root) and whether the node is the
// last child of that parent. Returning false from yield stops the walk.
func TraverseTreePost[T any](node TreeProvider[T], yield func(T, *T, bool) bool) {
	traverseTreePost(node, nil, true, yield)
}

func traverseTreePost[T any](node TreeProvider[T], parent *T, last bool, yield func(T, *T, bool) bool) bool {
	children := []TreeProvider[T]{}
	for child := range node.Children() {
		children = append(children, child)
	}

	self := node.Node()
	for i, child := range children {
		isLast := (i == len(children)-1)
		if !traverseTreePost(child, &self, isLast, yield) {
			return false
		}
	}
	return yield(self, parent, last)
}
