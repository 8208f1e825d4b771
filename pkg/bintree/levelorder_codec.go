package bintree

import (
	"github.com/mholzen/bintree/pkg/collections"
)

// FromLevelOrder builds a tree from a level-order list in which nil stands
// for an absent child, as in [1,2,3,nil,4]. Children of absent nodes are not
// listed. An empty list or a nil first element gives a nil tree.
func FromLevelOrder[E any](values []*E) *Node[E] {
	if len(values) == 0 || values[0] == nil {
		return nil
	}

	root := NewWithValue(*values[0])
	parents := collections.Queue[*Node[E]]{}
	parents.Enqueue(root)

	i := 1
	for !parents.IsEmpty() && i < len(values) {
		parent, _ := parents.Dequeue()

		if i < len(values) && values[i] != nil {
			parent.left = NewWithValue(*values[i])
			parents.Enqueue(parent.left)
		}
		i++

		if i < len(values) && values[i] != nil {
			parent.right = NewWithValue(*values[i])
			parents.Enqueue(parent.right)
		}
		i++
	}

	return root
}

// ToLevelOrder is the inverse of FromLevelOrder. Trailing nils are trimmed.
func ToLevelOrder[E any](root *Node[E]) []*E {
	values := []*E{}
	if root == nil {
		return values
	}

	pending := collections.Queue[*Node[E]]{}
	pending.Enqueue(root)
	for !pending.IsEmpty() {
		node, _ := pending.Dequeue()
		if node == nil {
			values = append(values, nil)
			continue
		}
		value := node.value
		values = append(values, &value)
		pending.Enqueue(node.left)
		pending.Enqueue(node.right)
	}

	last := len(values)
	for last > 0 && values[last-1] == nil {
		last--
	}
	return values[:last]
}
