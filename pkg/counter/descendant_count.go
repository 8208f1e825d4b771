package counter

import (
	"github.com/mholzen/bintree/pkg/collections"
)

// SubtreeCount pairs a node with the size of the subtree it roots.
type SubtreeCount[T any] struct {
	Node  T
	Count int
	Depth int
}

// CountSubtrees returns, in post-order, every node with its subtree size
// and depth (root at 0).
type depthFrame[T any] struct {
	provider TreeProvider[T]
	depth    int
}

func CountSubtrees[T comparable](root TreeProvider[T]) []SubtreeCount[T] {
	counts := map[T]int{}
	order := []T{}

	TraverseTreePost(root, func(node T, parent *T, last bool) bool {
		counts[node]++
		if parent != nil {
			counts[*parent] += counts[node]
		}
		order = append(order, node)
		return true
	})

	depths := map[T]int{}
	frames := collections.Stack[depthFrame[T]]{}
	frames.Push(depthFrame[T]{provider: root})
	for !frames.IsEmpty() {
		frame := frames.Pop()
		depths[frame.provider.Node()] = frame.depth
		for child := range frame.provider.Children() {
			frames.Push(depthFrame[T]{provider: child, depth: frame.depth + 1})
		}
	}

	result := make([]SubtreeCount[T], 0, len(order))
	for _, node := range order {
		result = append(result, SubtreeCount[T]{Node: node, Count: counts[node], Depth: depths[node]})
	}
	return result
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Size   int `json:"size"`
	Height int `json:"height"`
	Leaves int `json:"leaves"`
}

func ComputeStats[T comparable](root TreeProvider[T]) Stats {
	stats := Stats{}
	for _, c := range CountSubtrees(root) {
		stats.Size++
		if c.Count == 1 {
			stats.Leaves++
		}
		if c.Depth+1 > stats.Height {
			stats.Height = c.Depth + 1
		}
	}
	return stats
}
