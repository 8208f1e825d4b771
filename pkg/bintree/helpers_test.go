package bintree

import (
	"math/rand/v2"
	"strconv"
)

// scenarioTree builds A(B(D, -), C).
func scenarioTree() *Node[string] {
	root := NewWithValue("A")
	b := root.InsertLeft("B")
	root.InsertRight("C")
	b.InsertLeft("D")
	return root
}

func recorder[E any](values *[]E) Visitor[E] {
	return func(node *Node[E]) {
		*values = append(*values, node.Value())
	}
}

func recursiveValues[E any](root *Node[E], order Order) []E {
	values := []E{}
	Walk(root, order, recorder(&values))
	return values
}

func iterativeValues[E any](root *Node[E], order Order) []E {
	values := []E{}
	it := NewIterator(root, order)
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		values = append(values, node.Value())
	}
	return values
}

func ptr[E any](v E) *E {
	return &v
}

// randomTree grows a tree of size nodes by attaching each new node under a
// random existing node, on a random side.
func randomTree(seed uint64, size int) *Node[string] {
	r := rand.New(rand.NewPCG(seed, seed+1))
	root := NewWithValue("0")
	nodes := []*Node[string]{root}
	for i := 1; i < size; i++ {
		parent := nodes[r.IntN(len(nodes))]
		var child *Node[string]
		if r.IntN(2) == 0 {
			child = parent.InsertLeft(strconv.Itoa(i))
		} else {
			child = parent.InsertRight(strconv.Itoa(i))
		}
		nodes = append(nodes, child)
	}
	return root
}

func shapes() map[string]*Node[string] {
	leftChain := NewWithValue("1")
	leftChain.InsertLeft("3")
	leftChain.InsertLeft("2")

	rightChain := NewWithValue("1")
	rightChain.InsertRight("3")
	rightChain.InsertRight("2")

	zigzag := NewWithValue("1")
	zigzag.InsertLeft("2").InsertRight("3").InsertLeft("4").InsertRight("5")

	rightOnlyUnderLeft := NewWithValue("1")
	rightOnlyUnderLeft.InsertLeft("2").InsertRight("4")
	rightOnlyUnderLeft.InsertRight("3")

	full := FromLevelOrder([]*string{ptr("1"), ptr("2"), ptr("3"), ptr("4"), ptr("5"), ptr("6"), ptr("7")})

	return map[string]*Node[string]{
		"single":                NewWithValue("1"),
		"scenario":              scenarioTree(),
		"left chain":            leftChain,
		"right chain":           rightChain,
		"zigzag":                zigzag,
		"right only under left": rightOnlyUnderLeft,
		"full":                  full,
		"random small":          randomTree(1, 12),
		"random medium":         randomTree(7, 60),
		"random large":          randomTree(42, 500),
	}
}
