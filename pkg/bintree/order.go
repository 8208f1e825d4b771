package bintree

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrUnknownOrder = errors.New("unknown traversal order")

type Order int

const (
	InOrderTraversal Order = iota
	PreOrderTraversal
	PostOrderTraversal
	LevelOrderTraversal
)

var orderNames = map[Order]string{
	InOrderTraversal:    "in",
	PreOrderTraversal:   "pre",
	PostOrderTraversal:  "post",
	LevelOrderTraversal: "level",
}

// Orders lists every traversal order in declaration order.
func Orders() []Order {
	return []Order{InOrderTraversal, PreOrderTraversal, PostOrderTraversal, LevelOrderTraversal}
}

// OrderNames lists the canonical names accepted by ParseOrder.
func OrderNames() []string {
	names := make([]string, 0, len(orderNames))
	for _, order := range Orders() {
		names = append(names, order.String())
	}
	return names
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "in", "pre", "post" and "level", case-insensitive, with
// or without an "order" suffix ("in-order", "preorder", "level_order").
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, "order")
	name = strings.TrimRight(name, "-_ ")
	for _, order := range Orders() {
		if name == order.String() {
			return order, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownOrder, s, strings.Join(OrderNames(), ", "))
}

// Iterator returns a fresh iterator over n for order. It is valid on a nil
// receiver, yielding an empty traversal.
func (n *Node[E]) Iterator(order Order) Iterator[E] {
	return NewIterator(n, order)
}

func NewIterator[E any](root *Node[E], order Order) Iterator[E] {
	switch order {
	case PreOrderTraversal:
		return NewPreOrderIterator(root)
	case PostOrderTraversal:
		return NewPostOrderIterator(root)
	case LevelOrderTraversal:
		return NewLevelOrderIterator(root)
	default:
		return NewInOrderIterator(root)
	}
}

func (n *Node[E]) Seq(order Order) iter.Seq[*Node[E]] {
	return All(n.Iterator(order))
}

// Walk runs the eager traversal for order. In, pre and post-order recurse;
// level-order drains its iterator.
func Walk[E any](root *Node[E], order Order, visit Visitor[E]) {
	switch order {
	case PreOrderTraversal:
		PreOrder(root, visit)
	case PostOrderTraversal:
		PostOrder(root, visit)
	case LevelOrderTraversal:
		LevelOrder(root, visit)
	default:
		InOrder(root, visit)
	}
}

var ErrUnknownMode = errors.New("unknown traversal mode")

// Mode selects between the eager recursive walk and the pull iterator.
type Mode int

const (
	Iterative Mode = iota
	Recursive
)

func (m Mode) String() string {
	switch m {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "iterative" and "recursive"; an empty string means
// iterative.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "iterative":
		return Iterative, nil
	case "recursive":
		return Recursive, nil
	}
	return 0, fmt.Errorf("%w: %q (available: %s, %s)", ErrUnknownMode, s, Iterative, Recursive)
}

// Collect returns the nodes of root in order, produced by mode.
func Collect[E any](root *Node[E], order Order, mode Mode) []*Node[E] {
	if mode == Iterative {
		return Drain(root.Iterator(order))
	}
	nodes := []*Node[E]{}
	Walk(root, order, func(node *Node[E]) {
		nodes = append(nodes, node)
	})
	return nodes
}
