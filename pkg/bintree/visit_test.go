package bintree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RecursiveTraversals_Scenario(t *testing.T) {
	tests := []struct {
		order Order
		want  []string
	}{
		{InOrderTraversal, []string{"D", "B", "A", "C"}},
		{PreOrderTraversal, []string{"A", "B", "D", "C"}},
		{PostOrderTraversal, []string{"D", "B", "C", "A"}},
		{LevelOrderTraversal, []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, recursiveValues(scenarioTree(), tt.order))
		})
	}
}

func Test_RecursiveTraversals_SingleNode(t *testing.T) {
	for _, order := range Orders() {
		assert.Equal(t, []string{"only"}, recursiveValues(NewWithValue("only"), order), order.String())
	}
}

func Test_RecursiveTraversals_NilRootVisitsNothing(t *testing.T) {
	for _, order := range Orders() {
		calls := 0
		Walk(nil, order, func(*Node[string]) { calls++ })
		assert.Equal(t, 0, calls, order.String())
	}
}

func Test_VisitMethods(t *testing.T) {
	root := scenarioTree()
	var in, pre, post, level []string

	root.VisitInOrder(recorder(&in))
	root.VisitPreOrder(recorder(&pre))
	root.VisitPostOrder(recorder(&post))
	root.VisitLevelOrder(recorder(&level))

	assert.Equal(t, []string{"D", "B", "A", "C"}, in)
	assert.Equal(t, []string{"A", "B", "D", "C"}, pre)
	assert.Equal(t, []string{"D", "B", "C", "A"}, post)
	assert.Equal(t, []string{"A", "B", "C", "D"}, level)
}

func Test_Printer_SpaceSeparated(t *testing.T) {
	var out bytes.Buffer
	InOrder(scenarioTree(), Printer[string](&out))
	assert.Equal(t, " D B A C", out.String())
}

func Test_Printer_FormatsNonStringValues(t *testing.T) {
	root := NewWithValue(2)
	root.InsertLeft(1)
	root.InsertRight(3)

	var out bytes.Buffer
	PostOrder(root, Printer[int](&out))
	assert.Equal(t, " 1 3 2", out.String())
}

func Test_NilVisitorFallsBackToPrint(t *testing.T) {
	assert.NotNil(t, orDefault[string](nil))
	assert.NotPanics(t, func() { PreOrder(NewWithValue("x"), nil) })
}
