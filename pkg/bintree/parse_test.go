package bintree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseLevelOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		in    []string
		level []string
	}{
		{"brackets", "[A,B,C,D]", []string{"D", "B", "A", "C"}, []string{"A", "B", "C", "D"}},
		{"bare", "A, B, C, D", []string{"D", "B", "A", "C"}, []string{"A", "B", "C", "D"}},
		{"leetcode prefix", "root=[1,null,2,3]", []string{"1", "3", "2"}, []string{"1", "2", "3"}},
		{"absent markers", "[1,#,2,NIL,3]", []string{"1", "2", "3"}, []string{"1", "2", "3"}},
		{"empty tokens", "1,,2", []string{"1", "2"}, []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := ParseLevelOrder(tt.input)
			require.NotNil(t, root)
			assert.Equal(t, tt.in, iterativeValues(root, InOrderTraversal))
			assert.Equal(t, tt.level, iterativeValues(root, LevelOrderTraversal))
		})
	}
}

func Test_ParseLevelOrder_Empty(t *testing.T) {
	for _, input := range []string{"", "[]", "  [ ] ", "root=[]", "[null,1]"} {
		assert.Nil(t, ParseLevelOrder(input), input)
	}
}

func Test_FormatLevelOrder(t *testing.T) {
	assert.Equal(t, "[A,B,C,D]", FormatLevelOrder(scenarioTree()))
	assert.Equal(t, "[1,null,2,3]", FormatLevelOrder(ParseLevelOrder("[1,null,2,3]")))
	assert.Equal(t, "[]", FormatLevelOrder(nil))
}

func Test_ParseLevelOrder_QuotedValues(t *testing.T) {
	root := ParseLevelOrder(`[A,"null","",null,"a,b"]`)
	require.NotNil(t, root)
	assert.Equal(t, []string{"A", "null", "", "a,b"}, iterativeValues(root, LevelOrderTraversal))
	assert.Nil(t, root.Left().Left())
	assert.Equal(t, "a,b", root.Left().Right().Value())
}

func Test_FormatLevelOrder_RoundTripsMarkerLikeValues(t *testing.T) {
	root := NewWithValue("A")
	root.InsertLeft("null").InsertLeft("B")

	formatted := FormatLevelOrder(root)
	assert.Equal(t, `[A,"null",null,B]`, formatted)

	parsed := ParseLevelOrder(formatted)
	assert.Equal(t, 3, parsed.Size())
	assert.Equal(t, []string{"B", "null", "A"}, iterativeValues(parsed, InOrderTraversal))
}

func Test_FormatLevelOrder_RoundTrip(t *testing.T) {
	values := []string{"", "#", "nil", "NULL", "a,b", ` padded `, `say "hi"`, "[x]", `back\slash`, "root=1", "plain"}
	root := NewWithValue(values[0])
	node := root
	for _, value := range values[1:] {
		node.InsertRight("leaf")
		node = node.InsertLeft(value)
	}

	parsed := ParseLevelOrder(FormatLevelOrder(root))

	assert.Equal(t, root.Size(), parsed.Size())
	for _, order := range Orders() {
		assert.Equal(t, iterativeValues(root, order), iterativeValues(parsed, order), order.String())
	}
}
