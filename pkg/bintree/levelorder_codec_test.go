package bintree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FromLevelOrder(t *testing.T) {
	root := FromLevelOrder([]*string{ptr("A"), ptr("B"), ptr("C"), ptr("D")})
	require.NotNil(t, root)

	assert.Equal(t, []string{"D", "B", "A", "C"}, iterativeValues(root, InOrderTraversal))
	assert.Equal(t, "D", root.Left().Left().Value())
	assert.Nil(t, root.Left().Right())
}

func Test_FromLevelOrder_SkipsChildrenOfAbsentNodes(t *testing.T) {
	root := FromLevelOrder([]*int{ptr(1), nil, ptr(2), ptr(3)})
	require.NotNil(t, root)

	assert.Nil(t, root.Left())
	require.NotNil(t, root.Right())
	assert.Equal(t, 3, root.Right().Left().Value())
	assert.Equal(t, []int{1, 3, 2}, iterativeValues(root, InOrderTraversal))
}

func Test_FromLevelOrder_Empty(t *testing.T) {
	assert.Nil(t, FromLevelOrder[int](nil))
	assert.Nil(t, FromLevelOrder([]*int{nil, ptr(1)}))
}

func Test_ToLevelOrder_RoundTrip(t *testing.T) {
	for name, root := range shapes() {
		t.Run(name, func(t *testing.T) {
			values := ToLevelOrder(root)
			rebuilt := FromLevelOrder(values)
			assert.Equal(t, values, ToLevelOrder(rebuilt))
			for _, order := range Orders() {
				assert.Equal(t, iterativeValues(root, order), iterativeValues(rebuilt, order))
			}
		})
	}
}

func Test_ToLevelOrder_TrimsTrailingAbsentChildren(t *testing.T) {
	values := ToLevelOrder(scenarioTree())
	require.Len(t, values, 4)
	assert.Equal(t, "D", *values[3])
	assert.Empty(t, ToLevelOrder[string](nil))
}
