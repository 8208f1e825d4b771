package transform

import (
	"errors"
	"testing"

	"github.com/mholzen/bintree/pkg/bintree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Hello World", "hello world"},
		{"uppercase", "Hello World", "HELLO WORLD"},
		{"capitalize", "élan vital", "Élan vital"},
		{"title", "the quick fox", "The Quick Fox"},
		{"trim", "  padded  ", "padded"},
		{"no-punctuation", "a.b,c!", "abc"},
		{"no-whitespace", "a b\tc\n", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transformer, err := ResolveTransformer(tt.name, "")
			require.NoError(t, err)
			got, err := transformer(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListBuiltins_Sorted(t *testing.T) {
	assert.Equal(t, []string{
		"capitalize", "lowercase", "no-punctuation", "no-whitespace", "title", "trim", "uppercase",
	}, ListBuiltins())
}

func TestResolveTransformer_Errors(t *testing.T) {
	_, err := ResolveTransformer("", "")
	assert.ErrorContains(t, err, "transform name or exec is required")

	_, err = ResolveTransformer("lowercase", "echo {}")
	assert.ErrorContains(t, err, "cannot specify both")

	_, err = ResolveTransformer("reverse", "")
	assert.ErrorContains(t, err, "unknown transform: reverse")
}

func scenarioTree() *bintree.Node[string] {
	root := bintree.NewWithValue("a")
	b := root.InsertLeft("B")
	root.InsertRight("c")
	b.InsertLeft("d")
	return root
}

func TestApplyTree(t *testing.T) {
	root := scenarioTree()

	results := ApplyTree(root, Uppercase, false)

	require.Len(t, results, 3)
	assert.Equal(t, 0, results[0].Position)
	assert.Equal(t, "a", results[0].Original)
	assert.Equal(t, "A", results[0].New)
	assert.True(t, results[0].Applied)
	assert.Equal(t, 2, results[1].Position, "B is already uppercase")
	assert.Equal(t, 3, results[2].Position)

	assert.Equal(t, []string{"A", "B", "D", "C"}, bintree.Values(root.Seq(bintree.PreOrderTraversal)))
}

func TestApplyTree_DryRunLeavesValues(t *testing.T) {
	root := scenarioTree()

	results := ApplyTree(root, Uppercase, true)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.False(t, r.Applied)
	}
	assert.Equal(t, []string{"a", "B", "d", "c"}, bintree.Values(root.Seq(bintree.PreOrderTraversal)))
}

func TestApplyTree_TransformerErrorSkipsNode(t *testing.T) {
	root := scenarioTree()
	failing := func(s string) (string, error) {
		if s == "c" {
			return "", errors.New("boom")
		}
		return s + "!", nil
	}

	results := ApplyTree(root, failing, false)

	require.Len(t, results, 4)
	assert.True(t, results[3].Skipped)
	assert.Equal(t, "boom", results[3].SkipReason)
	assert.Equal(t, "c", root.Right().Value())
	assert.Equal(t, "a!", root.Value())
}

func TestApplyTree_NilRoot(t *testing.T) {
	assert.Empty(t, ApplyTree(nil, Uppercase, false))
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, `#1: "x" → "X"`, Result{Position: 1, Original: "x", New: "X", Applied: true}.String())
	assert.Equal(t, `#1: "x" → (dry-run) "X"`, Result{Position: 1, Original: "x", New: "X"}.String())
	assert.Equal(t, `#2: "y" (skipped: boom)`, Result{Position: 2, Original: "y", Skipped: true, SkipReason: "boom"}.String())
}

func TestShellTransformer(t *testing.T) {
	transformer, err := ResolveTransformer("", "printf '%s!' {}")
	require.NoError(t, err)

	got, err := transformer("node")
	require.NoError(t, err)
	assert.Equal(t, "node!", got)
}

func TestShellTransformer_CommandFailure(t *testing.T) {
	_, err := ShellTransformer("exit 3")("node")
	assert.Error(t, err)
}

func TestApplyTree_ShellTransformer(t *testing.T) {
	root := scenarioTree()

	results := ApplyTree(root, ShellTransformer("echo {} | tr a-z A-Z"), false)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"D", "B", "A", "C"}, bintree.Values(root.Seq(bintree.InOrderTraversal)))
}
