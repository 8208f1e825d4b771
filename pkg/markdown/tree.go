package markdown

import (
	"fmt"
	"strings"

	"github.com/mholzen/bintree/pkg/collections"
)

type NestedListGenerator struct {
	Prefix string
}

func GenerateNestedList[T fmt.Stringer](data collections.TreeProvider[T], indentLevel int, generator NestedListGenerator) string {
	indent := strings.Repeat("  ", indentLevel)

	res := indent + generator.Prefix + data.Node().String()
	for child := range data.Children() {
		res += "\n" + GenerateNestedList(child, indentLevel+1, generator)
	}
	return res
}

func GenerateNestedUL[T fmt.Stringer](data collections.TreeProvider[T], indentLevel int) string {
	generator := NestedListGenerator{Prefix: "- "}
	return GenerateNestedList(data, indentLevel, generator)
}

func GenerateNestedOL[T fmt.Stringer](data collections.TreeProvider[T], indentLevel int) string {
	generator := NestedListGenerator{Prefix: fmt.Sprintf("%d. ", indentLevel+1)}
	return GenerateNestedList(data, indentLevel, generator)
}
