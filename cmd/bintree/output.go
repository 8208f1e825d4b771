package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mholzen/bintree/pkg/bintree"
	"github.com/mholzen/bintree/pkg/counter"
	"github.com/mholzen/bintree/pkg/markdown"
	"github.com/mholzen/bintree/pkg/mcp"
)

func printJSONToWriter(w io.Writer, response interface{}) error {
	prettyJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format JSON: %w", err)
	}
	fmt.Fprintf(w, "%s\n", prettyJSON)
	return nil
}

// printTraversal writes the traversal of root. The list format is the
// default visit action: each value preceded by a space.
func printTraversal(w io.Writer, root *bintree.Node[string], params TraverseParameters) error {
	switch params.format {
	case "json":
		nodes := bintree.Collect(root, params.order, params.mode)
		values := make([]string, 0, len(nodes))
		for _, node := range nodes {
			values = append(values, node.Value())
		}
		return printJSONToWriter(w, mcp.TraverseResult{
			Tree:   bintree.FormatLevelOrder(root),
			Order:  params.order.String(),
			Mode:   params.mode.String(),
			Values: values,
		})
	case "markdown":
		nodes := bintree.Collect(root, params.order, params.mode)
		output := markdown.GenerateOL(nodes)
		if output != "" {
			fmt.Fprintln(w, output)
		}
		return nil
	default:
		visit := bintree.Printer[string](w)
		if params.mode == bintree.Recursive {
			bintree.Walk(root, params.order, visit)
		} else {
			it := root.Iterator(params.order)
			for node, ok := it.Next(); ok; node, ok = it.Next() {
				visit(node)
			}
		}
		fmt.Fprintln(w)
		return nil
	}
}

type SubtreeReport struct {
	Value string `json:"value"`
	Count int    `json:"count"`
	Depth int    `json:"depth"`
}

type StatsReport struct {
	counter.Stats
	Subtrees []SubtreeReport `json:"subtrees"`
}

// printStats reports the shape of root; subtrees are listed in post-order.
func printStats(w io.Writer, root *bintree.Node[string], format string) error {
	counts := counter.CountSubtrees[*bintree.Node[string]](root)
	report := StatsReport{Stats: counter.ComputeStats[*bintree.Node[string]](root)}
	for _, c := range counts {
		report.Subtrees = append(report.Subtrees, SubtreeReport{Value: c.Node.Value(), Count: c.Count, Depth: c.Depth})
	}

	if format == "json" {
		return printJSONToWriter(w, report)
	}

	bullet := ""
	if format == "markdown" {
		bullet = "- "
	}
	fmt.Fprintf(w, "%ssize: %d\n%sheight: %d\n%sleaves: %d\n", bullet, report.Size, bullet, report.Height, bullet, report.Leaves)
	for _, s := range report.Subtrees {
		fmt.Fprintf(w, "%s%s%s: %d\n", strings.Repeat("  ", s.Depth+1), bullet, s.Value, s.Count)
	}
	return nil
}
