package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mholzen/bintree/pkg/bintree"
	"github.com/mholzen/bintree/pkg/markdown"
	"github.com/mholzen/bintree/pkg/transform"
)

const (
	ToolTraverse = "bintree_traverse"
	ToolOrders   = "bintree_orders"
	ToolShow     = "bintree_show"
)

// ToolBuilder wires tree operations into MCP tool handlers.
type ToolBuilder struct{}

func NewToolBuilder() ToolBuilder {
	return ToolBuilder{}
}

// BuildTools constructs the requested tools in the order provided.
func (b ToolBuilder) BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolTraverse: b.buildTraverseTool,
		ToolOrders:   b.buildOrdersTool,
		ToolShow:     b.buildShowTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

// TraverseResult is the payload of the traverse tool.
type TraverseResult struct {
	Tree   string   `json:"tree"`
	Order  string   `json:"order"`
	Mode   string   `json:"mode"`
	Values []string `json:"values"`
}

// Traverse parses tree, applies the optional named transform and returns the
// values in the requested order, produced by the requested mode.
func Traverse(tree, orderName, modeName, transformName string) (TraverseResult, error) {
	order, err := bintree.ParseOrder(orderName)
	if err != nil {
		return TraverseResult{}, err
	}
	mode, err := bintree.ParseMode(modeName)
	if err != nil {
		return TraverseResult{}, err
	}

	root := bintree.ParseLevelOrder(tree)
	if transformName != "" {
		t, err := transform.ResolveTransformer(transformName, "")
		if err != nil {
			return TraverseResult{}, err
		}
		transform.ApplyTree(root, t, false)
	}

	return TraverseResult{
		Tree:   bintree.FormatLevelOrder(root),
		Order:  order.String(),
		Mode:   mode.String(),
		Values: bintree.Values(slices.Values(bintree.Collect(root, order, mode))),
	}, nil
}

func (b ToolBuilder) buildTraverseTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolTraverse,
			mcptypes.WithDescription("Traverse a binary tree given as a level-order list and return the visited values"),
			mcptypes.WithString("tree",
				mcptypes.Description("Level-order list, e.g. [A,B,C,null,D] (null marks an absent child)"),
				mcptypes.Required(),
			),
			mcptypes.WithString("order",
				mcptypes.Description("Traversal order: "+strings.Join(bintree.OrderNames(), ", ")),
				mcptypes.DefaultString("in"),
			),
			mcptypes.WithString("mode",
				mcptypes.Description("iterative (pull one node at a time) or recursive (visitor callback)"),
				mcptypes.DefaultString(bintree.Iterative.String()),
			),
			mcptypes.WithString("transform",
				mcptypes.Description("Optional value transform: "+strings.Join(transform.ListBuiltins(), ", ")),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			tree := strings.TrimSpace(req.GetString("tree", ""))
			if tree == "" {
				return mcptypes.NewToolResultError("tree is required"), nil
			}

			result, err := Traverse(
				tree,
				req.GetString("order", "in"),
				req.GetString("mode", ""),
				req.GetString("transform", ""),
			)
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot traverse tree", err), nil
			}

			slog.Debug("traversed tree", "order", result.Order, "mode", result.Mode, "count", len(result.Values))
			return mcptypes.NewToolResultJSON(result)
		},
	}
}

func (b ToolBuilder) buildOrdersTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolOrders,
			mcptypes.WithDescription("List the supported traversal orders"),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return mcptypes.NewToolResultJSON(map[string]any{"orders": bintree.OrderNames()})
		},
	}
}

func (b ToolBuilder) buildShowTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolShow,
			mcptypes.WithDescription("Render a binary tree given as a level-order list as a nested markdown list"),
			mcptypes.WithString("tree",
				mcptypes.Description("Level-order list, e.g. [A,B,C,null,D]"),
				mcptypes.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			root := bintree.ParseLevelOrder(req.GetString("tree", ""))
			if root == nil {
				return mcptypes.NewToolResultError("tree is empty"), nil
			}
			return mcptypes.NewToolResultText(markdown.GenerateNestedUL[*bintree.Node[string]](root, 0)), nil
		},
	}
}
