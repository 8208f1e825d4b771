package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Config controls MCP server startup.
type Config struct {
	Expose  string
	Version string
}

// NewServer builds an MCP server carrying the tools selected by cfg.Expose.
func NewServer(cfg Config, opts ...mcpserver.ServerOption) (*mcpserver.MCPServer, error) {
	toolsToEnable, err := ParseExposeList(cfg.Expose)
	if err != nil {
		return nil, err
	}

	serverTools, err := NewToolBuilder().BuildTools(toolsToEnable)
	if err != nil {
		return nil, err
	}

	opts = append([]mcpserver.ServerOption{
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	}, opts...)
	server := mcpserver.NewMCPServer("bintree", cfg.Version, opts...)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, tool.Handler)
	}
	return server, nil
}

// RunServer starts the MCP stdio server with the requested tool set.
func RunServer(ctx context.Context, cfg Config) error {
	server, err := NewServer(cfg)
	if err != nil {
		return err
	}

	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered tool list.
// "all" selects every tool. Individual tools can be referenced either by
// their short name (e.g., "traverse") or full MCP name (e.g., "bintree_traverse").
func ParseExposeList(raw string) ([]string, error) {
	tokenList := strings.Split(raw, ",")

	var tokens []string
	for _, t := range tokenList {
		token := strings.TrimSpace(strings.ToLower(t))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		tokens = []string{"all"}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}

	for _, token := range tokens {
		if token == "all" {
			addSet(allTools)
			continue
		}

		if alias, ok := aliasMap[token]; ok {
			addSet([]string{alias})
			continue
		}

		if _, ok := fullNames[token]; ok {
			addSet([]string{token})
			continue
		}

		return nil, fmt.Errorf("unknown tool in --expose: %s", token)
	}

	return result, nil
}

var (
	allTools = []string{
		ToolTraverse,
		ToolOrders,
		ToolShow,
	}

	aliasMap = map[string]string{
		"traverse": ToolTraverse,
		"orders":   ToolOrders,
		"show":     ToolShow,
	}

	fullNames = func() map[string]struct{} {
		out := make(map[string]struct{}, len(allTools))
		for _, fullName := range allTools {
			out[fullName] = struct{}{}
		}
		return out
	}()
)
