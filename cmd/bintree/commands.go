package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mholzen/bintree/pkg/bintree"
	"github.com/mholzen/bintree/pkg/markdown"
	"github.com/mholzen/bintree/pkg/mcp"
	"github.com/mholzen/bintree/pkg/transform"
	"github.com/urfave/cli/v3"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		getTraverseCommand(),
		getShowCommand(),
		getOrdersCommand(),
		getStatsCommand(),
		getMcpCommand(),
		getServeCommand(),
		getVersionCommand(),
	}
}

func getTraverseCommand() *cli.Command {
	return &cli.Command{
		Name:      "traverse",
		Usage:     "Print the nodes of a tree in the given order",
		UsageText: "bintree traverse [<tree>] [options]",
		Description: `Traverse a binary tree given as a level-order list.

Examples:
  bintree traverse '[A,B,C,D]' --order=in          # D B A C
  bintree traverse '[A,B,C,D]' --order=post -m recursive
  echo '1,null,2,3' | bintree traverse --read-stdin --format=json
  bintree traverse '[a,b]' --exec 'echo {} | rev'`,
		Arguments: getTreeArguments(),
		Flags:     getTraverseFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			params, err := getAndValidateTraverseParams(cmd)
			if err != nil {
				return err
			}

			root, err := readTree(cmd)
			if err != nil {
				return err
			}

			if params.transform != "" || params.exec != "" {
				t, err := transform.ResolveTransformer(params.transform, params.exec)
				if err != nil {
					return err
				}
				results := transform.ApplyTree(root, t, false)
				for _, result := range results {
					slog.Debug("transformed value", "result", result.String())
				}
			}

			slog.Info("traversing tree", "order", params.order, "mode", params.mode)
			return printTraversal(outputWriter(cmd), root, params)
		},
	}
}

func getShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a tree as a nested markdown list",
		UsageText: "bintree show [<tree>] [options]",
		Arguments: getTreeArguments(),
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "ordered",
				Usage: "Render a numbered list instead of bullets",
			},
		}, getTreeInputFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := readTree(cmd)
			if err != nil {
				return err
			}
			if root == nil {
				return fmt.Errorf("tree is empty")
			}
			if cmd.Bool("ordered") {
				fmt.Fprintln(outputWriter(cmd), markdown.GenerateNestedOL[*bintree.Node[string]](root, 0))
				return nil
			}
			fmt.Fprintln(outputWriter(cmd), markdown.GenerateNestedUL[*bintree.Node[string]](root, 0))
			return nil
		},
	}
}

func getOrdersCommand() *cli.Command {
	return &cli.Command{
		Name:      "orders",
		Usage:     "List traversal orders",
		UsageText: "bintree orders",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range bintree.OrderNames() {
				fmt.Fprintln(outputWriter(cmd), name)
			}
			return nil
		},
	}
}

func getStatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Show size, height, leaf count and per-node subtree sizes",
		UsageText: "bintree stats [<tree>] [options]",
		Arguments: getTreeArguments(),
		Flags:     append([]cli.Flag{getFormatFlag()}, getTreeInputFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			root, err := readTree(cmd)
			if err != nil {
				return err
			}
			if root == nil {
				return fmt.Errorf("tree is empty")
			}

			return printStats(outputWriter(cmd), root, format)
		},
	}
}

func getMcpCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server over stdio",
		UsageText: "bintree mcp [options]",
		Flags: []cli.Flag{
			getExposeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return mcp.RunServer(ctx, mcp.Config{
				Expose:  cmd.String("expose"),
				Version: version,
			})
		},
	}
}

func getServeCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Run as hosted MCP server (streamable HTTP transport)",
		UsageText: "bintree serve [options]",
		Description: `Start the bintree MCP server over HTTP.

Examples:
  # Start server on port 8080
  bintree serve --addr=:8080

  # Only expose the traverse tool, over HTTPS
  bintree serve --addr=:8443 --tls-cert=cert.pem --tls-key=key.pem --expose=traverse`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":8080",
				Usage:   "Address to listen on (e.g., :8080 or localhost:8080)",
				Sources: cli.EnvVars("BINTREE_ADDR"),
			},
			getExposeFlag(),
			&cli.StringFlag{
				Name:  "tls-cert",
				Usage: "Path to TLS certificate file for HTTPS",
			},
			&cli.StringFlag{
				Name:  "tls-key",
				Usage: "Path to TLS key file for HTTPS",
			},
			&cli.StringFlag{
				Name:  "endpoint-path",
				Value: "/mcp",
				Usage: "Path for the MCP endpoint",
			},
			&cli.BoolFlag{
				Name:  "cors",
				Usage: "Enable CORS for browser-based clients",
			},
			&cli.StringSliceFlag{
				Name:  "cors-origin",
				Usage: "Allowed CORS origins (if empty, allows all when --cors is enabled)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return mcp.RunHTTPServer(ctx, mcp.HTTPConfig{
				Config: mcp.Config{
					Expose:  cmd.String("expose"),
					Version: version,
				},
				Addr:           cmd.String("addr"),
				TLSCertFile:    cmd.String("tls-cert"),
				TLSKeyFile:     cmd.String("tls-key"),
				EndpointPath:   cmd.String("endpoint-path"),
				EnableCORS:     cmd.Bool("cors"),
				AllowedOrigins: cmd.StringSlice("cors-origin"),
			})
		},
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "bintree version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := outputWriter(cmd)
			fmt.Fprintf(w, "bintree version %s\n", version)
			fmt.Fprintf(w, "commit: %s\n", commit)
			fmt.Fprintf(w, "built: %s\n", date)
			return nil
		},
	}
}
