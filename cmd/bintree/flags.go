package main

import (
	"fmt"
	"strings"

	"github.com/mholzen/bintree/pkg/bintree"
	"github.com/mholzen/bintree/pkg/transform"
	"github.com/urfave/cli/v3"
)

type TraverseParameters struct {
	order     bintree.Order
	mode      bintree.Mode
	format    string
	transform string
	exec      string
}

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log",
			Value:   "warn",
			Usage:   "Log level: debug, info, warn, error",
			Sources: cli.EnvVars("BINTREE_LOG"),
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "Append logs to this file instead of stderr",
			Sources: cli.EnvVars("BINTREE_LOG_FILE"),
		},
	}
}

func getTreeArguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      "tree",
			UsageText: "<tree> level-order list, e.g. [A,B,C,null,D] (or use --read-stdin or --read-file)",
		},
	}
}

func getTreeInputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "read-stdin",
			Usage: "Read the tree from stdin instead of argument",
		},
		&cli.StringFlag{
			Name:  "read-file",
			Usage: "Read the tree from file instead of argument",
		},
	}
}

func getTraverseFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "order",
			Aliases: []string{"o"},
			Value:   "in",
			Usage:   "Traversal order: " + strings.Join(bintree.OrderNames(), ", "),
			Sources: cli.EnvVars("BINTREE_ORDER"),
		},
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Value:   bintree.Iterative.String(),
			Usage:   "iterative (pull one node at a time) or recursive (visitor callback)",
			Sources: cli.EnvVars("BINTREE_MODE"),
		},
		getFormatFlag(),
		&cli.StringFlag{
			Name:  "transform",
			Usage: "Transform values before traversing: " + strings.Join(transform.ListBuiltins(), ", "),
		},
		&cli.StringFlag{
			Name:  "exec",
			Usage: "Transform values with a shell command before traversing; {} is replaced by the value",
		},
	}
	flags = append(flags, getTreeInputFlags()...)
	return flags
}

func getFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "list",
		Usage:   "Output format: list, json, or markdown",
	}
}

func getExposeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "expose",
		Value: "all",
		Usage: "Tools to expose: all, or comma-separated tool names (traverse, orders, show)",
	}
}

func getAndValidateTraverseParams(cmd *cli.Command) (TraverseParameters, error) {
	format := cmd.String("format")
	if err := validateFormat(format); err != nil {
		return TraverseParameters{}, err
	}

	order, err := bintree.ParseOrder(cmd.String("order"))
	if err != nil {
		return TraverseParameters{}, err
	}

	mode, err := bintree.ParseMode(cmd.String("mode"))
	if err != nil {
		return TraverseParameters{}, err
	}

	return TraverseParameters{
		order:     order,
		mode:      mode,
		format:    format,
		transform: cmd.String("transform"),
		exec:      cmd.String("exec"),
	}, nil
}

func validateFormat(format string) error {
	if format != "list" && format != "json" && format != "markdown" {
		return fmt.Errorf("format must be 'list', 'json', or 'markdown'")
	}
	return nil
}
