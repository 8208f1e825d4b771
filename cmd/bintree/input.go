package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mholzen/bintree/pkg/bintree"
	"github.com/urfave/cli/v3"
)

// readTree loads the tree from exactly one of the argument, --read-stdin or
// --read-file.
func readTree(cmd *cli.Command) (*bintree.Node[string], error) {
	treeArg := cmd.StringArg("tree")
	readStdin := cmd.Bool("read-stdin")
	readFile := cmd.String("read-file")

	inputSources := 0
	if treeArg != "" {
		inputSources++
	}
	if readStdin {
		inputSources++
	}
	if readFile != "" {
		inputSources++
	}

	if inputSources == 0 {
		return nil, fmt.Errorf("must provide a tree via argument, --read-stdin, or --read-file")
	}
	if inputSources > 1 {
		return nil, fmt.Errorf("cannot use multiple input sources (choose one: argument, --read-stdin, or --read-file)")
	}

	var raw string
	if treeArg != "" {
		raw = treeArg
		slog.Debug("using tree from argument", "tree", raw)
	} else if readStdin {
		slog.Debug("reading tree from stdin")
		stdinBytes, err := io.ReadAll(inputReader(cmd))
		if err != nil {
			return nil, fmt.Errorf("cannot read stdin: %w", err)
		}
		raw = string(stdinBytes)
	} else {
		slog.Debug("reading tree from file", "file", readFile)
		fileBytes, err := os.ReadFile(readFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read file: %w", err)
		}
		raw = string(fileBytes)
	}

	root := bintree.ParseLevelOrder(strings.TrimSpace(raw))
	slog.Info("parsed tree", "size", root.Size(), "height", root.Height())
	return root, nil
}

func inputReader(cmd *cli.Command) io.Reader {
	if reader := cmd.Root().Reader; reader != nil {
		return reader
	}
	return os.Stdin
}

func outputWriter(cmd *cli.Command) io.Writer {
	if writer := cmd.Root().Writer; writer != nil {
		return writer
	}
	return os.Stdout
}
