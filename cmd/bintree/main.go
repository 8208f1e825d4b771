package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func getApp() *cli.Command {
	return &cli.Command{
		Name:     "bintree",
		Usage:    "Build, show and traverse binary trees",
		Flags:    getGlobalFlags(),
		Before:   setupLoggingFromFlags,
		After:    closeLogFile,
		Commands: getCommands(),
	}
}

func main() {
	if err := getApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
