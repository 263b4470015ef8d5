package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "gen":
		runGen(ctx, os.Args[2:])
	case "list":
		runList(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`swebatch - Reproducible benchmark batch script compiler

Usage:
  swebatch <command> [options]

Commands:
  gen   Compile isolation scripts and a run-all entry point for instance ids
  list  List benchmark instances known to the catalog

Use "swebatch <command> --help" for more information about a command.`)
}
