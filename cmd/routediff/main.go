package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/routediff"
	"github.com/erraggy/routediff/cmd/routediff/commands"
	"github.com/erraggy/routediff/internal/mcpserver"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return commands.ExitError
	}

	switch args[0] {
	case "version", "-v", "--version":
		fmt.Printf("routediff %s\n\n%s\n", routediff.Version(), routediff.BuildInfo())
		return commands.ExitOK
	case "help", "-h", "--help":
		printUsage()
		return commands.ExitOK
	case "diff":
		err := commands.HandleDiff(args[1:])
		var exit *commands.ExitCodeError
		if errors.As(err, &exit) {
			return exit.Code
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return commands.ExitError
		}
		return commands.ExitOK
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return commands.ExitError
		}
		return commands.ExitOK
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage()
		return commands.ExitError
	}
}

func printUsage() {
	fmt.Println(`routediff - compare the routes of two OpenAPI documents

Usage:
  routediff <command> [options]

Commands:
  diff        Compare a candidate document with a baseline document
  mcp         Serve the diff_routes tool over MCP (stdio)
  version     Show version information
  help        Show this help message

Examples:
  routediff diff api-v2.yaml api-v1.yaml
  routediff diff --format json --fail-on breaking api-v2.yaml api-v1.yaml
  routediff diff https://example.com/openapi.yaml openapi.yaml

Run 'routediff <command> --help' for more information on a command.`)
}
