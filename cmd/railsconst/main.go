package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"

	"github.com/erraggy/railsconst"
	"github.com/erraggy/railsconst/cmd/railsconst/commands"
)

// commandNames lists every subcommand, in the order shown by help.
var commandNames = []string{"to", "normalize", "permit", "batch", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("railsconst v%s\n", railsconst.Version())
		fmt.Printf("commit: %s\n", railsconst.Commit())
		fmt.Printf("built: %s\n", railsconst.BuildTime())
		fmt.Printf("go: %s\n", railsconst.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "to":
		err = commands.HandleTo(os.Args[2:])
	case "normalize":
		err = commands.HandleNormalize(os.Args[2:])
	case "permit":
		err = commands.HandlePermit(os.Args[2:])
	case "batch":
		err = commands.HandleBatch(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within an edit
// distance of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func printUsage() {
	fmt.Print(`railsconst - Rails naming conventions from compact tokens

Usage:
  railsconst <command> [flags] [args]

Commands:
  to          Convert tokens into controller, model, responder, interactor and concern names
  normalize   Fold full-width characters to ASCII and strip whitespace
  permit      Check an action against index, show, create, update, delete
  batch       Convert every token in a YAML manifest
  mcp         Serve the conversions as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  railsconst to controller names
  railsconst to -f klass responder controller_name#index
  railsconst batch tokens.yaml
  railsconst permit show

Run 'railsconst <command> --help' for more information on a command.
`)
}
