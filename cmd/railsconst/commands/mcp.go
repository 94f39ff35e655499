package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/railsconst/internal/mcpserver"
)

// HandleMCP starts the MCP server over stdio and blocks until the client
// disconnects or the process receives SIGINT/SIGTERM.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: railsconst mcp\n\n")
		Writef(output, "Serve railsconst tools over the Model Context Protocol (stdio).\n\n")
		Writef(output, "Environment:\n")
		Writef(output, "  RAILSCONST_INFLECTIONS_FILE   YAML overrides applied to every call\n")
		Writef(output, "  RAILSCONST_DEFAULT_FORMAT     format used by the to tool when none is given\n")
		Writef(output, "  RAILSCONST_BATCH_LIMIT        maximum entries per batch call (default 500)\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
