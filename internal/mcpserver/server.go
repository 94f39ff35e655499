// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes railsconst naming transformations as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/railsconst"
)

const serverInstructions = `railsconst MCP server: converts naming tokens into Rails artifact names.

Tokens: "name" (controller, model, resources), "controller#action" (responder, interactor), "controller#action-model" (model_concern). Actions must be one of index, show, create, update, delete.

Formats: none, with_out_suffix, file_name, file_path, klass, klass_name, table.

Configuration: defaults are configurable via RAILSCONST_* environment variables set in your MCP client config.
- RAILSCONST_INFLECTIONS_FILE: YAML file of plural/singular/uncountable overrides
- RAILSCONST_DEFAULT_FORMAT (default: none): format used by the to tool when none is given
- RAILSCONST_BATCH_LIMIT (default: 500): maximum entries per batch call
- RAILSCONST_MAX_INLINE_SIZE (default: 1048576): maximum inline manifest size in bytes
- RAILSCONST_CACHE_ENABLED (default: true), RAILSCONST_CACHE_MAX_SIZE (default: 16), RAILSCONST_CACHE_TTL (default: 5m): decoded manifest cache`

// nz is the Normalizer shared by all tool handlers.
var nz = newNormalizer(cfg)

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "railsconst", Version: railsconst.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "to",
		Description: "Convert a naming token into a Rails artifact name. kind is one of controller, model, resources, responder, interactor, model_concern, normalize, permit. Set format for one rendering or formats for several at once (e.g. [\"none\", \"klass\", \"file_path\"]). The token is normalized first: full-width letters and digits become ASCII and whitespace is removed.",
	}, handleTo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize",
		Description: "Normalize a naming token: map full-width letters, digits and spaces to ASCII and remove all whitespace.",
	}, handleNormalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "permit",
		Description: "Check whether an action is permitted (index, show, create, update, delete). Returns the allowed list either way.",
	}, handlePermit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "batch",
		Description: "Convert many tokens in one call. Each entry has a token, an optional kind and optional formats; kind and formats default to the top-level values. Optional inflections add plural/singular/uncountable overrides for this call. Instead of inline entries, a YAML manifest may be given by file path or inline content; top-level kind, formats and inflections then override its defaults. Failing entries are reported with an error and do not stop the batch. Entry count is capped by RAILSCONST_BATCH_LIMIT.",
	}, handleBatch)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// formatOrDefault returns the requested format, falling back to cfg.DefaultFormat.
func formatOrDefault(format *string) string {
	if format == nil {
		return cfg.DefaultFormat.String()
	}
	return *format
}
