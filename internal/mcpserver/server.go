// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes route comparison as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/routediff"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `routediff MCP server: compares two versions of an OpenAPI document route by route and classifies breaking changes.

Configuration: defaults are configurable via ROUTEDIFF_* environment variables set in your MCP client config.

Key settings:
- ROUTEDIFF_CACHE_ENABLED (default: true): cache parsed documents
- ROUTEDIFF_CACHE_MAX_SIZE (default: 10): maximum cached documents
- ROUTEDIFF_CACHE_TTL (default: 15m): cache entry lifetime
- ROUTEDIFF_MAX_INLINE_SIZE (default: 10MiB): maximum inline content size
- ROUTEDIFF_ALLOW_PRIVATE_IPS (default: false): allow URL inputs on private networks
- ROUTEDIFF_DETAIL_LIMIT (default: 100): default maximum routes per list

Caching: file entries use path+mtime as key and are invalidated when the file changes. Content entries are keyed by hash.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "routediff", Version: routediff.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff_routes",
		Description: "Compare a candidate OpenAPI document with a baseline, route by route. Reports added, deleted and changed routes with per change severity (info, warning, error, critical) and a human readable comment. Changes cover parameters, request bodies, response bodies and response headers. Use breaking_only=true to focus on breaking changes, rules=strict or rules=lenient to change severities, and include_schemas=true to see schema level differences.",
	}, handleDiffRoutes)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// so MCP clients do not learn the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
