// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the cogenitor client generator as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/upachler/cogenitor"
)

const serverInstructions = `cogenitor MCP server — generates typed Go client libraries from OpenAPI 3.x documents.

Tools:
- generate: produce a typed client (types.go + client.go) from an OAS document and write it to a directory
- parse: inspect an OAS document and report its structure (paths, operations, schemas)

Documents can be provided as a file path or inline content (JSON or YAML).
Generation is all-or-nothing: unsupported constructs (composition keywords,
inline objects, enums, default responses) abort with an error naming the
offending document location.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "cogenitor", Version: cogenitor.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a typed Go client library from an OpenAPI 3.x document. Writes types.go and client.go into output_dir. Fails on constructs outside the supported subset, naming the document location.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI 3.x document and return a structural summary: title, version, paths, operations and component schemas in declaration order.",
	}, handleParse)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

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
