// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oasfill engine as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasfill"
)

const serverInstructions = `oasfill MCP server — derives concrete, fuzzable request instances from OpenAPI documents.

Tools:
- operations: list the path+method combinations of a spec with their declared parameters
- expand: fill an operation's parameters with synthetic values and expand it across caller-supplied candidate values
- repair: report the malformed parameter declarations the engine would normalize before filling

Synthesis is deterministic: the same spec always yields the same fill values, so expanded operations are stable across calls. Expansion cardinality is the product of the candidate-value list sizes; keep value lists small.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasfill", Version: oasfill.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "operations",
		Description: "List the operations of an OpenAPI document. Returns path, method, and a summary of each declared parameter (name, location, type, required).",
	}, handleOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "expand",
		Description: "Fill the parameters of an operation with synthetic values and expand it across caller-supplied candidate values. Select one operation with path and method, or omit both to expand every operation. include_optional also fills parameters that are not required. values assigns candidate value lists per (path, parameter); multiple values multiply the operation into one instance per combination.",
	}, handleExpand)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "repair",
		Description: "Report the malformed parameter declarations of an OpenAPI document that the engine normalizes before filling: formats restating or invalid on string types, and string defaults on numeric formats.",
	}, handleRepair)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
