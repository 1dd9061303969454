package products_by_ids

import (
	"context"
	"log/slog"

	"github.com/interjar/commerce-mcp/internal/commerce"
	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler returns the tool handler function for get_products_by_ids
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetProductsByIDs(ctx, request, deps)
	}
}

func handleGetProductsByIDs(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	ids, err := request.RequireString("ids")
	if err != nil {
		slog.Error("error reading arguments", "tool", ToolName, "error", err)
		return tools.ErrorResult(err), nil
	}

	return tools.CallBackend(ctx, deps, ToolName, Endpoint(ids))
}

// Endpoint returns the backend endpoint for a comma-separated ID list.
// The whole list is escaped as one path segment.
func Endpoint(ids string) string {
	return "mcp/products/ids/" + commerce.EscapeSegment(ids)
}
