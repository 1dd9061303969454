package product_by_sku

import (
	"context"
	"log/slog"

	"github.com/interjar/commerce-mcp/internal/commerce"
	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler returns the tool handler function for get_product_by_sku
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetProductBySKU(ctx, request, deps)
	}
}

func handleGetProductBySKU(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	sku, err := request.RequireString("sku")
	if err != nil {
		slog.Error("error reading arguments", "tool", ToolName, "error", err)
		return tools.ErrorResult(err), nil
	}

	return tools.CallBackend(ctx, deps, ToolName, Endpoint(sku))
}

// Endpoint returns the backend endpoint for a product SKU.
func Endpoint(sku string) string {
	return "mcp/product/" + commerce.EscapeSegment(sku)
}
