package sales_data

import (
	"context"

	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/interjar/commerce-mcp/internal/tools/sales"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler returns the tool handler function for get_sales_data
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dateRange, status := sales.Args(request)
		return tools.CallBackend(ctx, deps, ToolName, Endpoint(dateRange, status))
	}
}

// Endpoint returns the backend endpoint for a sales report.
func Endpoint(dateRange string, status string) string {
	return "mcp/salesData?" + sales.Query(dateRange, status, nil).Encode()
}
