package bestsellers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/interjar/commerce-mcp/internal/tools/sales"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler returns the tool handler function for get_bestsellers
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetBestsellers(ctx, request, deps)
	}
}

func handleGetBestsellers(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	dateRange, status := sales.Args(request)
	limit := request.GetFloat("limit", DefaultLimit)

	return tools.CallBackend(ctx, deps, ToolName, Endpoint(dateRange, limit, status))
}

// Endpoint returns the backend endpoint for a bestsellers report.
func Endpoint(dateRange string, limit float64, status string) string {
	params := sales.Query(dateRange, status, url.Values{
		"limit": {strconv.FormatFloat(limit, 'f', -1, 64)},
	})
	return "mcp/bestsellers?" + params.Encode()
}
