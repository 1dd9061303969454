package sales_data

import (
	"github.com/interjar/commerce-mcp/internal/tools/sales"
	"github.com/mark3labs/mcp-go/mcp"
)

const ToolName = "get_sales_data"

// Spec returns the MCP tool specification for get_sales_data
func Spec() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription(`Returns aggregated sales figures (order count, revenue, etc.) for a date range,
optionally filtered by order status.`),
		sales.WithDateRange(),
		sales.WithStatus(),
		mcp.WithTitleAnnotation("Get Sales Data"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
