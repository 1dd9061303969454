package bestsellers

import (
	"github.com/interjar/commerce-mcp/internal/tools/sales"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	ToolName = "get_bestsellers"

	DefaultLimit = 10
)

// Spec returns the MCP tool specification for get_bestsellers
func Spec() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription(`Lists the best-selling products for a date range.

Optionally filtered by order status. Date range interpretation is done by the store
backend; the value is passed through unchanged.`),
		sales.WithDateRange(),
		mcp.WithNumber("limit",
			mcp.DefaultNumber(DefaultLimit),
			mcp.Description("Number of bestsellers to return"),
		),
		sales.WithStatus(),
		mcp.WithTitleAnnotation("Get Bestsellers"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
