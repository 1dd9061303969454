package products_by_ids

import "github.com/mark3labs/mcp-go/mcp"

const ToolName = "get_products_by_ids"

// Spec returns the MCP tool specification for get_products_by_ids
func Spec() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription(`Retrieves several products from the store catalog in one call.

Pass the product IDs as a single comma-separated string (e.g. "12,57,301").
Returns the list of product records as JSON.`),
		mcp.WithString("ids",
			mcp.Required(),
			mcp.Description("Comma-separated list of product IDs"),
		),
		mcp.WithTitleAnnotation("Get Products by IDs"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
