package product_by_sku

import "github.com/mark3labs/mcp-go/mcp"

const ToolName = "get_product_by_sku"

// Spec returns the MCP tool specification for get_product_by_sku
func Spec() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription(`Retrieves a single product from the store catalog by its SKU.

Returns the product record exactly as the commerce backend provides it (name, price,
stock status, attributes, etc.) as JSON.`),
		mcp.WithString("sku",
			mcp.Required(),
			mcp.Description("The SKU of the product to retrieve"),
		),
		mcp.WithTitleAnnotation("Get Product by SKU"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
