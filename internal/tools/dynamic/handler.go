package dynamic

import (
	"context"

	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// NewDynamicHandler creates a handler function for a dataset tool
func NewDynamicHandler(config *ToolConfig, deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return tools.CallBackend(ctx, deps, config.Name, config.Endpoint())
	}
}
