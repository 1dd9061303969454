package dynamic

import (
	"log/slog"

	"github.com/interjar/commerce-mcp/internal/config"
	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolRegistry manages the loading and registration of dataset tools
type ToolRegistry struct {
	datasets []config.Dataset
	configs  []*ToolConfig
}

// NewToolRegistry creates a new tool registry for the configured datasets
func NewToolRegistry(datasets []config.Dataset) *ToolRegistry {
	return &ToolRegistry{
		datasets: datasets,
		configs:  make([]*ToolConfig, 0),
	}
}

// LoadTools builds one tool config per dataset. Datasets whose key is already taken,
// either by a reserved (static) tool name or by an earlier dataset, are skipped.
func (r *ToolRegistry) LoadTools(reserved ...string) {
	taken := make(map[string]bool, len(reserved)+len(r.datasets))
	for _, name := range reserved {
		taken[name] = true
	}

	configs := make([]*ToolConfig, 0, len(r.datasets))
	for _, dataset := range r.datasets {
		if taken[dataset.Key] {
			slog.Warn("skipping dataset tool with duplicate name", "tool", dataset.Key, "dataset", dataset.Name)
			continue
		}
		taken[dataset.Key] = true
		configs = append(configs, NewToolConfig(dataset))
	}

	r.configs = configs
	slog.Info("loaded dataset tools", "count", len(configs))
}

// GetToolCount returns the number of loaded tools
func (r *ToolRegistry) GetToolCount() int {
	return len(r.configs)
}

// GetTools returns all loaded tool configurations
func (r *ToolRegistry) GetTools() []*ToolConfig {
	return r.configs
}

// GetServerTools converts all loaded configs into MCP server tools
func (r *ToolRegistry) GetServerTools(deps *tools.ToolDependencies) []server.ServerTool {
	serverTools := make([]server.ServerTool, 0, len(r.configs))

	for _, config := range r.configs {
		serverTools = append(serverTools, r.buildServerTool(config, deps))
	}

	return serverTools
}

// buildServerTool creates a zero-parameter MCP server tool from a tool config
func (r *ToolRegistry) buildServerTool(config *ToolConfig, deps *tools.ToolDependencies) server.ServerTool {
	mcpTool := mcp.NewTool(config.Name,
		mcp.WithDescription(config.Description()),
		mcp.WithTitleAnnotation(config.Dataset),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)

	slog.Debug("built dataset tool", "name", config.Name, "dataset", config.Dataset)

	return server.ServerTool{
		Tool:    mcpTool,
		Handler: NewDynamicHandler(config, deps),
	}
}
