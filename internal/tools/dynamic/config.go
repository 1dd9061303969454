package dynamic

import (
	"fmt"

	"github.com/interjar/commerce-mcp/internal/commerce"
	"github.com/interjar/commerce-mcp/internal/config"
)

// ToolConfig describes one dataset tool.
type ToolConfig struct {
	// Name is the tool name, taken from the dataset key
	Name string

	// Dataset is the backend dataset name fetched by the tool
	Dataset string
}

// NewToolConfig builds the tool config for a dataset mapping entry.
func NewToolConfig(dataset config.Dataset) *ToolConfig {
	return &ToolConfig{
		Name:    dataset.Key,
		Dataset: dataset.Name,
	}
}

// Endpoint returns the backend endpoint serving the dataset.
func (c *ToolConfig) Endpoint() string {
	return "mcp/dataset/" + commerce.EscapeSegment(c.Dataset)
}

// Description returns the tool description shown to MCP clients.
func (c *ToolConfig) Description() string {
	return fmt.Sprintf("Fetches the %q dataset from the store backend and returns it as JSON. Takes no parameters.", c.Dataset)
}
