package server

import (
	"log/slog"

	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/interjar/commerce-mcp/internal/tools/catalog/product_by_sku"
	"github.com/interjar/commerce-mcp/internal/tools/catalog/products_by_ids"
	"github.com/interjar/commerce-mcp/internal/tools/dynamic"
	"github.com/interjar/commerce-mcp/internal/tools/sales/bestsellers"
	"github.com/interjar/commerce-mcp/internal/tools/sales/sales_data"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools registers the static commerce tools and one tool per configured dataset.
// Tools are registered even without backend credentials; each call then returns error text.
func (s *CommerceMCPServer) registerTools() {
	deps := &tools.ToolDependencies{
		CommerceService:  s.commerceService,
		AnalyticsService: s.anService,
	}

	toolDefs := s.getAllToolsDefs(deps)

	serverTools := make([]server.ServerTool, 0, len(toolDefs))
	s.tools = make([]ToolInfo, 0, len(toolDefs))
	for _, toolDef := range toolDefs {
		serverTools = append(serverTools, toolDef.definition)
		s.tools = append(s.tools, ToolInfo{
			Name:     toolDef.definition.Tool.Name,
			Category: toolDef.category.String(),
		})
	}

	s.MCPServer.AddTools(serverTools...)
}

type toolCategory int

const (
	catalogCategory toolCategory = 0
	salesCategory   toolCategory = 1
	datasetCategory toolCategory = 2 // Dynamic config-based tools
)

func (c toolCategory) String() string {
	switch c {
	case catalogCategory:
		return "catalog"
	case salesCategory:
		return "sales"
	case datasetCategory:
		return "dataset"
	default:
		return "unknown"
	}
}

// ToolInfo describes a registered tool.
type ToolInfo struct {
	Name     string
	Category string
}

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *CommerceMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	toolDefs := []ToolDefinition{
		// Catalog
		{
			category: catalogCategory,
			definition: server.ServerTool{
				Tool:    product_by_sku.Spec(),
				Handler: product_by_sku.Handler(deps),
			},
		},
		{
			category: catalogCategory,
			definition: server.ServerTool{
				Tool:    products_by_ids.Spec(),
				Handler: products_by_ids.Handler(deps),
			},
		},
		// Sales
		{
			category: salesCategory,
			definition: server.ServerTool{
				Tool:    bestsellers.Spec(),
				Handler: bestsellers.Handler(deps),
			},
		},
		{
			category: salesCategory,
			definition: server.ServerTool{
				Tool:    sales_data.Spec(),
				Handler: sales_data.Handler(deps),
			},
		},
	}

	reserved := make([]string, 0, len(toolDefs))
	for _, toolDef := range toolDefs {
		reserved = append(reserved, toolDef.definition.Tool.Name)
	}

	toolDefs = append(toolDefs, s.loadDynamicTools(deps, reserved)...)

	return toolDefs
}

// loadDynamicTools builds one zero-parameter tool per configured dataset
func (s *CommerceMCPServer) loadDynamicTools(deps *tools.ToolDependencies, reserved []string) []ToolDefinition {
	if len(s.config.Datasets) == 0 {
		slog.Info("no datasets configured")
		return []ToolDefinition{}
	}

	registry := dynamic.NewToolRegistry(s.config.Datasets)
	registry.LoadTools(reserved...)

	serverTools := registry.GetServerTools(deps)
	toolDefs := make([]ToolDefinition, 0, len(serverTools))

	for _, serverTool := range serverTools {
		toolDefs = append(toolDefs, ToolDefinition{
			category:   datasetCategory,
			definition: serverTool,
		})
	}

	return toolDefs
}
