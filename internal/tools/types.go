package tools

import (
	"github.com/interjar/commerce-mcp/internal/analytics"
	"github.com/interjar/commerce-mcp/internal/commerce"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	CommerceService  commerce.Service
	AnalyticsService analytics.Service
}
