// Package sales holds the parameters shared by the order reporting tools.
package sales

import (
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	DefaultDateRange = "today"

	dateRangeDescription = "Date range: 'today', 'yesterday', 'this week', 'last week', 'this month', 'last month', 'ytd', 'last year', or 'YYYY-MM-DD to YYYY-MM-DD'"
	statusDescription    = "Order status filter (e.g., 'complete', 'processing')"
)

// WithDateRange declares the optional date_range parameter.
func WithDateRange() mcp.ToolOption {
	return mcp.WithString("date_range",
		mcp.DefaultString(DefaultDateRange),
		mcp.Description(dateRangeDescription),
	)
}

// WithStatus declares the optional status parameter.
func WithStatus() mcp.ToolOption {
	return mcp.WithString("status",
		mcp.DefaultString(""),
		mcp.Description(statusDescription),
	)
}

// Args reads date_range and status, applying their defaults.
func Args(request mcp.CallToolRequest) (dateRange string, status string) {
	return request.GetString("date_range", DefaultDateRange), request.GetString("status", "")
}

// Query builds the report query string. dateRange is always present; status only when
// it is non-empty.
func Query(dateRange string, status string, extra url.Values) url.Values {
	params := url.Values{}
	params.Set("dateRange", dateRange)
	for key, values := range extra {
		params[key] = values
	}
	if status != "" {
		params.Set("status", status)
	}
	return params
}
