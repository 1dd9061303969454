package products_by_ids_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/interjar/commerce-mcp/internal/analytics"
	analytics_mocks "github.com/interjar/commerce-mcp/internal/analytics/mocks"
	commerce_mocks "github.com/interjar/commerce-mcp/internal/commerce/mocks"
	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/interjar/commerce-mcp/internal/tools/catalog/products_by_ids"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name string
		ids  string
		want string
	}{
		{name: "single id", ids: "12", want: "mcp/products/ids/12"},
		{name: "commas are encoded", ids: "12,57,301", want: "mcp/products/ids/12%2C57%2C301"},
		{name: "spaces and slashes stay in one segment", ids: "1, 2/3", want: "mcp/products/ids/1%2C%202%2F3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, products_by_ids.Endpoint(tt.ids))
		})
	}
}

func TestGetProductsByIDsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get_products_by_ids").Return(analytics.TrackEvent{Event: "TOOL_USED"})
	analyticsService.EXPECT().EmitEvent(analytics.TrackEvent{Event: "TOOL_USED"})

	mockCommerce := commerce_mocks.NewMockService(ctrl)
	mockCommerce.EXPECT().
		Call(gomock.Any(), "mcp/products/ids/1%2C2", http.MethodGet, nil, gomock.Any()).
		Return([]any{map[string]any{"id": 1}, map[string]any{"id": 2}}, nil)

	deps := &tools.ToolDependencies{CommerceService: mockCommerce, AnalyticsService: analyticsService}
	result, err := products_by_ids.Handler(deps)(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: map[string]any{"ids": "1,2"}},
	})

	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.JSONEq(t, `[{"id": 1}, {"id": 2}]`, result.Content[0].(mcp.TextContent).Text)
}
