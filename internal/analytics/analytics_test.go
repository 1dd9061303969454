package analytics_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/interjar/commerce-mcp/internal/analytics"
	analytics_mocks "github.com/interjar/commerce-mcp/internal/analytics/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func okResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(""))}
}

func TestEmitEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("posts event as JSON", func(t *testing.T) {
		httpClient := analytics_mocks.NewMockHTTPClient(ctrl)
		client := analytics.NewClient(httpClient, "https://analytics.example.com/track")

		httpClient.EXPECT().
			Post("https://analytics.example.com/track", "application/json", gomock.Any()).
			DoAndReturn(func(_ string, _ string, body io.Reader) (*http.Response, error) {
				var event analytics.TrackEvent
				require.NoError(t, json.NewDecoder(body).Decode(&event))
				assert.Equal(t, "TOOL_USED", event.Event)
				assert.Equal(t, "get_sales_data", event.Properties["tools_used"])
				assert.NotEmpty(t, event.Properties["distinct_id"])
				return okResponse(), nil
			})

		client.EmitEvent(client.NewToolsEvent("get_sales_data"))
	})

	t.Run("disabled client sends nothing", func(t *testing.T) {
		httpClient := analytics_mocks.NewMockHTTPClient(ctrl)
		client := analytics.NewClient(httpClient, "https://analytics.example.com/track")
		client.Disable()

		client.EmitEvent(client.NewToolsEvent("get_sales_data"))
	})

	t.Run("re-enabled client sends again", func(t *testing.T) {
		httpClient := analytics_mocks.NewMockHTTPClient(ctrl)
		client := analytics.NewClient(httpClient, "https://analytics.example.com/track")
		client.Disable()
		client.Enable()

		httpClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(okResponse(), nil).Times(1)

		client.EmitEvent(client.NewToolsEvent("get_bestsellers"))
	})

	t.Run("post failure is swallowed", func(t *testing.T) {
		httpClient := analytics_mocks.NewMockHTTPClient(ctrl)
		client := analytics.NewClient(httpClient, "https://analytics.example.com/track")

		httpClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		client.EmitEvent(client.NewToolsEvent("get_bestsellers"))
	})

	t.Run("no endpoint only logs", func(t *testing.T) {
		httpClient := analytics_mocks.NewMockHTTPClient(ctrl)
		client := analytics.NewClient(httpClient, "")

		client.EmitEvent(client.NewToolsEvent("get_bestsellers"))
	})
}

func TestEmitEvent_SlowEndpointIsBounded(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client := analytics.NewClient(analytics.NewHTTPClient(), srv.URL)

	start := time.Now()
	client.EmitEvent(client.NewToolsEvent("get_product_by_sku"))

	assert.Less(t, time.Since(start), analytics.SendTimeout+time.Second)
}

func TestNewStartupEvent(t *testing.T) {
	client := analytics.NewClient(nil, "")

	event := client.NewStartupEvent(analytics.StartupEventInfo{
		Version:           "1.0.0",
		Transport:         "http",
		ToolCount:         6,
		DatasetCount:      2,
		BackendConfigured: true,
	})

	assert.Equal(t, "MCP_STARTUP", event.Event)
	assert.Equal(t, 6, event.Properties["tool_count"])
	assert.Equal(t, 2, event.Properties["dataset_count"])
	assert.Equal(t, true, event.Properties["backend_configured"])
	assert.Equal(t, "http", event.Properties["transport"])
}
