//go:build integration

package helpers

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/interjar/commerce-mcp/internal/commerce"
	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestContext wires tool handlers to a live commerce backend.
type TestContext struct {
	T    *testing.T
	Ctx  context.Context
	Deps *tools.ToolDependencies
}

// NewTestContext skips the test unless API_DOMAIN and BEARER_TOKEN point at a store.
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	apiDomain, token := os.Getenv("API_DOMAIN"), os.Getenv("BEARER_TOKEN")
	if apiDomain == "" || token == "" {
		t.Skip("API_DOMAIN and BEARER_TOKEN are required for integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	return &TestContext{
		T:   t,
		Ctx: ctx,
		Deps: &tools.ToolDependencies{
			CommerceService: commerce.NewClient(commerce.Options{
				APIDomain:   apiDomain,
				BearerToken: token,
				UserAgent:   os.Getenv("USER_AGENT"),
				Timeout:     20 * time.Second,
			}),
		},
	}
}

// CallTool invokes handler and fails the test on an error result.
func (tc *TestContext) CallTool(handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	tc.T.Helper()

	res, err := handler(tc.Ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}})
	if err != nil {
		tc.T.Fatalf("handler returned error: %v", err)
	}
	if res == nil || len(res.Content) == 0 {
		tc.T.Fatal("handler returned empty result")
	}
	if res.IsError {
		tc.T.Fatalf("tool returned error: %s", res.Content[0].(mcp.TextContent).Text)
	}

	return res
}

// ParseJSONResponse decodes the text content of res into v.
func (tc *TestContext) ParseJSONResponse(res *mcp.CallToolResult, v any) {
	tc.T.Helper()

	text := res.Content[0].(mcp.TextContent).Text
	if err := json.Unmarshal([]byte(text), v); err != nil {
		tc.T.Fatalf("failed to parse tool response: %v\n%s", err, text)
	}
}
