package tools

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/interjar/commerce-mcp/internal/commerce"
	"github.com/mark3labs/mcp-go/mcp"
)

// CallBackend runs the shared part of every commerce tool: emit the usage event, issue a
// GET for endpoint with the forwarded headers, and turn the outcome into a tool result.
// The returned Go error is always nil.
func CallBackend(ctx context.Context, deps *ToolDependencies, toolName string, endpoint string) (*mcp.CallToolResult, error) {
	if deps.CommerceService == nil {
		errMessage := "commerce service is not initialized"
		slog.Error(errMessage, "tool", toolName)
		return ErrorResult(errors.New(errMessage)), nil
	}

	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent(toolName))
	}

	slog.Info("calling commerce backend", "tool", toolName, "endpoint", endpoint)

	result, err := deps.CommerceService.Call(ctx, endpoint, http.MethodGet, nil, ForwardedHeaders(ctx))
	if err != nil {
		attrs := []any{"tool", toolName, "error", err}
		var callErr *commerce.CallError
		if errors.As(err, &callErr) {
			attrs = append(attrs, "kind", callErr.Kind.String())
		}
		slog.Error("commerce backend call failed", attrs...)
		return ErrorResult(err), nil
	}

	return JSONResult(result), nil
}
