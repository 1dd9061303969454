package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// JSONResult renders a backend payload as pretty-printed JSON text. HTML characters in
// product content are written as-is.
func JSONResult(result any) *mcp.CallToolResult {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return ErrorResult(fmt.Errorf("failed to encode result: %w", err))
	}
	return mcp.NewToolResultText(strings.TrimSuffix(buf.String(), "\n"))
}

// ErrorResult is the single place where a failure becomes tool content.
func ErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}
