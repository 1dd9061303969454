//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/interjar/commerce-mcp/internal/tools/catalog/product_by_sku"
	"github.com/interjar/commerce-mcp/test/integration/helpers"
)

func TestGetProductBySKU(t *testing.T) {
	t.Parallel()
	sku := os.Getenv("INTEGRATION_SKU")
	if sku == "" {
		t.Skip("INTEGRATION_SKU is required")
	}
	tc := helpers.NewTestContext(t)

	res := tc.CallTool(product_by_sku.Handler(tc.Deps), map[string]any{"sku": sku})

	var product map[string]any
	tc.ParseJSONResponse(res, &product)

	if len(product) == 0 {
		t.Fatalf("expected product data for %s", sku)
	}
}
