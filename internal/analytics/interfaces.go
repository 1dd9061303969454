package analytics

//go:generate mockgen -destination=mocks/mock_analytics.go -package=analytics_mocks github.com/interjar/commerce-mcp/internal/analytics Service,HTTPClient
import (
	"io"
	"net/http"
)

// Service records tool usage events.
type Service interface {
	Disable()
	Enable()
	EmitEvent(event TrackEvent)
	NewStartupEvent(startupEventInfo StartupEventInfo) TrackEvent
	NewToolsEvent(toolsUsed string) TrackEvent
}

// HTTPClient is the subset of *http.Client used to send events.
type HTTPClient interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
}
