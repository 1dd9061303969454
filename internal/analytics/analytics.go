package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	eventStartup   = "MCP_STARTUP"
	eventToolsUsed = "TOOL_USED"
)

// SendTimeout bounds a single event POST. Events are sent from the tool-call path, so a
// slow endpoint must not hold a call for the backend timeout.
const SendTimeout = 2 * time.Second

// NewHTTPClient returns the HTTP client used to send events.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: SendTimeout}
}

// TrackEvent is a single usage event.
type TrackEvent struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
}

// StartupEventInfo describes the server configuration reported at startup.
type StartupEventInfo struct {
	Version           string
	Transport         string
	ToolCount         int
	DatasetCount      int
	BackendConfigured bool
}

// Client emits usage events to an HTTP endpoint. With no endpoint configured, events are
// only logged at debug level.
type Client struct {
	httpClient HTTPClient
	endpoint   string
	instanceID string
	enabled    atomic.Bool
}

// NewClient creates an enabled analytics client.
func NewClient(httpClient HTTPClient, endpoint string) *Client {
	c := &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		instanceID: uuid.NewString(),
	}
	c.enabled.Store(true)
	return c
}

func (c *Client) Disable() {
	c.enabled.Store(false)
}

func (c *Client) Enable() {
	c.enabled.Store(true)
}

// EmitEvent sends the event. Failures are logged and never returned to the caller.
func (c *Client) EmitEvent(event TrackEvent) {
	if !c.enabled.Load() {
		return
	}

	if c.endpoint == "" || c.httpClient == nil {
		slog.Debug("analytics event", "event", event.Event, "properties", event.Properties)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("failed to encode analytics event", "event", event.Event, "error", err)
		return
	}

	resp, err := c.httpClient.Post(c.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		slog.Warn("failed to send analytics event", "event", event.Event, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("analytics endpoint rejected event", "event", event.Event, "status", resp.StatusCode)
	}
}

func (c *Client) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return c.newEvent(eventStartup, map[string]any{
		"version":            info.Version,
		"transport":          info.Transport,
		"tool_count":         info.ToolCount,
		"dataset_count":      info.DatasetCount,
		"backend_configured": info.BackendConfigured,
	})
}

func (c *Client) NewToolsEvent(toolsUsed string) TrackEvent {
	return c.newEvent(eventToolsUsed, map[string]any{
		"tools_used": toolsUsed,
	})
}

func (c *Client) newEvent(name string, props map[string]any) TrackEvent {
	props["distinct_id"] = c.instanceID
	props["$insert_id"] = uuid.NewString()
	props["time"] = time.Now().UnixMilli()
	return TrackEvent{Event: name, Properties: props}
}
