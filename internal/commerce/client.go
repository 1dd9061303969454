package commerce

//go:generate mockgen -destination=mocks/mock_commerce.go -package=commerce_mocks github.com/interjar/commerce-mcp/internal/commerce Service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// basePath is appended to the API domain; endpoints are relative to it.
	basePath = "/rest/all/V1/"

	bearerPrefix = "Bearer "
)

var errMissingCredentials = errors.New("Missing required env vars: API_DOMAIN and BEARER_TOKEN")

// Service calls the commerce backend REST API.
type Service interface {
	// Call issues a single request to {APIDomain}/rest/all/V1/{endpoint} and returns the
	// decoded JSON body. method defaults to GET. body is only sent for non-GET methods.
	// extraHeaders override the default headers, except Authorization.
	Call(ctx context.Context, endpoint string, method string, body any, extraHeaders http.Header) (any, error)
}

// Options configures a Client.
type Options struct {
	APIDomain   string
	BearerToken string
	UserAgent   string
	Timeout     time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client is the HTTP implementation of Service.
type Client struct {
	apiDomain   string
	bearerToken string
	userAgent   string
	httpClient  *http.Client
}

// NewClient creates a new commerce backend client. Missing credentials are accepted here
// and reported as a ConfigError on each call.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		apiDomain:   strings.TrimRight(opts.APIDomain, "/"),
		bearerToken: opts.BearerToken,
		userAgent:   opts.UserAgent,
		httpClient:  httpClient,
	}
}

func (c *Client) Call(ctx context.Context, endpoint string, method string, body any, extraHeaders http.Header) (any, error) {
	if c.apiDomain == "" || c.bearerToken == "" {
		return nil, newCallError(ConfigError, errMissingCredentials)
	}

	if method == "" {
		method = http.MethodGet
	}

	var reqBody io.Reader
	if body != nil && method != http.MethodGet {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, newCallError(TransportError, fmt.Errorf("failed to encode request body: %w", err))
		}
		reqBody = bytes.NewReader(payload)
	}

	apiURL := c.apiDomain + basePath + endpoint
	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return nil, newCallError(TransportError, err)
	}
	c.setHeaders(req, extraHeaders)

	slog.Debug("calling commerce backend", "method", method, "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newCallError(TransportError, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newCallError(TransportError, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		callErr := newCallError(BackendStatusError, fmt.Errorf("API call failed: %d %s - %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), string(data)))
		callErr.StatusCode = resp.StatusCode
		return nil, callErr
	}

	result, err := decodeJSON(data)
	if err != nil {
		return nil, newCallError(ParseError, err)
	}

	return result, nil
}

func (c *Client) setHeaders(req *http.Request, extraHeaders http.Header) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	for name, values := range extraHeaders {
		name = http.CanonicalHeaderKey(name)
		if name == "Authorization" {
			continue
		}
		req.Header[name] = append([]string(nil), values...)
	}

	req.Header.Set("Authorization", normalizeToken(c.bearerToken))
}

func normalizeToken(token string) string {
	if strings.HasPrefix(token, bearerPrefix) {
		return token
	}
	return bearerPrefix + token
}

// decodeJSON decodes a single JSON value, keeping numbers as json.Number so they are
// re-encoded exactly as the backend sent them.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var result any
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid JSON response: unexpected data after top-level value")
	}

	return result, nil
}
