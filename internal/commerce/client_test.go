package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method  string
	uri     string
	headers http.Header
	body    string
}

func newBackend(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.uri = r.RequestURI
		captured.headers = r.Header.Clone()
		captured.body = string(data)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestClientCall_Success(t *testing.T) {
	srv, captured := newBackend(t, http.StatusOK, `{"sku": "ABC-1", "price": 19.90, "qty": 12345678901234567890}`)

	client := NewClient(Options{
		APIDomain:   srv.URL + "/",
		BearerToken: "secret",
		UserAgent:   "commerce-mcp-test",
	})

	result, err := client.Call(context.Background(), "mcp/product/ABC-1", "", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/rest/all/V1/mcp/product/ABC-1", captured.uri)
	assert.Equal(t, "Bearer secret", captured.headers.Get("Authorization"))
	assert.Equal(t, "application/json", captured.headers.Get("Content-Type"))
	assert.Equal(t, "application/json", captured.headers.Get("Accept"))
	assert.Equal(t, "commerce-mcp-test", captured.headers.Get("User-Agent"))
	assert.Empty(t, captured.body)

	product, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ABC-1", product["sku"])
	assert.Equal(t, json.Number("19.90"), product["price"])
	assert.Equal(t, json.Number("12345678901234567890"), product["qty"])
}

func TestClientCall_KeepsBearerPrefix(t *testing.T) {
	srv, captured := newBackend(t, http.StatusOK, `[]`)

	client := NewClient(Options{APIDomain: srv.URL, BearerToken: "Bearer already"})
	_, err := client.Call(context.Background(), "mcp/salesData", http.MethodGet, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer already", captured.headers.Get("Authorization"))
}

func TestClientCall_EscapedPathIsPreserved(t *testing.T) {
	srv, captured := newBackend(t, http.StatusOK, `[]`)

	client := NewClient(Options{APIDomain: srv.URL, BearerToken: "secret"})
	_, err := client.Call(context.Background(), "mcp/products/ids/"+EscapeSegment("1,2,3"), "", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "/rest/all/V1/mcp/products/ids/1%2C2%2C3", captured.uri)
}

func TestClientCall_ExtraHeaders(t *testing.T) {
	srv, captured := newBackend(t, http.StatusOK, `{}`)

	client := NewClient(Options{APIDomain: srv.URL, BearerToken: "secret", UserAgent: "default-agent"})
	extra := http.Header{}
	extra.Set("X-Store-Code", "eu")
	extra.Set("User-Agent", "forwarded-agent")
	extra.Set("Authorization", "Bearer attacker")

	_, err := client.Call(context.Background(), "mcp/salesData", "", nil, extra)
	require.NoError(t, err)

	assert.Equal(t, "eu", captured.headers.Get("X-Store-Code"))
	assert.Equal(t, "forwarded-agent", captured.headers.Get("User-Agent"))
	assert.Equal(t, "Bearer secret", captured.headers.Get("Authorization"))
}

func TestClientCall_Body(t *testing.T) {
	t.Run("sent for POST", func(t *testing.T) {
		srv, captured := newBackend(t, http.StatusOK, `{"ok": true}`)
		client := NewClient(Options{APIDomain: srv.URL, BearerToken: "secret"})

		_, err := client.Call(context.Background(), "mcp/search", http.MethodPost, map[string]any{"q": "shoes"}, nil)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, captured.method)
		assert.JSONEq(t, `{"q": "shoes"}`, captured.body)
	})

	t.Run("dropped for GET", func(t *testing.T) {
		srv, captured := newBackend(t, http.StatusOK, `{"ok": true}`)
		client := NewClient(Options{APIDomain: srv.URL, BearerToken: "secret"})

		_, err := client.Call(context.Background(), "mcp/search", http.MethodGet, map[string]any{"q": "shoes"}, nil)
		require.NoError(t, err)

		assert.Empty(t, captured.body)
	})
}

func TestClientCall_Errors(t *testing.T) {
	t.Run("missing configuration", func(t *testing.T) {
		srv, captured := newBackend(t, http.StatusOK, `{}`)

		for _, opts := range []Options{
			{APIDomain: srv.URL},
			{BearerToken: "secret"},
		} {
			client := NewClient(opts)
			_, err := client.Call(context.Background(), "mcp/salesData", "", nil, nil)

			var callErr *CallError
			require.True(t, errors.As(err, &callErr))
			assert.Equal(t, ConfigError, callErr.Kind)
			assert.Equal(t, "API call error: Missing required env vars: API_DOMAIN and BEARER_TOKEN", err.Error())
		}
		assert.Empty(t, captured.method, "no request should reach the backend")
	})

	t.Run("backend status", func(t *testing.T) {
		srv, _ := newBackend(t, http.StatusInternalServerError, "oops")
		client := NewClient(Options{APIDomain: srv.URL, BearerToken: "secret"})

		_, err := client.Call(context.Background(), "mcp/salesData", "", nil, nil)

		var callErr *CallError
		require.True(t, errors.As(err, &callErr))
		assert.Equal(t, BackendStatusError, callErr.Kind)
		assert.Equal(t, http.StatusInternalServerError, callErr.StatusCode)
		assert.Equal(t, "API call error: API call failed: 500 Internal Server Error - oops", err.Error())
	})

	t.Run("malformed json", func(t *testing.T) {
		srv, _ := newBackend(t, http.StatusOK, "<html>")
		client := NewClient(Options{APIDomain: srv.URL, BearerToken: "secret"})

		_, err := client.Call(context.Background(), "mcp/salesData", "", nil, nil)

		var callErr *CallError
		require.True(t, errors.As(err, &callErr))
		assert.Equal(t, ParseError, callErr.Kind)
		assert.True(t, strings.HasPrefix(err.Error(), "API call error: invalid JSON response"))
	})

	t.Run("trailing data", func(t *testing.T) {
		srv, _ := newBackend(t, http.StatusOK, `{} {}`)
		client := NewClient(Options{APIDomain: srv.URL, BearerToken: "secret"})

		_, err := client.Call(context.Background(), "mcp/salesData", "", nil, nil)

		var callErr *CallError
		require.True(t, errors.As(err, &callErr))
		assert.Equal(t, ParseError, callErr.Kind)
	})

	t.Run("transport", func(t *testing.T) {
		srv, _ := newBackend(t, http.StatusOK, `{}`)
		url := srv.URL
		srv.Close()

		client := NewClient(Options{APIDomain: url, BearerToken: "secret"})
		_, err := client.Call(context.Background(), "mcp/salesData", "", nil, nil)

		var callErr *CallError
		require.True(t, errors.As(err, &callErr))
		assert.Equal(t, TransportError, callErr.Kind)
		assert.True(t, strings.HasPrefix(err.Error(), "API call error: "))
	})
}

func TestEscapeSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "ABC-123_x.y", want: "ABC-123_x.y"},
		{in: "1,2,3", want: "1%2C2%2C3"},
		{in: "a/b", want: "a%2Fb"},
		{in: "red shirt", want: "red%20shirt"},
		{in: "!~*'()", want: "!~*'()"},
		{in: "a+b&c=d?e#f", want: "a%2Bb%26c%3Dd%3Fe%23f"},
		{in: "ü", want: "%C3%BC"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeSegment(tt.in))
		})
	}
}
