package tools

import (
	"context"
	"net/http"
)

type forwardedHeadersKey struct{}

// WithForwardedHeaders returns a context carrying the inbound headers that tool handlers
// pass on to the commerce backend.
func WithForwardedHeaders(ctx context.Context, headers http.Header) context.Context {
	return context.WithValue(ctx, forwardedHeadersKey{}, headers)
}

// ForwardedHeaders returns the headers stored by WithForwardedHeaders, or nil.
func ForwardedHeaders(ctx context.Context) http.Header {
	headers, _ := ctx.Value(forwardedHeadersKey{}).(http.Header)
	return headers
}

// SelectHeaders copies the named headers from src. Authorization is never selected.
func SelectHeaders(src http.Header, names []string) http.Header {
	selected := make(http.Header)
	for _, name := range names {
		name = http.CanonicalHeaderKey(name)
		if name == "Authorization" {
			continue
		}
		if values := src.Values(name); len(values) > 0 {
			selected[name] = append([]string(nil), values...)
		}
	}
	if len(selected) == 0 {
		return nil
	}
	return selected
}
