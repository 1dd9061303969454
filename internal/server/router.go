package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/interjar/commerce-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// MCPPath is the only path served; everything else is 404.
const MCPPath = "/mcp"

// Handler returns the HTTP entry point: MCP streamable HTTP on MCPPath, 404 elsewhere.
func (s *CommerceMCPServer) Handler() http.Handler {
	mcpHandler := server.NewStreamableHTTPServer(s.MCPServer,
		server.WithEndpointPath(MCPPath),
		server.WithHTTPContextFunc(s.withForwardedHeaders),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// The streamable transport serves only these; chi routes the rest to notFound.
	r.Method(http.MethodGet, MCPPath, mcpHandler)
	r.Method(http.MethodPost, MCPPath, mcpHandler)
	r.Method(http.MethodDelete, MCPPath, mcpHandler)
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

// withForwardedHeaders stores the configured inbound headers in the tool call context.
func (s *CommerceMCPServer) withForwardedHeaders(ctx context.Context, r *http.Request) context.Context {
	headers := tools.SelectHeaders(r.Header, s.config.ForwardHeaders)

	reqID := middleware.GetReqID(r.Context())
	if reqID != "" && headers.Get(middleware.RequestIDHeader) == "" && s.forwards(middleware.RequestIDHeader) {
		if headers == nil {
			headers = make(http.Header)
		}
		headers.Set(middleware.RequestIDHeader, reqID)
	}

	if headers == nil {
		return ctx
	}
	return tools.WithForwardedHeaders(ctx, headers)
}

func (s *CommerceMCPServer) forwards(name string) bool {
	name = http.CanonicalHeaderKey(name)
	for _, h := range s.config.ForwardHeaders {
		if http.CanonicalHeaderKey(h) == name {
			return true
		}
	}
	return false
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not found")) //nolint:errcheck
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		slog.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
