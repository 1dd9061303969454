package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/interjar/commerce-mcp/internal/analytics"
	"github.com/interjar/commerce-mcp/internal/commerce"
	"github.com/interjar/commerce-mcp/internal/config"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

const (
	serverName = "Interjar MCP Server"

	shutdownTimeout = 10 * time.Second
)

// CommerceMCPServer exposes the commerce backend as MCP tools.
type CommerceMCPServer struct {
	MCPServer       *server.MCPServer
	config          *config.Config
	commerceService commerce.Service
	anService       analytics.Service
	version         string
	tools           []ToolInfo
}

// NewCommerceMCPServer creates the MCP server and registers every enabled tool.
func NewCommerceMCPServer(version string, cfg *config.Config, commerceService commerce.Service, anService analytics.Service) *CommerceMCPServer {
	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &CommerceMCPServer{
		MCPServer:       mcpServer,
		config:          cfg,
		commerceService: commerceService,
		anService:       anService,
		version:         version,
	}
	s.registerTools()

	return s
}

// Tools returns the registered tools in registration order.
func (s *CommerceMCPServer) Tools() []ToolInfo {
	return s.tools
}

// Start serves MCP on the configured transport until ctx is cancelled or the transport fails.
func (s *CommerceMCPServer) Start(ctx context.Context) error {
	if !s.config.HasBackendCredentials() {
		slog.Warn("API_DOMAIN or BEARER_TOKEN is not set, every tool call will return an error")
	}

	s.emitStartupEvent()

	switch s.config.Transport {
	case config.TransportStdio:
		slog.Info("starting MCP server", "transport", config.TransportStdio, "tools", len(s.tools))
		return server.ServeStdio(s.MCPServer)
	default:
		return s.serveHTTP(ctx)
	}
}

func (s *CommerceMCPServer) serveHTTP(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.config.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting MCP server", "transport", config.TransportHTTP, "addr", httpServer.Addr, "path", MCPPath, "tools", len(s.tools))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down MCP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (s *CommerceMCPServer) emitStartupEvent() {
	if s.anService == nil {
		return
	}
	s.anService.EmitEvent(s.anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:           s.version,
		Transport:         s.config.Transport,
		ToolCount:         len(s.tools),
		DatasetCount:      len(s.config.Datasets),
		BackendConfigured: s.config.HasBackendCredentials(),
	}))
}
