package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/interjar/commerce-mcp/internal/analytics"
	"github.com/interjar/commerce-mcp/internal/commerce"
	"github.com/interjar/commerce-mcp/internal/config"
	"github.com/interjar/commerce-mcp/internal/server"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "commerce-mcp",
		Short:         "MCP server exposing store catalog and sales data as tools",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newToolsCmd())

	return rootCmd
}

// setup loads the configuration, installs the logger and builds the MCP server.
func setup(logOut io.Writer) (*server.CommerceMCPServer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(newLogger(logOut, cfg))

	commerceClient := commerce.NewClient(commerce.Options{
		APIDomain:   cfg.APIDomain,
		BearerToken: cfg.BearerToken,
		UserAgent:   cfg.UserAgent,
		Timeout:     cfg.HTTPTimeout,
	})

	anService := analytics.NewClient(analytics.NewHTTPClient(), cfg.AnalyticsURL)
	if !cfg.Telemetry {
		anService.Disable()
	}

	return server.NewCommerceMCPServer(version, cfg, commerceClient, anService), nil
}

func newLogger(out io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}
