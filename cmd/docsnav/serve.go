package main

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/supra-labs/docsnav/internal/buildinfo"
	"github.com/supra-labs/docsnav/tools"
)

// Server instructions give the agent a short overview of the tools.
const instructions = `
Use the provided tools to browse the documentation site the way its sidebar presents it.
Start with list_tabs, expand a tab with get_sidebar, then read pages with get_page.
Follow the prev/next links returned by get_page to read a tab in order.
`

//nolint:gochecknoglobals // Allows test override for stdio server.
var serveStdio = func(s *server.MCPServer) error { return server.ServeStdio(s) }

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a.logger.Info("Starting docsnav MCP server",
				slog.String("version", buildinfo.Version),
				slog.String("commit", buildinfo.Commit),
				slog.String("built_at", buildinfo.Date))

			n, err := a.navigator(true)
			if err != nil {
				return err
			}

			s := server.NewMCPServer(
				"docsnav",
				buildinfo.Version,
				server.WithToolCapabilities(false),
				server.WithLogging(),
				server.WithRecovery(),
				server.WithInstructions(instructions),
			)
			tools.Register(s, n)

			a.logger.Info("Starting MCP server on stdio",
				slog.Int("pages", n.Documents().Len()))
			if err := serveStdio(s); err != nil {
				return fmt.Errorf("MCP server exited with error: %w", err)
			}
			return nil
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of docsnav",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.stdout, "Version: %s\nCommit: %s\nBuilt At: %s\n",
				buildinfo.Version, buildinfo.Commit, buildinfo.Date)
			return err
		},
	}
}
