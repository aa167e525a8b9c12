package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/supra-labs/docsnav/internal/buildinfo"
	"github.com/supra-labs/docsnav/internal/logging"
	"github.com/supra-labs/docsnav/internal/nav"
)

// InfoTool exposes runtime information about the docsnav server and the loaded site.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var InfoTool = mcp.NewTool(
	"info",
	mcp.WithDescription("Get details about the docsnav server, the configured locales and the loaded documentation."),
)

// InfoResponse is the response to the info tool.
type InfoResponse struct {
	// Version is the version of the docsnav server.
	Version string `json:"version"`
	Commit  string `json:"commit"`

	DefaultLocale string   `json:"default_locale"`
	Locales       []string `json:"locales"`
	DocsRoute     string   `json:"docs_route"`

	// TabIDs are the values a page's tab field may take.
	TabIDs []string `json:"tab_ids"`

	// Documents counts the loaded pages across all locales.
	Documents int `json:"documents"`
}

// RegisterInfoTool registers the info tool with the MCP server.
func RegisterInfoTool(s *server.MCPServer, navigator *nav.Navigator) {
	s.AddTool(InfoTool, withToolLogger("info", newInfoHandlerFunc(navigator)))
}

func newInfoHandlerFunc(
	navigator *nav.Navigator,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg := navigator.Config()

		return marshalResponse(ctx, logging.LoggerFromContext(ctx), InfoResponse{
			Version:       buildinfo.Version,
			Commit:        buildinfo.Commit,
			DefaultLocale: cfg.Locales().Default(),
			Locales:       cfg.Locales().All(),
			DocsRoute:     cfg.DocsRoute(),
			TabIDs:        cfg.TabIDs(),
			Documents:     navigator.Documents().Len(),
		})
	}
}
