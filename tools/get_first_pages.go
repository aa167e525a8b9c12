package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/supra-labs/docsnav/internal/logging"
	"github.com/supra-labs/docsnav/internal/nav"
)

// GetFirstPagesTool exposes the landing page of every tab.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var GetFirstPagesTool = mcp.NewTool(
	"get_first_pages",
	mcp.WithDescription(
		"Maps every documentation tab to the URL of its landing page. "+
			"Tabs without pages map to the documentation base route.",
	),
	localeParam(),
)

type getFirstPagesResponse struct {
	Locale     string            `json:"locale"`
	BaseRoute  string            `json:"base_route"`
	FirstPages map[string]string `json:"first_pages"`
}

// RegisterGetFirstPagesTool registers the get_first_pages tool with the MCP server.
func RegisterGetFirstPagesTool(s *server.MCPServer, navigator *nav.Navigator) {
	s.AddTool(GetFirstPagesTool, withToolLogger("get_first_pages", newGetFirstPagesHandlerFunc(navigator)))
}

func newGetFirstPagesHandlerFunc(
	navigator *nav.Navigator,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		locale := resolveLocale(ctx, logger, navigator, request)

		pages := navigator.FirstPages(locale)
		logger.InfoContext(ctx, "First pages resolved",
			slog.String("locale", locale),
			slog.Int("tab_count", len(pages)))

		return marshalResponse(ctx, logger, getFirstPagesResponse{
			Locale:     locale,
			BaseRoute:  navigator.Config().BaseRoute(),
			FirstPages: pages,
		})
	}
}
