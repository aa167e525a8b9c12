package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/supra-labs/docsnav/internal/logging"
	"github.com/supra-labs/docsnav/internal/nav"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// ListTabsTool exposes the configured documentation tabs.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var ListTabsTool = mcp.NewTool(
	"list_tabs",
	mcp.WithDescription(
		"Lists the documentation tabs of the site with their configured sections and landing pages. "+
			"Use get_sidebar to see the pages inside a tab.",
	),
	localeParam(),
)

type tabSummary struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Icon        string               `json:"icon,omitempty"`
	FirstPage   string               `json:"first_page"`
	Sections    []siteconfig.Section `json:"sections"`
}

type listTabsResponse struct {
	Locale           string       `json:"locale"`
	AvailableLocales []string     `json:"available_locales"`
	Tabs             []tabSummary `json:"tabs"`
	Count            int          `json:"count"`
}

// RegisterListTabsTool registers the list_tabs tool with the MCP server.
func RegisterListTabsTool(s *server.MCPServer, navigator *nav.Navigator) {
	s.AddTool(ListTabsTool, withToolLogger("list_tabs", newListTabsHandlerFunc(navigator)))
}

func newListTabsHandlerFunc(
	navigator *nav.Navigator,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "Starting list_tabs operation")

		locale := resolveLocale(ctx, logger, navigator, request)
		firstPages := navigator.FirstPages(locale)

		tabs := navigator.Tabs(locale)
		summaries := make([]tabSummary, 0, len(tabs))
		for _, tab := range tabs {
			summaries = append(summaries, tabSummary{
				ID:          tab.ID,
				Title:       tab.Title,
				Description: tab.Description,
				Icon:        tab.Icon,
				FirstPage:   firstPages[tab.ID],
				Sections:    tab.Sections,
			})
		}

		logger.InfoContext(ctx, "Tabs listed successfully",
			slog.String("locale", locale),
			slog.Int("tab_count", len(summaries)))

		return marshalResponse(ctx, logger, listTabsResponse{
			Locale:           locale,
			AvailableLocales: navigator.Config().Locales().All(),
			Tabs:             summaries,
			Count:            len(summaries),
		})
	}
}
