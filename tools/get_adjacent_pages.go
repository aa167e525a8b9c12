package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/supra-labs/docsnav/internal/logging"
	"github.com/supra-labs/docsnav/internal/nav"
)

// GetAdjacentPagesTool exposes the previous/next resolver.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var GetAdjacentPagesTool = mcp.NewTool(
	"get_adjacent_pages",
	mcp.WithDescription(
		"Returns the previous and next pages of a page in sidebar reading order. "+
			"Either side is null at the start or end of the tab.",
	),
	mcp.WithString(
		"slug",
		mcp.Required(),
		mcp.Description("Slug or link of the current page."),
	),
	localeParam(),
	mcp.WithString(
		"tab",
		mcp.Description(
			"Optional: tab to walk. Defaults to the tab of the page; pass '*' to walk every tab.",
		),
	),
)

const allTabs = "*"

type getAdjacentResponse struct {
	Slug   string       `json:"slug"`
	Locale string       `json:"locale"`
	Tab    string       `json:"tab,omitempty"`
	Prev   *nav.PageRef `json:"prev"`
	Next   *nav.PageRef `json:"next"`
}

// RegisterGetAdjacentPagesTool registers the get_adjacent_pages tool with the MCP server.
func RegisterGetAdjacentPagesTool(s *server.MCPServer, navigator *nav.Navigator) {
	s.AddTool(GetAdjacentPagesTool, withToolLogger("get_adjacent_pages", newGetAdjacentPagesHandlerFunc(navigator)))
}

func newGetAdjacentPagesHandlerFunc(
	navigator *nav.Navigator,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "Starting get_adjacent_pages operation")

		slug, err := request.RequireString("slug")
		if err != nil {
			logger.WarnContext(ctx, "Invalid parameters", slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf("missing or invalid slug parameter: %s", err)), nil
		}
		locale := resolveLocale(ctx, logger, navigator, request)
		id := navigator.NormalizeSlug(slug)

		tab := request.GetString("tab", "")
		switch tab {
		case allTabs:
			tab = ""
		case "":
			if page, ok := navigator.Documents().Get(locale, id); ok {
				tab = page.Tab
			}
		}

		adj := navigator.AdjacentPages(id, locale, tab)

		logger.InfoContext(ctx, "Adjacent pages resolved",
			slog.String("slug", id),
			slog.String("locale", locale),
			slog.String("tab", tab),
			slog.Bool("has_prev", adj.Prev != nil),
			slog.Bool("has_next", adj.Next != nil))

		return marshalResponse(ctx, logger, getAdjacentResponse{
			Slug:   id,
			Locale: locale,
			Tab:    tab,
			Prev:   adj.Prev,
			Next:   adj.Next,
		})
	}
}
