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

// GetSidebarTool exposes the sidebar tree of the documentation site.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var GetSidebarTool = mcp.NewTool(
	"get_sidebar",
	mcp.WithDescription(
		"Returns the documentation sidebar as a tree of tabs, sections and pages, in reading order. "+
			"Navigate progressively: start with depth 1 or 2, then use tab to expand one tab fully. "+
			"Use the 'link' of a page with get_page to read it.",
	),
	localeParam(),
	mcp.WithString(
		"tab",
		mcp.Description("Optional: only return this tab (use an id from list_tabs)."),
	),
	mcp.WithNumber(
		"depth",
		mcp.Description(
			"Optional: levels to return (default: 2, max: 3). "+
				"1 returns tabs, 2 adds sections, 3 adds pages.",
		),
	),
	mcp.WithString(
		"current",
		mcp.Description("Optional: slug of the page being viewed; its tab is marked active."),
	),
)

const (
	defaultSidebarDepth = 2
	maxSidebarDepth     = 3
)

type getSidebarParams struct {
	Tab     string
	Current string
	Depth   int
}

type getSidebarResponse struct {
	Tree      []*nav.TabNode `json:"tree"`
	Count     int            `json:"count"`
	Locale    string         `json:"locale"`
	Depth     int            `json:"depth"`
	Tab       string         `json:"tab,omitempty"`
	ActiveTab string         `json:"active_tab,omitempty"`
	Usage     string         `json:"usage"`
}

// RegisterGetSidebarTool registers the get_sidebar tool with the MCP server.
func RegisterGetSidebarTool(s *server.MCPServer, navigator *nav.Navigator) {
	s.AddTool(GetSidebarTool, withToolLogger("get_sidebar", newGetSidebarHandlerFunc(navigator)))
}

func newGetSidebarHandlerFunc(
	navigator *nav.Navigator,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "Starting get_sidebar operation")

		params := parseGetSidebarParams(request)
		locale := resolveLocale(ctx, logger, navigator, request)

		logger.DebugContext(ctx, "Parameters",
			slog.String("locale", locale),
			slog.String("tab", params.Tab),
			slog.String("current", params.Current),
			slog.Int("depth", params.Depth))

		activeTab := activeTabOf(navigator, locale, params)

		tree, err := navigator.Sidebar(locale, nav.TreeOptions{
			RootTab:   params.Tab,
			ActiveTab: activeTab,
			Depth:     params.Depth,
		})
		if err != nil {
			logger.WarnContext(ctx, "Failed to build sidebar tree",
				slog.String("tab", params.Tab),
				slog.String("error", err.Error()))
			return mcp.NewToolResultError(
				fmt.Sprintf("failed to build sidebar: %s. Use list_tabs to find valid tab ids", err),
			), nil
		}

		logger.InfoContext(ctx, "Sidebar built successfully",
			slog.String("locale", locale),
			slog.Int("tab_count", len(tree)),
			slog.String("active_tab", activeTab))

		return marshalResponse(ctx, logger, getSidebarResponse{
			Tree:      tree,
			Count:     len(tree),
			Locale:    locale,
			Depth:     params.Depth,
			Tab:       params.Tab,
			ActiveTab: activeTab,
			Usage: "Use the 'link' of an entry with get_page to read it. " +
				"Use 'tab' and 'depth' to expand a single tab.",
		})
	}
}

func parseGetSidebarParams(request mcp.CallToolRequest) getSidebarParams {
	depth := request.GetInt("depth", defaultSidebarDepth)
	if depth < 1 {
		depth = defaultSidebarDepth
	} else if depth > maxSidebarDepth {
		depth = maxSidebarDepth
	}

	return getSidebarParams{
		Tab:     request.GetString("tab", ""),
		Current: request.GetString("current", ""),
		Depth:   depth,
	}
}

// activeTabOf picks the tab shown first: the tab of the current page, then
// the requested tab, then the first tab.
func activeTabOf(navigator *nav.Navigator, locale string, params getSidebarParams) string {
	if params.Current != "" {
		if page, err := navigator.Page(locale, params.Current); err == nil {
			return page.Tab
		}
	}
	if params.Tab != "" {
		return params.Tab
	}
	if tabs := navigator.Tabs(locale); len(tabs) > 0 {
		return tabs[0].ID
	}
	return ""
}
