package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/supra-labs/docsnav/internal/content"
	"github.com/supra-labs/docsnav/internal/logging"
	"github.com/supra-labs/docsnav/internal/nav"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// GetPageTool exposes a tool for reading one documentation page.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var GetPageTool = mcp.NewTool(
	"get_page",
	mcp.WithDescription(
		"Retrieves a documentation page with its frontmatter, markdown body and the previous/next pages "+
			"in sidebar reading order. Pages missing from the requested locale are served from the default locale.",
	),
	mcp.WithString(
		"slug",
		mcp.Required(),
		mcp.Description(
			"Page slug or link (e.g., 'overview/intro' or '/docs/overview/intro'). "+
				"Get valid links from get_sidebar.",
		),
	),
	localeParam(),
)

type pageLink struct {
	*nav.PageRef

	Link  string `json:"link"`
	Label string `json:"label"`
}

type getPageResponse struct {
	Page    content.Document `json:"page"`
	Link    string           `json:"link"`
	Content string           `json:"content"`
	Locale  string           `json:"locale"`
	Prev    *pageLink        `json:"prev,omitempty"`
	Next    *pageLink        `json:"next,omitempty"`
}

// RegisterGetPageTool registers the get_page tool with the MCP server.
func RegisterGetPageTool(s *server.MCPServer, navigator *nav.Navigator) {
	s.AddTool(GetPageTool, withToolLogger("get_page", newGetPageHandlerFunc(navigator)))
}

func newGetPageHandlerFunc(
	navigator *nav.Navigator,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "Starting get_page operation")

		slug, err := request.RequireString("slug")
		if err != nil {
			logger.WarnContext(ctx, "Invalid parameters", slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf("missing or invalid slug parameter: %s", err)), nil
		}
		locale := resolveLocale(ctx, logger, navigator, request)

		page, err := navigator.Page(locale, slug)
		if err != nil {
			logger.WarnContext(ctx, "Page not found",
				slog.String("slug", slug),
				slog.String("locale", locale))
			return mcp.NewToolResultError(
				fmt.Sprintf("page not found: %s in locale %s. Use get_sidebar to find valid links", slug, locale),
			), nil
		}

		cfg := navigator.Config()
		adj := navigator.AdjacentPages(page.ID, page.Locale, page.Tab)

		logger.InfoContext(ctx, "Page retrieved successfully",
			slog.String("slug", page.ID),
			slog.String("locale", page.Locale),
			slog.Int("content_size", len(page.Body)))

		return marshalResponse(ctx, logger, getPageResponse{
			Page:    page,
			Link:    cfg.Link(page.ID),
			Content: page.Body,
			Locale:  page.Locale,
			Prev:    newPageLink(cfg, adj.Prev, cfg.Text(locale, siteconfig.TextPrevPage)),
			Next:    newPageLink(cfg, adj.Next, cfg.Text(locale, siteconfig.TextNextPage)),
		})
	}
}

func newPageLink(cfg *siteconfig.Config, ref *nav.PageRef, label string) *pageLink {
	if ref == nil {
		return nil
	}
	return &pageLink{PageRef: ref, Link: cfg.Link(ref.Slug), Label: label}
}
