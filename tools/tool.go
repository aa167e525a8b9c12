// Package tools provides MCP tool definitions for the docsnav server.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/supra-labs/docsnav/internal/logging"
	"github.com/supra-labs/docsnav/internal/nav"
)

// Register adds every navigation tool to s.
func Register(s *server.MCPServer, navigator *nav.Navigator) {
	RegisterInfoTool(s, navigator)
	RegisterListTabsTool(s, navigator)
	RegisterGetSidebarTool(s, navigator)
	RegisterGetPageTool(s, navigator)
	RegisterGetAdjacentPagesTool(s, navigator)
	RegisterGetFirstPagesTool(s, navigator)
}

// withToolLogger wraps a tool handler to inject a logger into context and provide panic recovery.
// The logger is configured with the tool name and made available via logging.LoggerFromContext.
func withToolLogger(toolName string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		logger := logging.WithTool(toolName)
		ctx = logging.ContextWithLogger(ctx, logger)

		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "panic in tool execution",
					slog.String("tool", toolName),
					slog.Any("panic", r))
				result = nil
				err = fmt.Errorf("internal error in tool execution: %s", r)
			}
		}()

		return handler(ctx, request)
	}
}

// localeParam is shared by every tool that answers for one locale.
func localeParam() mcp.ToolOption {
	return mcp.WithString(
		"locale",
		mcp.Description(
			"Optional: locale to answer for (e.g., 'en', 'de-AT'). "+
				"Matched against the configured locales; defaults to the site's default locale.",
		),
	)
}

// resolveLocale matches the requested locale. A failed match is logged and
// answered with the default locale, like the rest of the navigation layer.
func resolveLocale(ctx context.Context, logger *slog.Logger, navigator *nav.Navigator, request mcp.CallToolRequest) string {
	requested := request.GetString("locale", "")
	locale, err := navigator.ResolveLocale(requested)
	if err != nil {
		logger.WarnContext(ctx, "Locale not configured, using default",
			slog.String("requested", requested),
			slog.String("locale", locale))
	}
	return locale
}

func marshalResponse(ctx context.Context, logger *slog.Logger, v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.ErrorContext(ctx, "Failed to marshal response",
			slog.String("error", err.Error()))
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
