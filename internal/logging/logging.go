// Package logging configures the slog logger shared by the CLI and the MCP tools.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"
)

// Config holds logger settings read from the environment.
type Config struct {
	Level   string `env:"LOG_LEVEL"   envDefault:"info"`
	Format  string `env:"LOG_FORMAT"  envDefault:"text"`
	Colored bool   `env:"LOG_COLORED" envDefault:"true"`
}

type ctxKey struct{}

//nolint:gochecknoglobals // Process-wide default logger.
var (
	defaultOnce   sync.Once
	defaultLogger *slog.Logger
)

// Default returns the process-wide logger, built from the environment on first use.
// Output always goes to stderr so it never mixes with stdio transports.
func Default() *slog.Logger {
	defaultOnce.Do(func() {
		cfg, err := env.ParseAs[Config]()
		if err != nil {
			cfg = Config{Level: "info", Format: "text", Colored: true}
		}
		defaultLogger = New(os.Stderr, cfg)
	})
	return defaultLogger
}

// New builds a logger writing to w.
func New(w io.Writer, cfg Config) *slog.Logger {
	level := ParseLevel(cfg.Level)

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !cfg.Colored,
	}))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithTool returns the default logger annotated with a tool name.
func WithTool(name string) *slog.Logger {
	return Default().With(slog.String("tool", name))
}

// ContextWithLogger stores logger in ctx.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// LoggerFromContext returns the logger stored in ctx, or the default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
