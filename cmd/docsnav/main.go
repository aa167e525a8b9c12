// Package main provides the docsnav command.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/supra-labs/docsnav/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, logging.Default(), os.Args[1:], os.Stdout, os.Stderr)
	stop()

	//nolint:forbidigo // main must exit with the command status code.
	os.Exit(code)
}

func run(ctx context.Context, logger *slog.Logger, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(logger, stdout, stderr)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
