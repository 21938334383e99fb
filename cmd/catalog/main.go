package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"storefront/internal/app/bootstrap"
)

// Catalog process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build the catalog module and HTTP server.
// 3) Serve until SIGINT/SIGTERM, then drain.
func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	app, err := bootstrap.BuildCatalog()
	if err != nil {
		slog.Error("catalog bootstrap failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("catalog exited", "error", err)
		os.Exit(1)
	}
}
