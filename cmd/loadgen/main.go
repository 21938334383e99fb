package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"

	"storefront/internal/platform/config"
	"storefront/internal/shared/correlation"
)

// Load generator: a steady request loop against the gateway so mesh-level
// policies (canary weights, retries, fault injection) have traffic to act
// on. Each request carries a fresh correlation id; the services themselves
// only ever relay it.

// Weighted mix: mostly plain aggregates, the occasional slow one.
var targets = []string{
	"/api/aggregate",
	"/api/aggregate",
	"/api/aggregate",
	"/api/aggregate/slow?ms=2000",
}

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loadgen bootstrap failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: 15 * time.Second}
	base := strings.TrimRight(cfg.GatewayURL, "/")

	slog.Info("loadgen started",
		"event", "loadgen_started",
		"gateway_url", cfg.GatewayURL,
		"interval", cfg.LoadgenInterval.String(),
	)

	ticker := time.NewTicker(cfg.LoadgenInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		hit(ctx, client, base+targets[i%len(targets)])
		select {
		case <-ctx.Done():
			slog.Info("loadgen stopped", "event", "loadgen_stopped", "requests", i+1)
			return
		case <-ticker.C:
		}
	}
}

func hit(ctx context.Context, client *http.Client, url string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("request build failed", "url", url, "error", err)
		return
	}
	correlation.Apply(req, uuid.NewString())

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		slog.Warn("request failed",
			"event", "loadgen_request_failed",
			"url", url,
			"elapsed", time.Since(start).String(),
			"error", err,
		)
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	slog.Info("request completed",
		"event", "loadgen_request_completed",
		"url", url,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).String(),
	)
}
