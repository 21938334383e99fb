package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	catalogservice "storefront/contexts/commerce/catalog-service"
	gatewayservice "storefront/contexts/edge/gateway-service"
	catalogclient "storefront/contexts/edge/gateway-service/adapters/catalog"
	"storefront/internal/platform/config"
	"storefront/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

const shutdownGrace = 10 * time.Second

type CatalogApp struct {
	server *httpserver.Server
	logger *slog.Logger
}

type GatewayApp struct {
	server *httpserver.Server
	logger *slog.Logger
}

func BuildCatalog() (*CatalogApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", "catalog", "pod", cfg.Pod)
	module := catalogservice.NewModule(catalogservice.Dependencies{
		Version:   cfg.CatalogVersion,
		Pod:       cfg.Pod,
		StartedAt: time.Now().UTC(),
		Logger:    logger,
	})

	return &CatalogApp{
		server: httpserver.NewCatalog(module, logger, normalizeAddr(cfg.HTTPPort)),
		logger: logger,
	}, nil
}

func BuildGateway() (*GatewayApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", "gateway", "pod", cfg.Pod)
	catalog := catalogclient.New(cfg.CatalogURL, cfg.CatalogTimeout, logger)
	module := gatewayservice.NewModule(gatewayservice.Dependencies{
		Catalog: catalog,
		Pod:     cfg.Pod,
		Logger:  logger,
	})

	logger.Info("gateway wired to catalog",
		"event", "bootstrap_gateway_wired",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"catalog_url", cfg.CatalogURL,
		"catalog_timeout", cfg.CatalogTimeout.String(),
	)
	return &GatewayApp{
		server: httpserver.NewGateway(module, logger, normalizeAddr(cfg.HTTPPort)),
		logger: logger,
	}, nil
}

func (a *CatalogApp) Run(ctx context.Context) error {
	a.logger.Info("catalog app started",
		"event", "bootstrap_catalog_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return runServer(ctx, a.server)
}

func (a *GatewayApp) Run(ctx context.Context) error {
	a.logger.Info("gateway app started",
		"event", "bootstrap_gateway_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return runServer(ctx, a.server)
}

// runServer serves until the listener fails or ctx is canceled, then drains
// in-flight requests within the grace window.
func runServer(ctx context.Context, server *httpserver.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
