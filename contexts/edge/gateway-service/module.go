package gatewayservice

import (
	"log/slog"

	httpadapter "storefront/contexts/edge/gateway-service/adapters/http"
	"storefront/contexts/edge/gateway-service/adapters/memory"
	"storefront/contexts/edge/gateway-service/application"
	"storefront/contexts/edge/gateway-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Catalog *memory.Catalog
}

type Dependencies struct {
	Catalog ports.CatalogClient
	Clock   ports.Clock
	Pod     string
	Logger  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Catalog: deps.Catalog,
		Clock:   deps.Clock,
		Pod:     deps.Pod,
		Logger:  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires the gateway against an in-process catalog stub.
func NewInMemoryModule(identity ports.CatalogIdentity, pod string, logger *slog.Logger) Module {
	catalog := memory.NewCatalog(identity)
	module := NewModule(Dependencies{
		Catalog: catalog,
		Pod:     pod,
		Logger:  logger,
	})
	module.Catalog = catalog
	return module
}
