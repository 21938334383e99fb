package catalogservice

import (
	"log/slog"
	"time"

	httpadapter "storefront/contexts/commerce/catalog-service/adapters/http"
	"storefront/contexts/commerce/catalog-service/application"
	"storefront/contexts/commerce/catalog-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Version   string
	Pod       string
	StartedAt time.Time
	Clock     ports.Clock
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	started := deps.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	}
	service := application.Service{
		Version:   deps.Version,
		Pod:       deps.Pod,
		StartedAt: started,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}
