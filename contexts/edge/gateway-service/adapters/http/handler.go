package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"storefront/contexts/edge/gateway-service/application"
	domainerrors "storefront/contexts/edge/gateway-service/domain/errors"
	"storefront/contexts/edge/gateway-service/ports"
	httptransport "storefront/contexts/edge/gateway-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// AggregateHandler wraps one downstream identity call. The returned error is
// domainerrors.ErrCatalogUnavailable when the response body carries the
// fault shape; the body is complete either way.
// @Summary Aggregate catalog identity
// @Description Calls the catalog once and wraps the result. Downstream failure becomes a 502 with a classified error body.
// @Tags gateway-service
// @Produce json
// @Param x-request-id header string false "Trace correlation id, relayed verbatim downstream"
// @Success 200 {object} httptransport.AggregateResponse
// @Failure 502 {object} httptransport.AggregateResponse
// @Router /api/aggregate [get]
func (h Handler) AggregateHandler(ctx context.Context, correlationID string) (httptransport.AggregateResponse, error) {
	return aggregateResponse(h.Service.Aggregate(ctx, correlationID))
}

// AggregateDelayedHandler is AggregateHandler against the catalog's delay
// endpoint; the raw ms query value is forwarded unvalidated.
// @Summary Aggregate delayed catalog identity
// @Description Calls the catalog's delay endpoint, forwarding ms as-is. The outbound call has a fixed timeout.
// @Tags gateway-service
// @Produce json
// @Param ms query string true "Requested delay in milliseconds, validated by the catalog"
// @Param x-request-id header string false "Trace correlation id, relayed verbatim downstream"
// @Success 200 {object} httptransport.AggregateResponse
// @Failure 502 {object} httptransport.AggregateResponse
// @Router /api/aggregate/slow [get]
func (h Handler) AggregateDelayedHandler(ctx context.Context, correlationID string, rawMillis string) (httptransport.AggregateResponse, error) {
	return aggregateResponse(h.Service.AggregateDelayed(ctx, correlationID, rawMillis))
}

func aggregateResponse(report ports.AggregateReport) (httptransport.AggregateResponse, error) {
	resp := httptransport.AggregateResponse{
		Service:   application.ServiceName,
		Pod:       report.Pod,
		Timestamp: report.Timestamp.UTC().Format(time.RFC3339),
	}
	if report.Fault != nil {
		resp.Error = report.Fault.Classification
		resp.Detail = report.Fault.Detail
		return resp, domainerrors.ErrCatalogUnavailable
	}
	resp.Catalog = &httptransport.CatalogDocument{
		Service:   report.Catalog.Service,
		Version:   report.Catalog.Version,
		Pod:       report.Catalog.Pod,
		Timestamp: report.Catalog.Timestamp,
		UptimeSec: report.Catalog.UptimeSec,
		Delayed:   report.Catalog.DelayedMillis,
	}
	return resp, nil
}
