package application

import (
	"context"
	"log/slog"
	"time"

	domainerrors "storefront/contexts/edge/gateway-service/domain/errors"
	"storefront/contexts/edge/gateway-service/ports"
)

// ServiceName is the fixed identity label the gateway reports.
const ServiceName = "gateway"

type Service struct {
	Catalog ports.CatalogClient
	Clock   ports.Clock
	Pod     string
	Logger  *slog.Logger
}

// Aggregate issues one downstream identity call and folds the outcome into
// a report that holds either the catalog payload or a classified fault.
// The inbound correlation id, when present, rides along verbatim. Aggregate
// itself never fails: downstream trouble becomes data, not an error.
func (s Service) Aggregate(ctx context.Context, correlationID string) ports.AggregateReport {
	identity, err := s.Catalog.FetchIdentity(ctx, correlationID)
	return s.report(identity, err, correlationID)
}

// AggregateDelayed is Aggregate against the catalog's delay endpoint. The
// raw ms value goes through untouched.
func (s Service) AggregateDelayed(ctx context.Context, correlationID string, rawMillis string) ports.AggregateReport {
	identity, err := s.Catalog.FetchDelayed(ctx, correlationID, rawMillis)
	return s.report(identity, err, correlationID)
}

func (s Service) report(identity ports.CatalogIdentity, err error, correlationID string) ports.AggregateReport {
	report := ports.AggregateReport{
		Pod:       s.Pod,
		Timestamp: s.now(),
	}
	if err != nil {
		resolveLogger(s.Logger).Warn("catalog call failed",
			"event", "gateway_catalog_call_failed",
			"module", "edge/gateway-service",
			"layer", "application",
			"correlation_id", correlationID,
			"error", err,
		)
		report.Fault = &ports.CatalogFault{
			Classification: domainerrors.ErrCatalogUnavailable.Error(),
			Detail:         err.Error(),
		}
		return report
	}
	report.Catalog = &identity
	return report
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
