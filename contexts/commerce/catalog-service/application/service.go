package application

import (
	"context"
	"log/slog"
	"time"

	domainerrors "storefront/contexts/commerce/catalog-service/domain/errors"
	"storefront/contexts/commerce/catalog-service/ports"
)

// ServiceName is the fixed identity label the catalog reports.
const ServiceName = "catalog"

// Requested delays are clamped into [0, maxDelayMillis], never rejected.
const maxDelayMillis = 30000

type Service struct {
	Version   string
	Pod       string
	StartedAt time.Time
	Clock     ports.Clock
	Logger    *slog.Logger
}

// Identity reports the process identity. Always succeeds.
func (s Service) Identity(_ context.Context) ports.Identity {
	now := s.now()
	return ports.Identity{
		Service:   ServiceName,
		Version:   s.Version,
		Pod:       s.Pod,
		Timestamp: now,
		Uptime:    now.Sub(s.StartedAt),
	}
}

// DelayedIdentity suspends only the calling request for the clamped
// duration, then reports identity plus the delay actually applied. The wait
// aborts early when the caller abandons the request.
func (s Service) DelayedIdentity(ctx context.Context, requestedMillis int) (ports.DelayedIdentity, error) {
	clamped := clampDelayMillis(requestedMillis)
	if clamped > 0 {
		timer := time.NewTimer(time.Duration(clamped) * time.Millisecond)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ports.DelayedIdentity{}, ctx.Err()
		case <-timer.C:
		}
	}

	resolveLogger(s.Logger).Debug("artificial delay applied",
		"event", "catalog_delay_applied",
		"module", "commerce/catalog-service",
		"layer", "application",
		"requested_ms", requestedMillis,
		"applied_ms", clamped,
	)
	return ports.DelayedIdentity{
		Identity:      s.Identity(ctx),
		DelayedMillis: clamped,
	}, nil
}

// Fail always reports the simulated failure; it never succeeds. The
// identity fields still describe the process so callers can attribute the
// failure to a concrete pod.
func (s Service) Fail(ctx context.Context) (ports.Identity, error) {
	return s.Identity(ctx), domainerrors.ErrSimulatedFailure
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func clampDelayMillis(requested int) int {
	if requested < 0 {
		return 0
	}
	if requested > maxDelayMillis {
		return maxDelayMillis
	}
	return requested
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
