package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"storefront/contexts/commerce/catalog-service/application"
	domainerrors "storefront/contexts/commerce/catalog-service/domain/errors"
	"storefront/contexts/commerce/catalog-service/ports"
	httptransport "storefront/contexts/commerce/catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// HelloHandler reports process identity.
// @Summary Catalog identity
// @Description Returns the catalog's version, pod and a fresh timestamp.
// @Tags catalog-service
// @Produce json
// @Success 200 {object} httptransport.IdentityResponse
// @Router /api/hello [get]
func (h Handler) HelloHandler(ctx context.Context) httptransport.IdentityResponse {
	return identityResponse(h.Service.Identity(ctx))
}

// SlowHandler applies a clamped artificial delay before reporting identity.
// A non-nil error means the caller abandoned the request mid-wait.
// @Summary Delayed catalog identity
// @Description Suspends the request for the clamped delay, then reports identity.
// @Tags catalog-service
// @Produce json
// @Param ms query int true "Requested delay in milliseconds, clamped into [0,30000]"
// @Success 200 {object} httptransport.DelayedIdentityResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /api/slow [get]
func (h Handler) SlowHandler(ctx context.Context, requestedMillis int) (httptransport.DelayedIdentityResponse, error) {
	item, err := h.Service.DelayedIdentity(ctx, requestedMillis)
	if err != nil {
		return httptransport.DelayedIdentityResponse{}, err
	}
	return httptransport.DelayedIdentityResponse{
		IdentityResponse: identityResponse(item.Identity),
		Delayed:          item.DelayedMillis,
	}, nil
}

// FailHandler builds the fixed simulated-failure body. The HTTP layer always
// writes it with status 500; this endpoint never succeeds.
// @Summary Simulated catalog failure
// @Description Always fails with a fixed classification, for fault-handling drills.
// @Tags catalog-service
// @Produce json
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/fail [get]
func (h Handler) FailHandler(ctx context.Context) httptransport.ErrorResponse {
	identity, failure := h.Service.Fail(ctx)
	if failure == nil {
		failure = domainerrors.ErrSimulatedFailure
	}
	return httptransport.ErrorResponse{
		Service:   identity.Service,
		Error:     failure.Error(),
		Pod:       identity.Pod,
		Timestamp: identity.Timestamp.UTC().Format(time.RFC3339),
	}
}

// ErrorBody shapes a client-input error in the catalog's uniform error
// shape, stamped with current identity fields.
func (h Handler) ErrorBody(ctx context.Context, classification string, detail string) httptransport.ErrorResponse {
	identity := h.Service.Identity(ctx)
	return httptransport.ErrorResponse{
		Service:   identity.Service,
		Error:     classification,
		Pod:       identity.Pod,
		Timestamp: identity.Timestamp.UTC().Format(time.RFC3339),
		Detail:    detail,
	}
}

func identityResponse(identity ports.Identity) httptransport.IdentityResponse {
	return httptransport.IdentityResponse{
		Service:   identity.Service,
		Version:   identity.Version,
		Pod:       identity.Pod,
		Timestamp: identity.Timestamp.UTC().Format(time.RFC3339),
		UptimeSec: int64(identity.Uptime.Seconds()),
	}
}
