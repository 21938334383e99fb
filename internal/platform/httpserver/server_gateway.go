package httpserver

import (
	"log/slog"
	"net/http"

	gatewayservice "storefront/contexts/edge/gateway-service"
	"storefront/internal/shared/correlation"
)

// NewGateway builds the gateway process server: aggregation endpoints and
// probes. All downstream failure modes surface as 502 with the classified
// error body; the gateway always completes the inbound request.
func NewGateway(module gatewayservice.Module, logger *slog.Logger, addr string) *Server {
	s := newServer(logger, addr)
	s.gateway = module
	s.registerGatewayRoutes()
	return s
}

func (s *Server) registerGatewayRoutes() {
	s.mux.HandleFunc("GET /api/aggregate", s.handleAggregate)
	s.mux.HandleFunc("GET /api/aggregate/slow", s.handleAggregateSlow)
}

func (s *Server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	resp, err := s.gateway.Handler.AggregateHandler(r.Context(), correlation.FromRequest(r))
	if err != nil {
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAggregateSlow(w http.ResponseWriter, r *http.Request) {
	resp, err := s.gateway.Handler.AggregateDelayedHandler(
		r.Context(),
		correlation.FromRequest(r),
		r.URL.Query().Get("ms"),
	)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
