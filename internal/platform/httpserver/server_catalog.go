package httpserver

import (
	"log/slog"
	"net/http"
	"strconv"

	catalogservice "storefront/contexts/commerce/catalog-service"
	catalogerrors "storefront/contexts/commerce/catalog-service/domain/errors"
)

// NewCatalog builds the catalog process server: identity, artificial delay,
// simulated failure, probes.
func NewCatalog(module catalogservice.Module, logger *slog.Logger, addr string) *Server {
	s := newServer(logger, addr)
	s.catalog = module
	s.registerCatalogRoutes()
	return s
}

func (s *Server) registerCatalogRoutes() {
	s.mux.HandleFunc("GET /api/hello", s.handleCatalogHello)
	s.mux.HandleFunc("GET /api/slow", s.handleCatalogSlow)
	s.mux.HandleFunc("GET /api/fail", s.handleCatalogFail)
}

func (s *Server) handleCatalogHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Handler.HelloHandler(r.Context()))
}

func (s *Server) handleCatalogSlow(w http.ResponseWriter, r *http.Request) {
	ms, err := strconv.Atoi(r.URL.Query().Get("ms"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, s.catalog.Handler.ErrorBody(
			r.Context(),
			catalogerrors.ErrInvalidDelay.Error(),
			"ms must be an integer",
		))
		return
	}

	resp, err := s.catalog.Handler.SlowHandler(r.Context(), ms)
	if err != nil {
		// Caller abandoned the request mid-wait; nothing left to answer.
		s.logger.Debug("slow request abandoned",
			"event", "catalog_slow_abandoned",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err,
		)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCatalogFail(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusInternalServerError, s.catalog.Handler.FailHandler(r.Context()))
}
