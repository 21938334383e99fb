package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	catalogservice "storefront/contexts/commerce/catalog-service"
	gatewayservice "storefront/contexts/edge/gateway-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "storefront/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	http   *http.Server
	logger *slog.Logger
	addr   string

	catalog catalogservice.Module
	gateway gatewayservice.Module
}

func newServer(logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
	}
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	s.registerBaseRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) registerBaseRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Probes answer from process state alone. The gateway's probes must not
	// consult the catalog: downstream trouble is the mesh's business, not a
	// reason to restart this pod.
	s.mux.HandleFunc("GET /healthz", s.handleProbe)
	s.mux.HandleFunc("GET /readyz", s.handleProbe)
}

func (s *Server) handleProbe(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
