package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	gatewayservice "storefront/contexts/edge/gateway-service"
	catalogclient "storefront/contexts/edge/gateway-service/adapters/catalog"
	"storefront/contexts/edge/gateway-service/ports"
	httptransport "storefront/contexts/edge/gateway-service/transport/http"
	"storefront/internal/shared/correlation"
)

func newGatewayTestServer() (*Server, gatewayservice.Module) {
	module := gatewayservice.NewInMemoryModule(ports.CatalogIdentity{
		Service:   "catalog",
		Version:   "v1",
		Pod:       "catalog-1",
		Timestamp: "2026-03-01T09:30:00Z",
	}, "gateway-test", slog.Default())
	return NewGateway(module, slog.Default(), ":0"), module
}

func TestAggregateWrapsCatalogIdentity(t *testing.T) {
	server, _ := newGatewayTestServer()
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aggregate", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp httptransport.AggregateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Service != "gateway" || resp.Pod != "gateway-test" {
		t.Fatalf("unexpected wrapper fields: %+v", resp)
	}
	if resp.Error != "" || resp.Detail != "" {
		t.Fatalf("success body must not carry error fields: %+v", resp)
	}

	want := &httptransport.CatalogDocument{
		Service:   "catalog",
		Version:   "v1",
		Pod:       "catalog-1",
		Timestamp: "2026-03-01T09:30:00Z",
	}
	if diff := cmp.Diff(want, resp.Catalog); diff != "" {
		t.Fatalf("catalog payload mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateReportsUnavailableCatalog(t *testing.T) {
	server, module := newGatewayTestServer()
	module.Catalog.Err = errors.New("dial tcp 10.0.0.1:8080: connection refused")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aggregate", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp httptransport.AggregateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "catalog unavailable" {
		t.Fatalf("expected fixed classification, got %q", resp.Error)
	}
	if resp.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
	if resp.Catalog != nil {
		t.Fatalf("failure body must not carry catalog payload: %+v", resp.Catalog)
	}
}

func TestAggregateRelaysInboundCorrelationID(t *testing.T) {
	server, module := newGatewayTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/aggregate", nil)
	req.Header.Set(correlation.Header, "abc123")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if module.Catalog.LastCorrelationID != "abc123" {
		t.Fatalf("expected correlation id relayed, got %q", module.Catalog.LastCorrelationID)
	}
}

func TestAggregateOmitsAbsentCorrelationID(t *testing.T) {
	server, module := newGatewayTestServer()
	module.Catalog.LastCorrelationID = "stale"

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aggregate", nil))

	if module.Catalog.LastCorrelationID != "" {
		t.Fatalf("expected empty correlation id, got %q", module.Catalog.LastCorrelationID)
	}
}

func TestAggregateSlowForwardsDelayUnvalidated(t *testing.T) {
	server, module := newGatewayTestServer()

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aggregate/slow?ms=250", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if module.Catalog.LastRawMillis != "250" {
		t.Fatalf("expected raw ms forwarded, got %q", module.Catalog.LastRawMillis)
	}

	var resp httptransport.AggregateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Catalog == nil || resp.Catalog.Delayed == nil || *resp.Catalog.Delayed != 250 {
		t.Fatalf("expected delayed catalog payload, got %+v", resp.Catalog)
	}
}

func TestGatewayProbesIgnoreCatalogHealth(t *testing.T) {
	server, module := newGatewayTestServer()
	module.Catalog.Err = errors.New("catalog is down")

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 regardless of catalog, got %d", path, rr.Code)
		}
	}
}

// End-to-end wiring over real HTTP: gateway server, pooled outbound client,
// catalog server.

func newWiredGateway(t *testing.T, catalogURL string, timeout time.Duration) *Server {
	t.Helper()
	module := gatewayservice.NewModule(gatewayservice.Dependencies{
		Catalog: catalogclient.New(catalogURL, timeout, slog.Default()),
		Pod:     "gateway-e2e",
		Logger:  slog.Default(),
	})
	return NewGateway(module, slog.Default(), ":0")
}

func TestAggregateEndToEndAgainstLiveCatalog(t *testing.T) {
	backend := httptest.NewServer(newCatalogTestServer().mux)
	defer backend.Close()

	gateway := newWiredGateway(t, backend.URL, time.Second)
	rr := httptest.NewRecorder()
	gateway.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aggregate", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp httptransport.AggregateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Catalog == nil || resp.Catalog.Service != "catalog" || resp.Catalog.Version != "v1" {
		t.Fatalf("expected live catalog identity, got %+v", resp.Catalog)
	}
}

func TestAggregateEndToEndTimeoutBeatsSlowCatalog(t *testing.T) {
	backend := httptest.NewServer(newCatalogTestServer().mux)
	defer backend.Close()

	gateway := newWiredGateway(t, backend.URL, 150*time.Millisecond)
	start := time.Now()
	rr := httptest.NewRecorder()
	gateway.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aggregate/slow?ms=3000", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", rr.Code, rr.Body.String())
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("gateway must answer on its own timeout, took %v", elapsed)
	}

	var resp httptransport.AggregateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "catalog unavailable" || resp.Detail == "" {
		t.Fatalf("expected classified timeout failure, got %+v", resp)
	}
}

func TestAggregateEndToEndCatalogErrorStatusBecomes502(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"service":"catalog","error":"simulated failure"}`))
	}))
	defer backend.Close()

	gateway := newWiredGateway(t, backend.URL, time.Second)
	rr := httptest.NewRecorder()
	gateway.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aggregate", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAggregateEndToEndRefusedConnectionBecomes502(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := backend.URL
	backend.Close()

	gateway := newWiredGateway(t, url, time.Second)
	rr := httptest.NewRecorder()
	gateway.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aggregate", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp httptransport.AggregateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Detail == "" {
		t.Fatal("expected underlying cause in detail")
	}
}
