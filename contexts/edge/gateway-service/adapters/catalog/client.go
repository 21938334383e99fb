package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/contexts/edge/gateway-service/ports"
	"storefront/internal/shared/correlation"
)

// DefaultTimeout bounds every outbound catalog call, independent of any
// caller-visible deadline. Expiry is treated like a connection failure.
const DefaultTimeout = 10 * time.Second

const maxErrorBodyBytes = 512

// Client is the gateway's pooled HTTP client for the catalog. One instance
// is built at bootstrap and shared by all requests; *http.Client is safe for
// concurrent use, so no locking happens here.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 32
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

func (c *Client) FetchIdentity(ctx context.Context, correlationID string) (ports.CatalogIdentity, error) {
	return c.fetch(ctx, "/api/hello", correlationID)
}

func (c *Client) FetchDelayed(ctx context.Context, correlationID string, rawMillis string) (ports.CatalogIdentity, error) {
	return c.fetch(ctx, "/api/slow?ms="+url.QueryEscape(rawMillis), correlationID)
}

func (c *Client) fetch(ctx context.Context, path string, correlationID string) (ports.CatalogIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return ports.CatalogIdentity{}, fmt.Errorf("build catalog request: %w", err)
	}
	correlation.Apply(req, correlationID)

	resp, err := c.http.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("catalog request did not complete",
				"event", "catalog_client_request_failed",
				"module", "edge/gateway-service",
				"layer", "adapter",
				"url", c.base+path,
				"error", err,
			)
		}
		return ports.CatalogIdentity{}, fmt.Errorf("call catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return ports.CatalogIdentity{}, fmt.Errorf(
			"catalog returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload identityPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.CatalogIdentity{}, fmt.Errorf("decode catalog response: %w", err)
	}
	return payload.toPort(), nil
}

// identityPayload is the catalog wire shape as this adapter understands it.
type identityPayload struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Pod       string `json:"pod"`
	Timestamp string `json:"timestamp"`
	Uptime    int64  `json:"uptime"`
	Delayed   *int   `json:"delayed"`
}

func (p identityPayload) toPort() ports.CatalogIdentity {
	return ports.CatalogIdentity{
		Service:       p.Service,
		Version:       p.Version,
		Pod:           p.Pod,
		Timestamp:     p.Timestamp,
		UptimeSec:     p.Uptime,
		DelayedMillis: p.Delayed,
	}
}
