package memory

import (
	"context"
	"strconv"
	"sync"

	"storefront/contexts/edge/gateway-service/ports"
)

// Catalog is an in-process stand-in for the downstream catalog service,
// used for test wiring. It records the last correlation id and raw delay it
// was handed so relay behavior can be asserted.
type Catalog struct {
	mu                sync.Mutex
	Identity          ports.CatalogIdentity
	Err               error
	LastCorrelationID string
	LastRawMillis     string
}

func NewCatalog(identity ports.CatalogIdentity) *Catalog {
	return &Catalog{Identity: identity}
}

func (c *Catalog) FetchIdentity(_ context.Context, correlationID string) (ports.CatalogIdentity, error) {
	c.mu.Lock()
	c.LastCorrelationID = correlationID
	c.mu.Unlock()
	if c.Err != nil {
		return ports.CatalogIdentity{}, c.Err
	}
	return c.Identity, nil
}

func (c *Catalog) FetchDelayed(_ context.Context, correlationID string, rawMillis string) (ports.CatalogIdentity, error) {
	c.mu.Lock()
	c.LastCorrelationID = correlationID
	c.LastRawMillis = rawMillis
	c.mu.Unlock()
	if c.Err != nil {
		return ports.CatalogIdentity{}, c.Err
	}
	identity := c.Identity
	if ms, err := strconv.Atoi(rawMillis); err == nil {
		identity.DelayedMillis = &ms
	}
	return identity, nil
}
