package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// CatalogIdentity is the decoded downstream identity payload, passed through
// into the aggregate body without reinterpretation.
type CatalogIdentity struct {
	Service       string
	Version       string
	Pod           string
	Timestamp     string
	UptimeSec     int64
	DelayedMillis *int
}

// CatalogFault is the classified downstream failure. Detail keeps the
// underlying cause text; callers only ever see the fixed classification
// plus that free-text detail.
type CatalogFault struct {
	Classification string
	Detail         string
}

// AggregateReport carries exactly one of Catalog or Fault, never both and
// never neither.
type AggregateReport struct {
	Pod       string
	Timestamp time.Time
	Catalog   *CatalogIdentity
	Fault     *CatalogFault
}

// CatalogClient is the gateway's single outbound dependency. The requested
// delay is forwarded as the raw query value; validation and clamping belong
// to the catalog alone.
type CatalogClient interface {
	FetchIdentity(ctx context.Context, correlationID string) (CatalogIdentity, error)
	FetchDelayed(ctx context.Context, correlationID string, rawMillis string) (CatalogIdentity, error)
}
