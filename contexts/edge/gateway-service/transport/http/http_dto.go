package http

// CatalogDocument mirrors the catalog's identity body as decoded from the
// downstream response.
type CatalogDocument struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Pod       string `json:"pod"`
	Timestamp string `json:"timestamp"`
	UptimeSec int64  `json:"uptime,omitempty"`
	Delayed   *int   `json:"delayed,omitempty"`
}

// AggregateResponse wraps one downstream call. Exactly one of Catalog or
// Error/Detail is set.
type AggregateResponse struct {
	Service   string           `json:"service"`
	Pod       string           `json:"pod"`
	Timestamp string           `json:"timestamp"`
	Catalog   *CatalogDocument `json:"catalog,omitempty"`
	Error     string           `json:"error,omitempty"`
	Detail    string           `json:"detail,omitempty"`
}
