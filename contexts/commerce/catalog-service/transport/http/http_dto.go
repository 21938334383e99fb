package http

type IdentityResponse struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Pod       string `json:"pod"`
	Timestamp string `json:"timestamp"`
	UptimeSec int64  `json:"uptime"`
}

type DelayedIdentityResponse struct {
	IdentityResponse
	// Delayed is the clamped delay actually applied, in milliseconds.
	Delayed int `json:"delayed"`
}

type ErrorResponse struct {
	Service   string `json:"service"`
	Error     string `json:"error"`
	Pod       string `json:"pod"`
	Timestamp string `json:"timestamp"`
	Detail    string `json:"detail,omitempty"`
}
