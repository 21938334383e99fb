package ports

import "time"

type Clock interface {
	Now() time.Time
}

// Identity is the catalog's self-report, rebuilt per request. Version and
// Pod are fixed for the process lifetime; Timestamp is fresh per call.
type Identity struct {
	Service   string
	Version   string
	Pod       string
	Timestamp time.Time
	Uptime    time.Duration
}

// DelayedIdentity is Identity plus the artificial delay actually applied,
// after clamping.
type DelayedIdentity struct {
	Identity
	DelayedMillis int
}
