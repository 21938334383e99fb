package errors

import "errors"

// ErrCatalogUnavailable collapses every downstream failure mode — refused
// connection, timeout, bad status, undecodable body — into the one
// classification callers see.
var ErrCatalogUnavailable = errors.New("catalog unavailable")
