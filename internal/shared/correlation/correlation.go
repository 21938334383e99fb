package correlation

import "net/http"

// Header is the caller-supplied trace correlation header.
// Services relay it verbatim onto outbound calls; they never mint one of
// their own, so traces always originate at the edge.
const Header = "x-request-id"

// FromRequest returns the inbound correlation id, empty when the caller
// did not supply one.
func FromRequest(r *http.Request) string {
	return r.Header.Get(Header)
}

// Apply attaches the correlation id to an outbound request. A missing id
// stays missing: no header is written for the empty string.
func Apply(r *http.Request, id string) {
	if id == "" {
		return
	}
	r.Header.Set(Header, id)
}
