package session

import (
	"context"
	"net/http"
)

// Transport is an http.RoundTripper that routes every request through a Coordinator.
type Transport struct {
	Coordinator *Coordinator
	Base        http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	return t.Coordinator.RunWithRefresh(req.Context(), req, func(_ context.Context, r *http.Request) (*http.Response, error) {
		return base.RoundTrip(r)
	})
}
