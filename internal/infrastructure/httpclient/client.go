package httpclient

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultTimeout = 10 * time.Second

// New returns the client used for every outbound PayU and Ecwid call.
// Requests are bounded by timeout and traced through otelhttp.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// WithoutRedirects returns a shallow copy of c that hands 3xx responses back
// to the caller instead of following them.
func WithoutRedirects(c *http.Client) *http.Client {
	if c == nil {
		c = New(DefaultTimeout)
	}
	cp := *c
	cp.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &cp
}
