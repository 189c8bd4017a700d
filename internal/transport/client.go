package transport

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"
)

// NewHTTPClient returns an HTTP client whose every connection goes through
// c. Requests for plain http fail with KindUnsupportedScheme.
func NewHTTPClient(c *Connector, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rt := &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return c.Connect(ctx, &url.URL{Scheme: secureScheme, Host: addr})
		},
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return nil, &Error{Kind: KindUnsupportedScheme, URI: "http://" + addr}
		},
		MaxIdleConns:        4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: timeout,
	}
	return &http.Client{Transport: rt, Timeout: timeout}
}
