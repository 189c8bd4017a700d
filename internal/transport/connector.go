// Package transport provides a TLS-only connector and an HTTP client built on
// it. Plain http is refused before any socket is opened.
package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/url"
	"time"
)

const (
	secureScheme   = "https"
	defaultTLSPort = "443"
)

// Dialer opens plain TCP connections. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Connector upgrades plain TCP connections to TLS, one handshake per call.
// The dialer and TLS config are shared by every call and never mutated.
type Connector struct {
	dialer Dialer
	tls    *tls.Config
}

func NewConnector(dialer Dialer, tlsConfig *tls.Config) *Connector {
	if dialer == nil {
		dialer = &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	}
	if tlsConfig == nil {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return &Connector{dialer: dialer, tls: tlsConfig}
}

// Connect dials the URI's authority and completes a TLS handshake that
// validates the peer certificate against the URI host.
func (c *Connector) Connect(ctx context.Context, uri *url.URL) (*tls.Conn, error) {
	if uri == nil || uri.Scheme != secureScheme {
		return nil, &Error{Kind: KindUnsupportedScheme, URI: redacted(uri)}
	}
	host := uri.Hostname()
	if host == "" {
		return nil, &Error{Kind: KindMissingHost, URI: redacted(uri)}
	}
	port := uri.Port()
	if port == "" {
		port = defaultTLSPort
	}

	raw, err := c.dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, &Error{Kind: KindConnect, URI: redacted(uri), Err: err}
	}

	cfg := c.tls.Clone()
	cfg.ServerName = host
	conn := tls.Client(raw, cfg)
	if err := conn.HandshakeContext(ctx); err != nil {
		_ = raw.Close()
		return nil, &Error{Kind: KindHandshake, URI: redacted(uri), Err: err}
	}
	return conn, nil
}

func redacted(uri *url.URL) string {
	if uri == nil {
		return ""
	}
	return uri.Redacted()
}
