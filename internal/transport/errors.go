package transport

import (
	"errors"
	"fmt"
)

// Kind classifies a transport failure. Callers recover from every kind the
// same way, so Kind is informational.
type Kind int

const (
	KindUnsupportedScheme Kind = iota + 1
	KindMissingHost
	KindConnect
	KindHandshake
	KindStatus
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedScheme:
		return "unsupported scheme"
	case KindMissingHost:
		return "missing host"
	case KindConnect:
		return "connection failed"
	case KindHandshake:
		return "handshake failed"
	case KindStatus:
		return "unexpected status"
	default:
		return "transport failure"
	}
}

// Sentinels usable with errors.Is against any *Error of the same kind.
var (
	ErrUnsupportedScheme = &Error{Kind: KindUnsupportedScheme}
	ErrMissingHost       = &Error{Kind: KindMissingHost}
	ErrConnect           = &Error{Kind: KindConnect}
	ErrHandshake         = &Error{Kind: KindHandshake}
	ErrStatus            = &Error{Kind: KindStatus}
)

// Error is the single error type reported by the connector and by the HTTP
// layer built on top of it.
type Error struct {
	Kind Kind
	URI  string
	Err  error
}

func (e *Error) Error() string {
	msg := "transport error: " + e.Kind.String()
	if e.URI != "" {
		msg += fmt.Sprintf(" (%s)", e.URI)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind so that errors.Is(err, ErrHandshake) works for any
// handshake failure.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf reports the transport kind carried by err, or zero when err holds
// no *Error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}
