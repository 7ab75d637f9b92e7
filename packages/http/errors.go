package http

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"strings"
)

// ErrorKind classifies why a request produced no response.
type ErrorKind int

const (
	// ErrorOther covers invalid URLs, redirect limits, TLS failures and anything unclassified
	ErrorOther ErrorKind = iota
	// ErrorConnection means the server could not be reached
	ErrorConnection
	// ErrorReadTimeout means the server was reached but the response did not arrive in time
	ErrorReadTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorConnection:
		return "connection"
	case ErrorReadTimeout:
		return "read-timeout"
	default:
		return "other"
	}
}

// TransportError is returned by Client.Send when no response was obtained.
type TransportError struct {
	Kind ErrorKind
	Err  error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Describe returns a short, actionable description of the underlying failure.
func (e *TransportError) Describe() string {
	return describe(e.Err)
}

func classify(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &TransportError{Kind: ErrorConnection, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &TransportError{Kind: ErrorConnection, Err: err}
	}

	if strings.Contains(err.Error(), "TLS handshake timeout") {
		return &TransportError{Kind: ErrorConnection, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: ErrorReadTimeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Kind: ErrorReadTimeout, Err: err}
	}

	if opErr != nil && opErr.Op == "read" {
		return &TransportError{Kind: ErrorReadTimeout, Err: err}
	}

	return &TransportError{Kind: ErrorOther, Err: err}
}

func describe(err error) string {
	if err == nil {
		return ""
	}

	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return "TLS certificate signed by unknown authority - use --insecure to skip verification"
	}

	if errors.Is(err, context.Canceled) {
		return "Request cancelled"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "proxy"):
		return "Proxy connection failed - verify the proxy setting"
	case strings.Contains(msg, "no such host"), strings.Contains(msg, "dial tcp: lookup"):
		return "DNS resolution failed - verify the hostname"
	case strings.Contains(msg, "connection refused"):
		return "Connection refused - check that the server is running and the port is correct"
	case strings.Contains(msg, "connection reset"):
		return "Connection reset by server"
	case strings.Contains(msg, "network is unreachable"), strings.Contains(msg, "no route to host"):
		return "Network unreachable - check network connection and firewall settings"
	case strings.Contains(msg, "stopped after") && strings.Contains(msg, "redirect"):
		return "Too many redirects - check the URL or raise --max-redirects"
	case strings.Contains(msg, "certificate"), strings.Contains(msg, "x509"), strings.Contains(msg, "tls"):
		return "TLS error - check the certificate or use --insecure"
	case strings.Contains(msg, "unsupported url scheme"), strings.Contains(msg, "invalid url"), strings.Contains(msg, "must have a host"):
		return "Invalid URL - verify the base URL and path"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"), strings.Contains(msg, "timed out"):
		return "Timeout - try raising the timeouts with the timeout command"
	case strings.Contains(msg, "eof"):
		return "Connection closed unexpectedly"
	}

	return err.Error()
}
