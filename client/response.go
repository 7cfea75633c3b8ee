package client

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const maxBodyExcerpt = 500

// Response is a fully read HTTP response from the backend.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON parses the body. A body that is not valid JSON yields ldvalue.Null(), so callers can
// look up fields without checking for a parse error first.
func (r *Response) JSON() ldvalue.Value {
	if r == nil || len(r.Body) == 0 {
		return ldvalue.Null()
	}
	return ldvalue.Parse(r.Body)
}

// HasHeader reports whether the response carried the named header at all, even if empty.
func (r *Response) HasHeader(name string) bool {
	if r == nil {
		return false
	}
	return len(r.Header.Values(name)) > 0
}

// BodyExcerpt returns the body as text, shortened if it is very long.
func (r *Response) BodyExcerpt() string {
	if r == nil {
		return ""
	}
	s := []rune(string(r.Body))
	if len(s) > maxBodyExcerpt {
		return string(s[:maxBodyExcerpt]) + "..."
	}
	return string(s)
}

// NetworkError means no HTTP response was received: the connection was refused, the host
// could not be resolved, or the request timed out.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Description())
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request was abandoned because it took too long.
func (e *NetworkError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// Description is a short human-readable explanation of the failure.
func (e *NetworkError) Description() string {
	var dnsErr *net.DNSError
	switch {
	case e.Timeout():
		return "server took too long to respond"
	case errors.As(e.Err, &dnsErr):
		return fmt.Sprintf("could not resolve host %s", dnsErr.Name)
	default:
		return fmt.Sprintf("could not connect to server (%s)", e.Err)
	}
}
