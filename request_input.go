package proxyip

import (
	"net/http"
	"net/textproto"
)

// Request is the minimal view of an inbound request needed for extraction.
//
// Header reports the first value received for name and whether the header
// was present at all. RemoteAddress reports the connection address as an IP
// literal without a port.
type Request interface {
	Header(name string) (string, bool)
	RemoteAddress() (string, bool)
}

// HeaderValues provides access to request header values by name.
//
// Header names are requested as passed by the caller or as listed in
// DefaultRules. net/http's http.Header satisfies this interface directly and
// canonicalizes names itself.
type HeaderValues interface {
	Values(name string) []string
}

// HeaderValuesFunc adapts a function to the HeaderValues interface.
type HeaderValuesFunc func(name string) []string

// Values implements HeaderValues.
func (f HeaderValuesFunc) Values(name string) []string {
	if f == nil {
		return nil
	}

	return f(name)
}

// HeaderMap is a single-valued header set with case-insensitive lookup.
type HeaderMap map[string]string

// Values implements HeaderValues.
func (m HeaderMap) Values(name string) []string {
	if v, ok := m[name]; ok {
		return []string{v}
	}

	canonical := textproto.CanonicalMIMEHeaderKey(name)
	for key, v := range m {
		if textproto.CanonicalMIMEHeaderKey(key) == canonical {
			return []string{v}
		}
	}
	return nil
}

// RequestInput provides framework-agnostic request data for extraction.
//
// RemoteAddr may carry a port ("1.1.1.1:443", "[::1]:443"); it is stripped
// before validation. An empty RemoteAddr counts as absent.
type RequestInput struct {
	RemoteAddr string
	Headers    HeaderValues
}

// Header implements Request.
func (in RequestInput) Header(name string) (string, bool) {
	if in.Headers == nil {
		return "", false
	}
	return firstHeaderValue(in.Headers.Values(name))
}

// RemoteAddress implements Request.
func (in RequestInput) RemoteAddress() (string, bool) {
	if in.RemoteAddr == "" {
		return "", false
	}
	return remoteHost(in.RemoteAddr), true
}

// HTTPRequest adapts r to Request. A nil r yields a request with no headers
// and no remote address.
func HTTPRequest(r *http.Request) Request {
	if r == nil {
		return RequestInput{}
	}
	return RequestInput{RemoteAddr: r.RemoteAddr, Headers: r.Header}
}

func firstHeaderValue(values []string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}
