package proxyip

import (
	"net"
	"strings"
)

// Normalize prepares a raw header token for validation.
//
// It trims surrounding whitespace, removes one matching pair of double quotes
// or, failing that, one matching pair of single quotes, then removes one
// matching pair of square brackets. Whitespace is trimmed again after each
// step. Unbalanced quotes or brackets are left in place:
//
//	Normalize(`  "192.168.1.1"  `) // "192.168.1.1"
//	Normalize("[2001:db8::1]")     // "2001:db8::1"
//	Normalize("[malformed")        // "[malformed"
//
// Only one pair of each kind is removed, so nested wrappers such as
// `""1.1.1.1""` keep their inner pair.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(trimQuotes(s))
	return strings.TrimSpace(trimMatchedPair(s, '[', ']'))
}

// trimQuotes removes one matching pair of double quotes, or one matching pair
// of single quotes when the value is not double quoted.
func trimQuotes(s string) string {
	if trimmed := trimMatchedChar(s, '"'); len(trimmed) != len(s) {
		return trimmed
	}
	return trimMatchedChar(s, '\'')
}

// trimMatchedPair removes one leading and trailing delimiter when both match.
func trimMatchedPair(s string, start, end byte) string {
	if len(s) < 2 {
		return s
	}

	if s[0] != start || s[len(s)-1] != end {
		return s
	}

	return s[1 : len(s)-1]
}

// trimMatchedChar removes one matching leading and trailing character.
func trimMatchedChar(s string, ch byte) string {
	return trimMatchedPair(s, ch, ch)
}

// firstListToken returns the value before the first comma.
func firstListToken(value string) string {
	first, _, _ := strings.Cut(value, ",")
	return first
}

// remoteHost strips a port from a connection address.
//
// Addresses without a port are returned unchanged so bracketed IPv6 literals
// still reach Normalize intact.
func remoteHost(addr string) string {
	if strings.LastIndexByte(addr, ':') == -1 {
		return addr
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
