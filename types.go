package proxyip

import (
	"fmt"
	"net/netip"
)

// Extraction describes where a client IP was found.
type Extraction struct {
	// IP is the normalized literal exactly as it passed validation.
	IP string

	// Source is the snake case header name, or SourceRemoteAddr.
	Source string

	// Header is the header name as configured. It is empty for the
	// connection address.
	Header string

	// Strategy is the rule strategy that accepted IP.
	Strategy Strategy
}

// Addr parses IP into a netip.Addr.
//
// The syntactic validator accepts a few literals that netip rejects, such as
// IPv4-embedded forms with leading zeros; Addr reports those as errors.
func (e Extraction) Addr() (netip.Addr, error) {
	addr, err := netip.ParseAddr(e.IP)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parse %s address %q: %w", e.Source, e.IP, err)
	}
	return addr, nil
}
