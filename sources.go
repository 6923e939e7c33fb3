package proxyip

import "strings"

// Strategy selects how a Rule turns a raw header value into a candidate.
type Strategy int

const (
	// Start at 1 so the zero value is never a valid strategy.
	//
	// SingleValue normalizes and validates the whole header value.
	SingleValue Strategy = iota + 1
	// FirstOfCommaList validates only the first comma-separated token. A bad
	// first token fails the rule even when later tokens are valid.
	FirstOfCommaList
	// ForwardedDirective uses the first valid for= value, see ParseForwardedFor.
	ForwardedDirective
	// RemoteAddressFallback validates the connection address instead of a header.
	RemoteAddressFallback
)

// String returns the canonical text representation of s.
func (s Strategy) String() string {
	switch s {
	case SingleValue:
		return "single_value"
	case FirstOfCommaList:
		return "first_of_comma_list"
	case ForwardedDirective:
		return "forwarded_directive"
	case RemoteAddressFallback:
		return "remote_address_fallback"
	default:
		return "unknown"
	}
}

const (
	// SourceRemoteAddr names results taken from the connection address.
	SourceRemoteAddr = "remote_addr"
)

// Rule binds one header name to one extraction strategy. Header is empty for
// RemoteAddressFallback.
type Rule struct {
	Header   string
	Strategy Strategy
}

// Source returns the name reported in Extraction.Source for r.
func (r Rule) Source() string {
	if r.Strategy == RemoteAddressFallback {
		return SourceRemoteAddr
	}
	return NormalizeSourceName(r.Header)
}

// defaultRules is the fixed evaluation order, highest priority first.
var defaultRules = [...]Rule{
	{Header: "X-Client-IP", Strategy: SingleValue},
	{Header: "X-Forwarded-For", Strategy: FirstOfCommaList},
	{Header: "CF-Connecting-IP", Strategy: SingleValue},    // Cloudflare
	{Header: "Fastly-Client-Ip", Strategy: SingleValue},    // Fastly
	{Header: "True-Client-Ip", Strategy: SingleValue},      // Akamai, Cloudflare Enterprise
	{Header: "X-Real-IP", Strategy: SingleValue},           // nginx
	{Header: "X-Cluster-Client-IP", Strategy: SingleValue}, // Rackspace LB, Riverbed Stingray
	{Header: "X-Forwarded", Strategy: FirstOfCommaList},
	{Header: "Forwarded-For", Strategy: FirstOfCommaList},
	{Header: "Forwarded", Strategy: ForwardedDirective},
	{Header: "appengine-user-ip", Strategy: SingleValue}, // Google App Engine
	{Header: "Cf-Pseudo-IPv4", Strategy: SingleValue},    // Cloudflare pseudo IPv4
	{Strategy: RemoteAddressFallback},
}

// DefaultRules returns a copy of the fixed extraction chain in evaluation
// order.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules[:])
	return rules
}

// customRules builds FirstOfCommaList rules for caller-supplied headers.
func customRules(headers []string) []Rule {
	rules := make([]Rule, 0, len(headers))
	for _, header := range headers {
		rules = append(rules, Rule{Header: header, Strategy: FirstOfCommaList})
	}
	return rules
}

// NormalizeSourceName converts a header name to the snake case form used in
// Extraction.Source and metric labels.
func NormalizeSourceName(headerName string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(headerName), "-", "_"))
}

// evaluate applies one rule to req. present reports whether the rule's input
// existed at all, which separates "absent" from "rejected" for logging and
// metrics.
func evaluate(rule Rule, req Request) (candidate string, present, ok bool) {
	var raw string

	if rule.Strategy == RemoteAddressFallback {
		raw, present = req.RemoteAddress()
	} else {
		raw, present = req.Header(rule.Header)
	}
	if !present {
		return "", false, false
	}

	switch rule.Strategy {
	case SingleValue, RemoteAddressFallback:
		candidate = Normalize(raw)
	case FirstOfCommaList:
		candidate = Normalize(firstListToken(raw))
	case ForwardedDirective:
		candidate, ok = ParseForwardedFor(raw)
		return candidate, true, ok
	default:
		return "", true, false
	}

	if !IsValidIP(candidate) {
		return candidate, true, false
	}
	return candidate, true, true
}
