package proxyip

import "regexp"

const (
	ipv4Octet = `(?:\d|[1-9]\d|1\d{2}|2[0-4]\d|25[0-5])`

	// ipv6Embedded4 is the dotted-quad tail allowed inside IPv6 literals.
	ipv6Embedded4 = `((25[0-5]|(2[0-4]|1{0,1}[0-9]){0,1}[0-9])\.){3,3}(25[0-5]|(2[0-4]|1{0,1}[0-9]){0,1}[0-9])`

	ipv6Group = `[0-9a-f]{1,4}`
)

var (
	ipv4Pattern = regexp.MustCompile(`^(?:` + ipv4Octet + `\.){3}` + ipv4Octet + `$`)

	// ipv6Pattern lists every placement of the "::" run explicitly. The zone
	// index form is only recognized for fe80:: link-local literals.
	ipv6Pattern = regexp.MustCompile(`(?i)^(?:` +
		`(` + ipv6Group + `:){7,7}` + ipv6Group +
		`|(` + ipv6Group + `:){1,7}:` +
		`|(` + ipv6Group + `:){1,6}:` + ipv6Group +
		`|(` + ipv6Group + `:){1,5}(:` + ipv6Group + `){1,2}` +
		`|(` + ipv6Group + `:){1,4}(:` + ipv6Group + `){1,3}` +
		`|(` + ipv6Group + `:){1,3}(:` + ipv6Group + `){1,4}` +
		`|(` + ipv6Group + `:){1,2}(:` + ipv6Group + `){1,5}` +
		`|` + ipv6Group + `:((:` + ipv6Group + `){1,6})` +
		`|:((:` + ipv6Group + `){1,7}|:)` +
		`|fe80:(:[0-9a-f]{0,4}){0,4}%[0-9a-z]{1,}` +
		`|::(ffff(:0{1,4}){0,1}:){0,1}` + ipv6Embedded4 +
		`|(` + ipv6Group + `:){1,4}:` + ipv6Embedded4 +
		`)$`)
)

// IsValidIP reports whether value is a syntactically valid IPv4 or IPv6
// literal. The whole string must match; brackets, ports and surrounding
// whitespace are rejected.
func IsValidIP(value string) bool {
	return value != "" && (IsValidIPv4(value) || IsValidIPv6(value))
}

// IsValidIPv4 reports whether value is a dotted-quad IPv4 literal without
// leading zeros.
func IsValidIPv4(value string) bool {
	return ipv4Pattern.MatchString(value)
}

// IsValidIPv6 reports whether value is an IPv6 literal, including compressed,
// IPv4-embedded and fe80:: zoned forms.
func IsValidIPv6(value string) bool {
	return ipv6Pattern.MatchString(value)
}
