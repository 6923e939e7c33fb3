package proxyip

import "strings"

// ParseForwardedFor returns the first valid for= address in a Forwarded
// header value.
//
// The value is split on ';' into groups and each group on ',' into parts.
// Parts are scanned in order; a part is split on its first '=' and parts
// without one are skipped. The key is matched case-insensitively. A for value
// that fails validation after Normalize does not stop the scan:
//
//	ParseForwardedFor(`for=unknown, for="[2001:db8::1]";proto=https`) // "2001:db8::1", true
//
// Ports inside the value are not stripped, so for="1.1.1.1:443" is rejected.
func ParseForwardedFor(value string) (string, bool) {
	for group := range strings.SplitSeq(value, ";") {
		for part := range strings.SplitSeq(group, ",") {
			key, forValue, ok := strings.Cut(strings.TrimSpace(part), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "for") {
				continue
			}

			if candidate := Normalize(forValue); IsValidIP(candidate) {
				return candidate, true
			}
		}
	}

	return "", false
}
