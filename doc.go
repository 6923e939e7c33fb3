// Package proxyip determines the originating client IP address of an HTTP
// request that may have passed through reverse proxies, load balancers or
// CDNs, each of which may add its own "true client" header.
//
// # Precedence
//
// Caller-supplied headers are checked first, in the order given, taking the
// first comma-separated token of each. Then the fixed chain is evaluated:
//
//  1. X-Client-IP
//  2. X-Forwarded-For (first token)
//  3. CF-Connecting-IP
//  4. Fastly-Client-Ip
//  5. True-Client-Ip
//  6. X-Real-IP
//  7. X-Cluster-Client-IP
//  8. X-Forwarded (first token)
//  9. Forwarded-For (first token)
//  10. Forwarded (first valid for= value)
//  11. appengine-user-ip
//  12. Cf-Pseudo-IPv4
//  13. the connection address
//
// The first value that is a syntactically valid IPv4 or IPv6 literal wins.
// Values are trimmed and one pair of surrounding quotes and one pair of
// square brackets are removed before validation. Only syntax is checked:
// private, loopback and reserved addresses are all accepted.
//
// # Basic Usage
//
//	ip, ok := proxyip.ClientIP(req)
//	if !ok {
//	    // no header and no connection address held a valid IP
//	}
//
// With headers owned by your own edge, checked before everything else:
//
//	ip, ok := proxyip.ClientIP(req, "X-Edge-Client-IP")
//
// # Extractor
//
// An Extractor adds configured custom headers, logging and metrics:
//
//	extractor, err := proxyip.New(
//	    proxyip.WithCustomHeaders("X-Edge-Client-IP"),
//	    proxyip.WithLogger(slog.Default()),
//	    proxyipprom.WithRegisterer(registry),
//	)
//
//	extraction, ok := extractor.Extract(req)
//	fmt.Println(extraction.IP, extraction.Source)
//
// Extractor.Middleware stores the result in the request context for
// FromContext. Non-net/http frameworks can pass a RequestInput or any Request
// implementation to ExtractFrom.
//
// # Security Considerations
//
// Every header in the chain can be set by the client unless an upstream proxy
// overwrites it. Use the result for logging and coarse rate limiting; do not
// base access control on it unless your edge strips or rewrites all of these
// headers.
//
// # Thread Safety
//
// Compiled patterns and the rule table are built at package initialization
// and never modified. Extractor instances are safe for concurrent use.
package proxyip
