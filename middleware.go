package proxyip

import (
	"context"
	"net/http"
)

// extractionContextKey is used as a key for storing the Extraction in a
// request context.
type extractionContextKey struct{}

// Middleware resolves the client IP once per request and stores the
// Extraction in the request context for FromContext. Requests without a
// valid client IP are passed through unchanged.
func (e *Extractor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		extraction, ok := e.Extract(r)
		if ok {
			r = r.WithContext(NewContext(r.Context(), extraction))
		}
		next.ServeHTTP(w, r)
	})
}

// NewContext returns a copy of ctx carrying extraction.
func NewContext(ctx context.Context, extraction Extraction) context.Context {
	return context.WithValue(ctx, extractionContextKey{}, extraction)
}

// FromContext returns the Extraction stored by Middleware.
func FromContext(ctx context.Context) (Extraction, bool) {
	extraction, ok := ctx.Value(extractionContextKey{}).(Extraction)
	return extraction, ok
}
