package proxyip

import (
	"context"
	"fmt"
	"net/http"
)

// Extractor resolves client IP addresses from HTTP requests and
// framework-agnostic request inputs.
//
// Extractor instances are immutable after New and safe for concurrent reuse.
type Extractor struct {
	config *config
	rules  []Rule
}

// New creates an Extractor from one or more Option builders.
func New(opts ...Option) (*Extractor, error) {
	cfg, err := configFromOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	rules := make([]Rule, 0, len(cfg.customHeaders)+len(defaultRules))
	rules = append(rules, customRules(cfg.customHeaders)...)
	rules = append(rules, defaultRules[:]...)

	return &Extractor{config: cfg, rules: rules}, nil
}

// defaultExtractor backs the package-level helpers.
var defaultExtractor = mustNew()

func mustNew(opts ...Option) *Extractor {
	extractor, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("build default extractor: %v", err))
	}
	return extractor
}

// ClientIP returns the client IP for r using the default chain, checking
// headers first, in order, when given.
func ClientIP(r *http.Request, headers ...string) (string, bool) {
	extraction, ok := defaultExtractor.Extract(r, headers...)
	return extraction.IP, ok
}

// ClientIPFrom is ClientIP for framework-agnostic requests.
func ClientIPFrom(req Request, headers ...string) (string, bool) {
	extraction, ok := defaultExtractor.ExtractFrom(context.Background(), req, headers...)
	return extraction.IP, ok
}

// Rules returns the extractor's configured evaluation order, excluding
// per-call headers.
func (e *Extractor) Rules() []Rule {
	return cloneRules(e.rules)
}

// Extract resolves the client IP for r.
//
// headers are checked first, in order, with the FirstOfCommaList strategy.
// The boolean result is false when no rule produced a valid address.
func (e *Extractor) Extract(r *http.Request, headers ...string) (Extraction, bool) {
	return e.ExtractFrom(requestContext(r), HTTPRequest(r), headers...)
}

// ExtractFrom resolves the client IP from framework-agnostic request input.
// ctx is only passed to the Logger.
func (e *Extractor) ExtractFrom(ctx context.Context, req Request, headers ...string) (Extraction, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		req = RequestInput{}
	}

	if len(headers) > 0 {
		if extraction, ok := e.evaluateRules(ctx, req, customRules(headers)); ok {
			return extraction, true
		}
	}

	if extraction, ok := e.evaluateRules(ctx, req, e.rules); ok {
		return extraction, true
	}

	e.config.metrics.RecordNotFound()
	e.config.logger.DebugContext(ctx, "no valid client IP found", "event", eventNotFound)
	return Extraction{}, false
}

// evaluateRules stops at the first rule that yields a valid candidate.
func (e *Extractor) evaluateRules(ctx context.Context, req Request, rules []Rule) (Extraction, bool) {
	for _, rule := range rules {
		candidate, present, ok := evaluate(rule, req)
		if !present {
			continue
		}

		source := rule.Source()
		if !ok {
			e.config.metrics.RecordExtractionFailure(source)
			e.config.logger.DebugContext(ctx, "rejected client IP candidate",
				"event", eventRejectedValue,
				"source", source,
				"header", rule.Header,
				"value", candidate,
			)
			continue
		}

		e.config.metrics.RecordExtractionSuccess(source)
		return Extraction{
			IP:       candidate,
			Source:   source,
			Header:   rule.Header,
			Strategy: rule.Strategy,
		}, true
	}

	return Extraction{}, false
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}

	return r.Context()
}

func cloneRules(rules []Rule) []Rule {
	cloned := make([]Rule, len(rules))
	copy(cloned, rules)
	return cloned
}
