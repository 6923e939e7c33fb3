package proxyip

// Metrics records extraction outcomes emitted by Extractor.
//
// Implementations should be safe for concurrent use, as a single Extractor
// instance is typically shared across many goroutines.
type Metrics interface {
	// RecordExtractionSuccess is called when a source yields the client IP.
	RecordExtractionSuccess(source string)
	// RecordExtractionFailure is called when a source is present but its
	// value is not a valid IP address.
	RecordExtractionFailure(source string)
	// RecordNotFound is called when no source yields a valid IP address.
	RecordNotFound()
}

// noopMetrics is the default Metrics implementation when metrics are not
// explicitly configured.
type noopMetrics struct{}

func (noopMetrics) RecordExtractionSuccess(string) {}

func (noopMetrics) RecordExtractionFailure(string) {}

func (noopMetrics) RecordNotFound() {}
