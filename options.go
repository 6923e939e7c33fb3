package proxyip

import "fmt"

// WithCustomHeaders configures headers that are checked before the fixed
// chain, in the given order, using the FirstOfCommaList strategy.
//
// Headers passed to Extract for a single call are checked before these.
// Repeated use replaces the previous list.
func WithCustomHeaders(headers ...string) Option {
	headers = trimStrings(headers)

	return func(c *config) error {
		c.customHeaders = cloneStrings(headers)
		return nil
	}
}

// WithLogger sets the logger implementation used for debug events.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets a concrete metrics implementation.
//
// If previously configured, a metrics factory is disabled.
func WithMetrics(metrics Metrics) Option {
	return func(c *config) error {
		c.metrics = metrics
		c.metricsFactory = nil
		c.useMetricsFactory = false
		return nil
	}
}

// WithMetricsFactory configures a lazy metrics constructor.
//
// The factory is invoked only for the final winning metrics option after
// option validation succeeds.
func WithMetricsFactory(factory func() (Metrics, error)) Option {
	return func(c *config) error {
		if factory == nil {
			return fmt.Errorf("metrics factory cannot be nil")
		}

		c.metricsFactory = factory
		c.useMetricsFactory = true
		return nil
	}
}
