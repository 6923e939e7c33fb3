package prometheus

import (
	"errors"
	"fmt"

	"github.com/abczzz13/proxyip"
	prom "github.com/prometheus/client_golang/prometheus"
)

const (
	extractionTotalName = "ip_extraction_total"
	notFoundTotalName   = "ip_extraction_not_found_total"
)

// PrometheusMetrics is a Prometheus-backed implementation of proxyip.Metrics.
type PrometheusMetrics struct {
	extractionTotal *prom.CounterVec
	notFoundTotal   prom.Counter
}

// WithMetrics returns a proxyip option that installs Prometheus-backed
// metrics using prom.DefaultRegisterer.
func WithMetrics() proxyip.Option {
	return withMetricsFactory(New)
}

// WithRegisterer returns a proxyip option that installs Prometheus-backed
// metrics using the provided registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used.
func WithRegisterer(registerer prom.Registerer) proxyip.Option {
	return withMetricsFactory(func() (*PrometheusMetrics, error) {
		return NewWithRegisterer(registerer)
	})
}

// withMetricsFactory adapts a PrometheusMetrics constructor into a lazy
// proxyip.Option, so collectors are registered only when New succeeds.
func withMetricsFactory(factory func() (*PrometheusMetrics, error)) proxyip.Option {
	return proxyip.WithMetricsFactory(func() (proxyip.Metrics, error) {
		metrics, err := factory()
		if err != nil {
			return nil, err
		}
		return metrics, nil
	})
}

// New creates PrometheusMetrics and registers its collectors on
// prom.DefaultRegisterer.
func New() (*PrometheusMetrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates PrometheusMetrics and registers its collectors on
// the given registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used. If the metrics are
// already registered, existing compatible collectors are reused.
func NewWithRegisterer(registerer prom.Registerer) (*PrometheusMetrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	extractionTotal, err := registerCollector(registerer, prom.NewCounterVec(
		prom.CounterOpts{
			Name: extractionTotalName,
			Help: "Total number of client IP extraction attempts by source header and result (success, invalid).",
		},
		[]string{"source", "result"},
	), extractionTotalName)
	if err != nil {
		return nil, err
	}

	notFoundTotal, err := registerCollector(registerer, prom.NewCounter(
		prom.CounterOpts{
			Name: notFoundTotalName,
			Help: "Total number of requests for which no source yielded a valid client IP.",
		},
	), notFoundTotalName)
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{
		extractionTotal: extractionTotal,
		notFoundTotal:   notFoundTotal,
	}, nil
}

func registerCollector[C prom.Collector](registerer prom.Registerer, collector C, metricName string) (C, error) {
	if err := registerer.Register(collector); err != nil {
		var zero C
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if ok {
				return existing, nil
			}
			return zero, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return zero, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordExtractionSuccess increments ip_extraction_total with result="success"
// for the provided source.
func (m *PrometheusMetrics) RecordExtractionSuccess(source string) {
	m.extractionTotal.WithLabelValues(source, "success").Inc()
}

// RecordExtractionFailure increments ip_extraction_total with result="invalid"
// for the provided source.
func (m *PrometheusMetrics) RecordExtractionFailure(source string) {
	m.extractionTotal.WithLabelValues(source, "invalid").Inc()
}

// RecordNotFound increments ip_extraction_not_found_total.
func (m *PrometheusMetrics) RecordNotFound() {
	m.notFoundTotal.Inc()
}
