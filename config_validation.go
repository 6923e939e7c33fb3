package proxyip

import (
	"fmt"
	"net/textproto"
	"reflect"
)

func (c *config) validate() error {
	if err := validateHeaderNames(c.customHeaders); err != nil {
		return err
	}

	if isNilLogger(c.logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	if isNilMetrics(c.metrics) {
		return fmt.Errorf("metrics cannot be nil")
	}
	return nil
}

func validateHeaderNames(headers []string) error {
	seen := make(map[string]struct{}, len(headers))

	for _, header := range headers {
		if header == "" {
			return fmt.Errorf("custom header names cannot be empty")
		}

		key := textproto.CanonicalMIMEHeaderKey(header)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate custom header %q", header)
		}
		seen[key] = struct{}{}
	}

	return nil
}

func isNilLogger(logger Logger) bool {
	return isNilInterface(logger)
}

func isNilMetrics(metrics Metrics) bool {
	return isNilInterface(metrics)
}

func isNilInterface(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
