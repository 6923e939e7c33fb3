package proxyip

import (
	"context"
	"net/http"
	"sync"
	"testing"
)

type capturedLogEntry struct {
	ctx   context.Context
	msg   string
	attrs map[string]any
}

type capturedLogger struct {
	mu      sync.Mutex
	entries []capturedLogEntry
}

func (l *capturedLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, capturedLogEntry{
		ctx:   ctx,
		msg:   msg,
		attrs: attrsToMap(args),
	})
}

func (l *capturedLogger) snapshot() []capturedLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]capturedLogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func attrsToMap(args []any) map[string]any {
	attrs := make(map[string]any)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		attrs[key] = args[i+1]
	}
	return attrs
}

type mockMetrics struct {
	mu       sync.Mutex
	success  map[string]int
	failure  map[string]int
	notFound int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{
		success: make(map[string]int),
		failure: make(map[string]int),
	}
}

func (m *mockMetrics) RecordExtractionSuccess(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.success[source]++
}

func (m *mockMetrics) RecordExtractionFailure(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure[source]++
}

func (m *mockMetrics) RecordNotFound() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notFound++
}

type metricsSnapshot struct {
	Success  map[string]int
	Failure  map[string]int
	NotFound int
}

func (m *mockMetrics) snapshot() metricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := metricsSnapshot{
		Success:  make(map[string]int, len(m.success)),
		Failure:  make(map[string]int, len(m.failure)),
		NotFound: m.notFound,
	}
	for k, v := range m.success {
		s.Success[k] = v
	}
	for k, v := range m.failure {
		s.Failure[k] = v
	}
	return s
}

// recordingRequest records every lookup made against it.
type recordingRequest struct {
	headers    map[string]string
	remoteAddr string
	hasRemote  bool

	lookups []string
}

func (r *recordingRequest) Header(name string) (string, bool) {
	r.lookups = append(r.lookups, name)
	v, ok := r.headers[name]
	return v, ok
}

func (r *recordingRequest) RemoteAddress() (string, bool) {
	r.lookups = append(r.lookups, SourceRemoteAddr)
	return r.remoteAddr, r.hasRemote
}

func mustNewExtractor(t *testing.T, opts ...Option) *Extractor {
	t.Helper()

	extractor, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return extractor
}

func newTestRequest(remoteAddr string, headers map[string]string) *http.Request {
	req := &http.Request{
		RemoteAddr: remoteAddr,
		Header:     make(http.Header),
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	return req
}
