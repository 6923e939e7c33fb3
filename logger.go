package proxyip

import (
	"context"
)

// Logger records debug events emitted by Extractor.
//
// Implementations should be safe for concurrent use, as a single Extractor
// instance is typically shared across many goroutines.
//
// The provided context comes from the inbound HTTP request (or the caller of
// ExtractFrom) and can carry tracing metadata.
//
// The interface mirrors slog's DebugContext signature, so *slog.Logger can be
// used directly without an adapter.
type Logger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
}

// noopLogger is the default Logger implementation when logging is not
// explicitly configured.
type noopLogger struct{}

func (noopLogger) DebugContext(context.Context, string, ...any) {}
