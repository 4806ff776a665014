package logging

import (
	"context"
	"crypto/rand"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// EnvTraceID overrides the generated trace ID for a process.
const EnvTraceID = "INTERSECTIONS_TRACE_ID"

type contextKey string

const traceIDKey contextKey = "trace_id"

// FromContext returns the logger stored in ctx by zerolog's WithContext,
// falling back to the global logger. A stored trace ID is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	l := Global()
	if ctx != nil {
		if stored := zerolog.Ctx(ctx); stored != nil && stored.GetLevel() != zerolog.Disabled {
			l = *stored
		}
		if id := TraceIDFromContext(ctx); id != "" {
			l = l.With().Str("trace_id", id).Logger()
		}
	}
	return &l
}

// ContextWithTraceID returns a copy of ctx carrying traceID.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID already in ctx, else the value of
// INTERSECTIONS_TRACE_ID, else a fresh ULID.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	if id := os.Getenv(EnvTraceID); id != "" {
		return id
	}
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
