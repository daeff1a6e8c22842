package tracing

import (
	"context"

	"github.com/google/uuid"
)

type TracingContextKey string

const TraceIdKey = TracingContextKey("requestTraceId")

// AttachTracingIntoContext assigns a fresh trace id to the request chain so
// every log line of one request can be correlated.
func AttachTracingIntoContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIdKey, uuid.NewString())
}

// TraceIdFromContext returns the trace id attached to the context, if any.
func TraceIdFromContext(ctx context.Context) (string, bool) {
	traceId, ok := ctx.Value(TraceIdKey).(string)
	return traceId, ok
}
