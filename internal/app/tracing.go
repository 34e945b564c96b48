package app

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/agbru/fibiter/internal/logging"
)

// logSpanExporter writes every finished span as a debug log entry, so traces
// are visible on stderr without a collector.
type logSpanExporter struct {
	logger logging.Logger
}

var _ sdktrace.SpanExporter = logSpanExporter{}

// ExportSpans logs the name, timing, status and attributes of each span.
func (e logSpanExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		fields := []logging.Field{
			logging.String("span", s.Name()),
			logging.String("trace_id", s.SpanContext().TraceID().String()),
			logging.String("status", s.Status().Code.String()),
			logging.Float64("duration_seconds", s.EndTime().Sub(s.StartTime()).Seconds()),
		}
		for _, kv := range s.Attributes() {
			fields = append(fields, logging.String(string(kv.Key), kv.Value.Emit()))
		}
		e.logger.Debug("span ended", fields...)
	}
	return nil
}

// Shutdown is a no-op; the logger owns its writer.
func (logSpanExporter) Shutdown(context.Context) error { return nil }

// newTracerProvider returns an SDK provider that exports spans synchronously
// through logger.
func newTracerProvider(logger logging.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(logSpanExporter{logger: logger}))
}
