package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "companion-api"

// GetTracer returns the tracer for the companion service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartTurnSpan starts a span covering one conversation turn.
func StartTurnSpan(ctx context.Context, kind string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "turn.handle",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("turn.kind", kind)),
	)
}

// StartGameSpan starts a span for a game lifecycle operation.
func StartGameSpan(ctx context.Context, operation, gameID string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "game."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("game.id", gameID)),
	)
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
