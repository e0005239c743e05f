package validate

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerKey     contextKey = "tracer"
	tracerName               = "github.com/amp-labs/amp-collections/validate"
	spanName                 = "validate"
	typeAttribute            = "validate.type"
)

// WithTracer stores the tracer Validate records its spans on. Without one,
// the global OpenTelemetry tracer provider is used (a no-op until the
// application installs a real one).
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

func tracerFrom(ctx context.Context) trace.Tracer { //nolint:ireturn
	if tracer, ok := ctx.Value(tracerKey).(trace.Tracer); ok && tracer != nil {
		return tracer
	}

	return otel.Tracer(tracerName)
}

func startSpan(ctx context.Context, typeName string) (context.Context, trace.Span) { //nolint:ireturn
	return tracerFrom(ctx).Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String(typeAttribute, typeName)),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}
