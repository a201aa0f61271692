package tracing

import (
	"context"

	"github.com/serum-errors/go-serum"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ctxKey struct{}

// TracerFromCtx returns the tracer set for the current context.
// If no tracer is currently set in ctx, a new no-op tracer will be returned.
func TracerFromCtx(ctx context.Context) trace.Tracer {
	tracer, ok := ctx.Value(ctxKey{}).(trace.Tracer)
	// tracer should not be nil here because SetTracer should check for that.
	// Do not allow a nil tracer to be inserted into context.
	if !ok {
		return trace.NewNoopTracerProvider().Tracer("")
	}
	return tracer
}

// SetTracer returns a new context with the given tracer associated with it.
// Setting the tracer to nil will create a noop tracer and insert it into the context.
func SetTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("")
	}
	if existing, ok := ctx.Value(ctxKey{}).(trace.Tracer); ok {
		if existing == tracer {
			// Do not store same object twice.
			return ctx
		}
	}
	return context.WithValue(ctx, ctxKey{}, tracer)
}

// Start is a shortcut for retrieving the context tracer and calling Start.
// Start creates a span and a context.Context containing the newly-created span.
//
// If the current context does not contain a tracer then a new no-op tracer will be created for the new context.
// See go.opentelemetry.io/otel/trace.Tracer.Start for more information on the Start function.
func Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return TracerFromCtx(ctx).Start(ctx, spanName, opts...)
}

// EndWithStatus sets the span status from err and ends the span.
func EndWithStatus(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// SetSpanError is a helper function to set the span error from a serum-coded error
func SetSpanError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String(AttrKeyCkErrorCode, serum.Code(err)),
	)
	span.SetStatus(codes.Error, err.Error())
}
