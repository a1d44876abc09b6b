package telemetry

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func setupTracing(t *testing.T) {
	t.Helper()

	prevProvider := otel.GetTracerProvider()
	prevPropagator := otel.GetTextMapPropagator()

	provider := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		otel.SetTracerProvider(prevProvider)
		otel.SetTextMapPropagator(prevPropagator)
		_ = provider.Shutdown(context.Background())
	})
}

func TestHeaderCarrier(t *testing.T) {
	t.Run("get and set round-trip", func(t *testing.T) {
		carrier := HeaderCarrier(amqp.Table{})
		carrier.Set("traceparent", "00-abc-def-01")

		assert.Equal(t, "00-abc-def-01", carrier.Get("traceparent"))
		assert.Equal(t, []string{"traceparent"}, carrier.Keys())
	})

	t.Run("missing key yields empty string", func(t *testing.T) {
		carrier := HeaderCarrier(amqp.Table{})
		assert.Empty(t, carrier.Get("traceparent"))
	})

	t.Run("non-string value yields empty string", func(t *testing.T) {
		carrier := HeaderCarrier(amqp.Table{"x-redelivery-count": int64(3)})
		assert.Empty(t, carrier.Get("x-redelivery-count"))
	})
}

func TestInjectExtractHeaders(t *testing.T) {
	setupTracing(t)

	t.Run("span context survives the bus", func(t *testing.T) {
		ctx, span := StartSpan(context.Background(), "order.create")
		defer span.End()

		headers := InjectHeaders(ctx, nil)
		require.Contains(t, headers, "traceparent")

		extracted := ExtractHeaders(context.Background(), headers)
		remote := trace.SpanContextFromContext(extracted)
		assert.Equal(t, span.SpanContext().TraceID(), remote.TraceID())
	})

	t.Run("nil headers extract to same context", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, ExtractHeaders(ctx, nil))
	})

	t.Run("inject without active span leaves no trace headers", func(t *testing.T) {
		headers := InjectHeaders(context.Background(), amqp.Table{"custom": "kept"})
		assert.Equal(t, "kept", headers["custom"])
		assert.NotContains(t, headers, "traceparent")
	})
}

func TestStartSpanHelpers(t *testing.T) {
	setupTracing(t)

	t.Run("service span naming", func(t *testing.T) {
		ctx, span := StartServiceSpan(context.Background(), "order", "create",
			WithAttribute(SpanAttrOrderID, "abc"),
			WithSpanKind(trace.SpanKindProducer),
		)
		defer span.End()

		assert.True(t, span.SpanContext().IsValid())
		assert.NotEmpty(t, GetTraceID(ctx))
	})

	t.Run("trace id empty without span", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})
}
