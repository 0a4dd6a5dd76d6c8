package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/orendahub/go-rental-backend/internal/config"
)

func preserveGlobals(t *testing.T) {
	t.Helper()
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
}

func TestSetupOTel_Disabled_NoOp(t *testing.T) {
	preserveGlobals(t)

	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{
		Enabled:     false,
		Endpoint:    "ignored:4317",
		ServiceName: "svc",
		SampleRatio: 1.0,
	}, "v0.0.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if shutdown == nil {
		t.Fatalf("expected non-nil shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("no-op shutdown returned error: %v", err)
	}
}

func TestSetupOTel_Insecure_SetsProviderAndPropagator(t *testing.T) {
	preserveGlobals(t)

	prevTP := otel.GetTracerProvider()

	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{
		Enabled:     true,
		Insecure:    true,
		Endpoint:    "localhost:4317",
		ServiceName: "svc-insecure",
		SampleRatio: 1.0,
	}, "v0.0.1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	if otel.GetTracerProvider() == prevTP {
		t.Fatalf("expected tracer provider to be replaced")
	}
	fields := otel.GetTextMapPropagator().Fields()
	if len(fields) == 0 {
		t.Fatalf("expected composite propagator with fields, got none")
	}

	ctx, span := otel.Tracer("otel-test").Start(context.Background(), "probe")
	defer span.End()
	if !span.SpanContext().TraceID().IsValid() {
		t.Fatalf("expected a recording tracer from the installed provider")
	}
	if got := trace.SpanFromContext(ctx); got != span {
		t.Fatalf("expected span to be carried on the context")
	}
}
