package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestInitTracerProviderDisabled(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := InitTracerProvider(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
	if otel.GetTracerProvider() != before {
		t.Error("disabled tracing must not replace the global provider")
	}
}

func TestInitTracerProviderEnabled(t *testing.T) {
	shutdown, err := InitTracerProvider(context.Background(), Config{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		ServiceName: "go-weather-test",
		Insecure:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, span := otel.Tracer("test").Start(context.Background(), "span")
	if !span.SpanContext().IsValid() {
		t.Error("expected a recording span from the sdk provider")
	}
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
