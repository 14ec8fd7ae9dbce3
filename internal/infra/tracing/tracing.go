package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc flushes pending spans and releases the exporter
type ShutdownFunc func(ctx context.Context) error

// Config selects whether spans are exported and where to
type Config struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	Insecure    bool
}

func noopShutdown(context.Context) error { return nil }

// InitTracerProvider installs a batching OTLP gRPC tracer provider as the global provider.
// When tracing is disabled the global no-op provider is left untouched.
func InitTracerProvider(ctx context.Context, config Config) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !config.Enabled {
		return noopShutdown, nil
	}

	options := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(config.Endpoint)}
	if config.Insecure {
		options = append(options, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, options...)
	if err != nil {
		return noopShutdown, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", config.ServiceName),
		)),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
