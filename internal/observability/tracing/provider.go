package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitTracerProvider installs a global OpenTelemetry tracer provider tagged
// with the given service name. Span export is left to whatever processors
// the deployment wires in; without one, spans are still propagated and
// recorded in-process.
//
// The returned shutdown function flushes and stops the provider and should
// be deferred by the caller.
func InitTracerProvider(serviceName string) func(context.Context) error {
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown
}
