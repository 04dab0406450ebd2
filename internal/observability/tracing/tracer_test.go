package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTracer(t *testing.T) {
	tracer := GetTracer()
	require.NotNil(t, tracer)

	ctx, span := tracer.Start(context.Background(), "test-span")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
	span.End()
}

func TestInitTracerProvider(t *testing.T) {
	shutdown := InitTracerProvider("newswire-test")
	require.NotNil(t, shutdown)

	_, span := GetTracer().Start(context.Background(), "ingest.Parse")
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}
