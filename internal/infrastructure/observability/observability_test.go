package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"film-platform/studio-api/internal/config"
)

func TestSetupDisabled(t *testing.T) {
	for _, cfg := range []*config.Config{
		{EnableTracing: false, OTLPEndpoint: "collector:4318"},
		{EnableTracing: true},
	} {
		shutdown, err := Setup(context.Background(), cfg, zerolog.Nop())
		require.NoError(t, err)
		require.NotNil(t, shutdown)
		assert.NoError(t, shutdown(context.Background()))
	}
}

func TestStartProviderSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, span := StartProviderSpan(context.Background(), "replicate", "meta/llama-2-7b-chat")
	RecordError(span, nil)
	RecordError(span, errors.New("prediction failed"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "replicate.run", got.Name())
	assert.Equal(t, trace.SpanKindClient, got.SpanKind())
	assert.Contains(t, got.Attributes(), attribute.String("provider.model", "meta/llama-2-7b-chat"))
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "prediction failed", got.Status().Description)
	require.Len(t, got.Events(), 1)
}
