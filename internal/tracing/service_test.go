// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"website-monitor/internal/config"
	"website-monitor/internal/test"
)

func TestInitialize_Disabled(t *testing.T) {
	cfg := test.BuildTestConfig()
	cfg.Tracing.Enabled = false

	shutdown, err := Initialize(context.Background(), cfg, zerolog.Nop())

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitialize_Enabled(t *testing.T) {
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	previousProvider := otel.GetTracerProvider()
	previousPropagator := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(previousProvider)
		otel.SetTextMapPropagator(previousPropagator)
	})

	cfg := test.BuildTestConfig()
	cfg.Tracing.Enabled = true
	cfg.Tracing.CollectorEndpoint = collector.Listener.Addr().String()

	shutdown, err := Initialize(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	ctx, span := otel.Tracer("test").Start(context.Background(), "probe")
	headers := http.Header{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(headers))
	span.End()

	assert.NotEmpty(t, headers.Get("X-B3-TraceId"))
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewSampler(t *testing.T) {
	traceId := trace.TraceID{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	parameters := sdktrace.SamplingParameters{
		ParentContext: context.Background(),
		TraceID:       traceId,
		Name:          "probe",
	}

	debug := newSampler(config.Tracing{DebugEnabled: true, SampleRatio: 0})
	assert.Equal(t, sdktrace.RecordAndSample, debug.ShouldSample(parameters).Decision)

	never := newSampler(config.Tracing{SampleRatio: 0})
	assert.Equal(t, sdktrace.Drop, never.ShouldSample(parameters).Decision)
	assert.Contains(t, never.Description(), "TraceIDRatioBased{0}")

	always := newSampler(config.Tracing{SampleRatio: 1})
	assert.Equal(t, sdktrace.RecordAndSample, always.ShouldSample(parameters).Decision)
}
