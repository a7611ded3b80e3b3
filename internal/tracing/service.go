// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"website-monitor/internal/config"
)

type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error {
	return nil
}

// Initialize installs the global tracer provider. When tracing is disabled the
// default no-op provider stays in place.
func Initialize(ctx context.Context, cfg config.Configuration, logger zerolog.Logger) (ShutdownFunc, error) {
	if !cfg.Tracing.Enabled {
		logger.Debug().Msg("Tracing is disabled")
		return noopShutdown, nil
	}

	exporterOpts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.Tracing.CollectorEndpoint),
	}

	if !cfg.Tracing.Https {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(exporterOpts...))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create OTLP exporter")
		return noopShutdown, err
	}

	providerOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.AppName),
			attribute.String("service.version", cfg.Version),
		)),
		sdktrace.WithSampler(newSampler(cfg.Tracing)),
	}

	tp := sdktrace.NewTracerProvider(providerOpts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)))

	logger.Info().Msgf("Exporting traces to %s", cfg.Tracing.CollectorEndpoint)
	return tp.Shutdown, nil
}

// newSampler records every trace in debug mode and a ratio of root traces otherwise.
func newSampler(cfg config.Tracing) sdktrace.Sampler {
	if cfg.DebugEnabled {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))
}
