// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package healthcheck

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"website-monitor/internal/metrics"
	"website-monitor/internal/probe"
)

// DefaultDelay is the pause between two probes. It is a yield point, not a rate limit.
const DefaultDelay = 500 * time.Nanosecond

type Runner struct {
	prober Prober
	delay  time.Duration
	logger zerolog.Logger
}

func NewRunner(prober Prober, delay time.Duration, logger zerolog.Logger) *Runner {
	if delay < 0 {
		delay = 0
	}
	return &Runner{
		prober: prober,
		delay:  delay,
		logger: logger,
	}
}

// Run probes every target exactly once, strictly in order, and returns when all probes
// are done. Probe failures end up as DOWN results, never as errors.
func (r *Runner) Run(ctx context.Context, targets []string) Results {
	results := make(Results, len(targets))

	for _, url := range targets {
		r.logger.Debug().Msgf("Performing health check for url %s", url)

		result := r.prober.Probe(ctx, url)
		results[url] = result
		recordMetrics(url, result)

		if result.Up() {
			r.logger.Debug().Msgf("Health check for url %s finished with status %s", url, result.Status)
		} else {
			r.logger.Info().Str("url", url).Str("error", result.Error).Msg("Website is DOWN")
		}

		time.Sleep(r.delay)
	}

	return results
}

func recordMetrics(url string, result probe.Result) {
	metrics.RecordTarget(url, result.Up())

	if result.ConnectTime != nil {
		metrics.RecordProbeStage(metrics.StageConnect, *result.ConnectTime)
	}
	if result.ResponseTime != nil {
		metrics.RecordProbeStage(metrics.StageResponse, *result.ResponseTime)
	}
	if result.BodyReadTime != nil {
		metrics.RecordProbeStage(metrics.StageBody, *result.BodyReadTime)
	}
}
