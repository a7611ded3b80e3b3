// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	probeStageDuration  *prometheus.HistogramVec
	targetUp            *prometheus.GaugeVec
	cycles              prometheus.Counter
	notificationFailure *prometheus.CounterVec
	persistFailures     prometheus.Counter
	eventCounter        prometheus.Gauge

	registry *prometheus.Registry
	enabled  atomic.Bool
)

const namespace = "website_monitor"

const (
	StageConnect  = "connect"
	StageResponse = "response"
	StageBody     = "body"
)

func init() {
	probeStageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:      "probe_stage_duration_seconds",
		Help:      "Duration of the individual probe stages.",
		Namespace: namespace,
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 14),
	}, []string{"stage"})

	targetUp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:      "target_up",
		Help:      "Whether the last probe of a target was UP (1) or DOWN (0).",
		Namespace: namespace,
	}, []string{"url"})

	cycles = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "cycles_total",
		Help:      "The amount of completed health check cycles.",
		Namespace: namespace,
	})

	notificationFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "notification_failures_total",
		Help:      "The amount of failed report notifications.",
		Namespace: namespace,
	}, []string{"kind"})

	persistFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "state_persist_failures_total",
		Help:      "The amount of failed state persist attempts.",
		Namespace: namespace,
	})

	eventCounter = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "event_counter",
		Help:      "The persisted event counter.",
		Namespace: namespace,
	})

	registry = prometheus.NewRegistry()
	registry.MustRegister(probeStageDuration, targetUp, cycles, notificationFailure, persistFailures, eventCounter)

	enabled.Store(true)
}

// SetEnabled toggles recording. Collectors stay registered either way.
func SetEnabled(value bool) {
	enabled.Store(value)
}

func Registry() *prometheus.Registry {
	return registry
}

func RecordProbeStage(stage string, duration time.Duration) {
	if enabled.Load() {
		probeStageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	}
}

func RecordTarget(url string, up bool) {
	if enabled.Load() {
		var value float64
		if up {
			value = 1
		}
		targetUp.With(prometheus.Labels{"url": url}).Set(value)
	}
}

func RecordCycle(counter uint64) {
	if enabled.Load() {
		cycles.Inc()
		eventCounter.Set(float64(counter))
	}
}

func RecordNotificationFailure(kind string) {
	if enabled.Load() {
		notificationFailure.WithLabelValues(kind).Inc()
	}
}

func RecordPersistFailure() {
	if enabled.Load() {
		persistFailures.Inc()
	}
}
