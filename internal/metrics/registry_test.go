// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTarget(t *testing.T) {
	SetEnabled(true)

	RecordTarget("http://up.example", true)
	RecordTarget("http://down.example", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(targetUp.WithLabelValues("http://up.example")))
	assert.Equal(t, float64(0), testutil.ToFloat64(targetUp.WithLabelValues("http://down.example")))
}

func TestRecordCycle_Disabled(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	before := testutil.ToFloat64(cycles)
	RecordCycle(10)
	assert.Equal(t, before, testutil.ToFloat64(cycles))
}

func TestRecordCycle(t *testing.T) {
	SetEnabled(true)

	before := testutil.ToFloat64(cycles)
	RecordCycle(7)
	assert.Equal(t, before+1, testutil.ToFloat64(cycles))
	assert.Equal(t, float64(7), testutil.ToFloat64(eventCounter))
}

func TestRegistry_GathersMonitorMetrics(t *testing.T) {
	SetEnabled(true)
	RecordPersistFailure()

	families, err := Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "website_monitor_cycles_total")
	assert.Contains(t, names, "website_monitor_state_persist_failures_total")
}

func TestNewPrometheusMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/metrics", NewPrometheusMiddleware())

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Contains(t, string(body), "website_monitor_event_counter")
}
