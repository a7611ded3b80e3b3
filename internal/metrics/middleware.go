// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewPrometheusMiddleware serves the monitor's private registry in the text exposition format.
func NewPrometheusMiddleware() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{
		Registry: Registry(),
	}))
}
