// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/rs/zerolog"
	"website-monitor/internal/metrics"
	"website-monitor/internal/snapshot"
)

type Server struct {
	app      *fiber.App
	snapshot *snapshot.Holder
	logger   zerolog.Logger
}

func New(holder *snapshot.Holder, logger zerolog.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
		snapshot: holder,
		logger:   logger,
	}

	s.app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(c *fiber.Ctx) bool {
			return holder.Get() != nil
		},
	}))

	s.app.Get("/metrics", metrics.NewPrometheusMiddleware())

	v1 := s.app.Group("/api/v1")

	v1.Get("/state", s.getState)
	v1.Get("/report", s.getReport)

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(port int) error {
	s.logger.Info().Msgf("Listening on port %d", port)
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
