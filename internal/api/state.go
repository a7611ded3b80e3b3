// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) getState(c *fiber.Ctx) error {
	view := s.snapshot.Get()
	if view == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "monitor is starting"})
	}

	return c.JSON(fiber.Map{
		"state":       view.State,
		"publishedAt": view.PublishedAt,
	})
}

func (s *Server) getReport(c *fiber.Ctx) error {
	view := s.snapshot.Get()
	if view == nil || view.Report == nil {
		return c.Status(fiber.StatusNotFound).SendString("no report available yet")
	}

	return c.SendString(view.Report.Text)
}
