// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"website-monitor/internal/config"
	"website-monitor/internal/healthcheck"
	"website-monitor/internal/log"
	"website-monitor/internal/probe"
	"website-monitor/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probes every website once and prints the report",
	RunE:  checkOnce,
}

func checkOnce(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := log.New(cfg.Debug, os.Stderr)
	prober := probe.New(probe.Options{
		Timeout:   cfg.Probe.Timeout,
		UserAgent: cfg.Probe.UserAgent,
	}, logger)

	results := healthcheck.NewRunner(prober, cfg.Probe.Delay, logger).Run(cmd.Context(), cfg.Websites.Urls)
	rep := report.Render(results)

	_, err = fmt.Fprint(cmd.OutOrStdout(), rep.Text)
	return err
}
