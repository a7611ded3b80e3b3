// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default ./config.yml)")
	rootCmd.AddCommand(initCmd, serveCmd, checkCmd)
}

var rootCmd = &cobra.Command{
	Use:          "website-monitor",
	Short:        "Periodically checks websites and mails an encrypted health report",
	RunE:         startMonitor,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
