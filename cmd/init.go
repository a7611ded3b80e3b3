// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"website-monitor/internal/config"
	"website-monitor/internal/notify"
)

var initUrls []string

func init() {
	initCmd.Flags().StringSliceVar(&initUrls, "urls", nil, "websites to monitor")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a default configuration with a fresh mail key",
	RunE:  writeDefaultConfig,
}

func writeDefaultConfig(cmd *cobra.Command, args []string) error {
	key, err := notify.GenerateKey()
	if err != nil {
		return err
	}

	overrides := map[string]any{
		"mail.key": key,
	}
	if len(initUrls) > 0 {
		overrides["websites.urls"] = initUrls
	}

	if err := config.Initialize(configPath, overrides); err != nil {
		return fmt.Errorf("could not write configuration: %w", err)
	}

	target := configPath
	if target == "" {
		target = "config.yml"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", target)
	return err
}
