// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"website-monitor/internal/config"
	"website-monitor/internal/test"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
		initUrls = nil
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCheck_PrintsReport(t *testing.T) {
	up := test.NewOkServer(t)
	downUrl := test.ClosedServerUrl(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	content := fmt.Sprintf("websites:\n  urls:\n    - %s\n    - %s\nprobe:\n  timeout: 2s\n", up.URL, downUrl)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out := execute(t, "check", "--config", path)

	assert.Contains(t, out, "Website Health Check Report:")
	assert.Contains(t, out, "Total Websites Checked: 2")
	assert.Contains(t, out, "Total UP: 1")
	assert.Contains(t, out, "Total DOWN: 1")
}

func TestInit_WritesConfigWithKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	out := execute(t, "init", "--config", path, "--urls", "https://example.com")
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com"}, cfg.Websites.Urls)
	assert.NotEmpty(t, cfg.Mail.Key)
}
