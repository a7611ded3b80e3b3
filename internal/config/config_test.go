// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
debug: true
app:
  intervalSeconds: 1
websites:
  urls:
    - http://ok.example
    - http://down.example
mail:
  transport: kafka
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 1, cfg.App.IntervalSeconds)
	assert.Equal(t, time.Second, cfg.Interval())
	assert.Equal(t, []string{"http://ok.example", "http://down.example"}, cfg.Websites.Urls)
	assert.Equal(t, TransportKafka, cfg.Mail.Transport)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "website-monitor", cfg.AppName)
	assert.Equal(t, 300, cfg.App.IntervalSeconds)
	assert.Empty(t, cfg.Websites.Urls)
	assert.Equal(t, 30*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 500*time.Nanosecond, cfg.Probe.Delay)
	assert.Equal(t, "HealthChecker/1.0", cfg.Probe.UserAgent)
	assert.Equal(t, BackendFile, cfg.State.Backend)
	assert.Equal(t, TransportRelay, cfg.Mail.Transport)
	assert.Equal(t, "Website Monitor Report", cfg.Mail.Subject)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := writeConfig(t, "app: [intervalSeconds: {")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_WrongShapeFails(t *testing.T) {
	path := writeConfig(t, `
app:
  intervalSeconds: "often"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("MONITOR_APP_INTERVALSECONDS", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.App.IntervalSeconds)
}

func TestInitialize_WritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, Initialize(path, map[string]any{"mail.key": "c2VjcmV0"}))
	assert.Error(t, Initialize(path, nil), "existing file must not be overwritten")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "c2VjcmV0", cfg.Mail.Key)
}

func TestValidate(t *testing.T) {
	valid := func() Configuration {
		return Configuration{
			App:      App{IntervalSeconds: 60},
			Websites: Websites{Urls: []string{"https://example.com"}},
			Probe:    Probe{Timeout: time.Second},
			State:    State{Backend: BackendFile},
			Mail:     Mail{Transport: TransportRelay},
		}
	}

	tests := []struct {
		name      string
		modify    func(c *Configuration)
		expectErr bool
	}{
		{"valid", func(c *Configuration) {}, false},
		{"no urls", func(c *Configuration) { c.Websites.Urls = nil }, false},
		{"zero interval", func(c *Configuration) { c.App.IntervalSeconds = 0 }, true},
		{"empty url", func(c *Configuration) { c.Websites.Urls = []string{" "} }, true},
		{"duplicate url", func(c *Configuration) { c.Websites.Urls = []string{"http://a", "http://a"} }, true},
		{"unknown backend", func(c *Configuration) { c.State.Backend = "redis" }, true},
		{"unknown transport", func(c *Configuration) { c.Mail.Transport = "pigeon" }, true},
		{"zero timeout", func(c *Configuration) { c.Probe.Timeout = 0 }, true},
		{"sample ratio above one", func(c *Configuration) { c.Tracing.SampleRatio = 1.5 }, true},
		{"negative sample ratio", func(c *Configuration) { c.Tracing.SampleRatio = -0.1 }, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := valid()
			test.modify(&c)
			err := c.Validate()
			assert.Equal(t, test.expectErr, err != nil, "unexpected result: %v", err)
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "website-monitor", cfg.AppName)
	assert.Equal(t, os.TempDir(), cfg.State.Dir)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, 0.1, cfg.Tracing.SampleRatio)
}
