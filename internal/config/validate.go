// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"website-monitor/internal/utils"
)

const (
	fmtErrEmptyConfigOption   = "config field '%s' cannot be empty"
	fmtErrInvalidConfigOption = "config field '%s' has invalid value %q"
)

var (
	backends   = []string{BackendFile, BackendMongo}
	transports = []string{TransportRelay, TransportKafka}
)

func (c Configuration) Validate() error {
	if c.App.IntervalSeconds <= 0 {
		return fmt.Errorf("config field 'app.intervalSeconds' must be positive, got %d", c.App.IntervalSeconds)
	}

	for i, url := range c.Websites.Urls {
		if strings.TrimSpace(url) == "" {
			return fmt.Errorf(fmtErrEmptyConfigOption, fmt.Sprintf("websites.urls[%d]", i))
		}
	}
	if url, ok := utils.Duplicate(c.Websites.Urls); ok {
		return fmt.Errorf("config field 'websites.urls' contains duplicate url %q", url)
	}

	if !utils.Contains(backends, c.State.Backend) {
		return fmt.Errorf(fmtErrInvalidConfigOption, "state.backend", c.State.Backend)
	}

	if !utils.Contains(transports, c.Mail.Transport) {
		return fmt.Errorf(fmtErrInvalidConfigOption, "mail.transport", c.Mail.Transport)
	}

	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("config field 'probe.timeout' must be positive")
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("config field 'tracing.sampleRatio' must be between 0 and 1, got %v", c.Tracing.SampleRatio)
	}

	return nil
}
