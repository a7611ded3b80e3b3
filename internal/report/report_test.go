// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"website-monitor/internal/healthcheck"
	"website-monitor/internal/probe"
	"website-monitor/internal/test"
)

func TestRender_MixedResults(t *testing.T) {
	results := healthcheck.Results{
		"https://up.example":   test.UpResult(12 * time.Millisecond),
		"https://down.example": test.DownResult("dial tcp: connection refused"),
	}

	rep := Render(results)

	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, 1, rep.Up)
	assert.Equal(t, 1, rep.Down)
	assert.True(t, strings.HasPrefix(rep.Text, "Website Health Check Report:\n\n"))
	assert.Contains(t, rep.Text, "URL: https://up.example\n  Status: UP\n  Connect Time: 12 ms\n  Total Response Time: 12 ms\n  Body Read Time: 12 ms\n  HTTP Status: 200\n")
	assert.Contains(t, rep.Text, "URL: https://down.example\n  Status: DOWN\n  Error: dial tcp: connection refused\n")
	assert.Contains(t, rep.Text, "Total Websites Checked: 2")
	assert.Contains(t, rep.Text, "Total UP: 1")
	assert.Contains(t, rep.Text, "Total DOWN: 1")
}

func TestRender_Empty(t *testing.T) {
	rep := Render(healthcheck.Results{})

	assert.Equal(t, 0, rep.Total)
	assert.Equal(t, 0, rep.Up)
	assert.Equal(t, 0, rep.Down)
	assert.Contains(t, rep.Text, "Total Websites Checked: 0")
	assert.NotContains(t, rep.Text, "URL:")
}

func TestRender_MissingValuesUseDefaults(t *testing.T) {
	results := healthcheck.Results{
		"https://up.example":   {Status: probe.StatusUp},
		"https://down.example": {Status: probe.StatusDown},
	}

	rep := Render(results)

	assert.Contains(t, rep.Text, "  Connect Time: 0 ms\n  Total Response Time: 0 ms\n  Body Read Time: 0 ms\n")
	assert.NotContains(t, rep.Text, "HTTP Status")
	assert.Contains(t, rep.Text, "  Error: Unknown error\n")
}

func TestRender_IsDeterministic(t *testing.T) {
	results := healthcheck.Results{
		"https://c.example": test.UpResult(time.Millisecond),
		"https://a.example": test.DownResult("timeout"),
		"https://b.example": test.UpResult(2 * time.Millisecond),
	}

	first := Render(results)
	second := Render(results)

	assert.Equal(t, first, second)
	assert.Less(t, strings.Index(first.Text, "https://a.example"), strings.Index(first.Text, "https://b.example"))
	assert.Less(t, strings.Index(first.Text, "https://b.example"), strings.Index(first.Text, "https://c.example"))
}

func TestRender_CountsAlwaysAddUp(t *testing.T) {
	results := healthcheck.Results{}
	for i, url := range []string{"https://1.example", "https://2.example", "https://3.example", "https://4.example"} {
		if i%2 == 0 {
			results[url] = test.UpResult(time.Millisecond)
		} else {
			results[url] = test.DownResult("refused")
		}
	}

	rep := Render(results)

	assert.Equal(t, len(results), rep.Total)
	assert.Equal(t, rep.Total, rep.Up+rep.Down)
}
