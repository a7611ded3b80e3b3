// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"website-monitor/internal/healthcheck"
	"website-monitor/internal/probe"
)

const unknownError = "Unknown error"

// Report is the rendered outcome of one cycle. Up + Down always equals Total.
type Report struct {
	Text  string `json:"text"`
	Total int    `json:"total"`
	Up    int    `json:"up"`
	Down  int    `json:"down"`
}

// Render turns the results of one cycle into a human-readable report. Entries are
// ordered by url so that equal inputs always produce equal text.
func Render(results healthcheck.Results) Report {
	urls := make([]string, 0, len(results))
	for url := range results {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	var builder strings.Builder
	var up, down int

	builder.WriteString("Website Health Check Report:\n\n")

	for _, url := range urls {
		result := results[url]

		fmt.Fprintf(&builder, "URL: %s\n", url)
		fmt.Fprintf(&builder, "  Status: %s\n", result.Status)

		if result.Up() {
			up++
			writeTimings(&builder, result)
		} else {
			down++
			message := result.Error
			if message == "" {
				message = unknownError
			}
			fmt.Fprintf(&builder, "  Error: %s\n", message)
		}

		builder.WriteString("\n")
	}

	builder.WriteString("\nSummary:\n")
	fmt.Fprintf(&builder, "  Total Websites Checked: %d\n", len(results))
	fmt.Fprintf(&builder, "  Total UP: %d\n", up)
	fmt.Fprintf(&builder, "  Total DOWN: %d\n\n", down)

	return Report{
		Text:  builder.String(),
		Total: len(results),
		Up:    up,
		Down:  down,
	}
}

func writeTimings(builder *strings.Builder, result probe.Result) {
	fmt.Fprintf(builder, "  Connect Time: %d ms\n", millis(result.ConnectTime))
	fmt.Fprintf(builder, "  Total Response Time: %d ms\n", millis(result.ResponseTime))
	fmt.Fprintf(builder, "  Body Read Time: %d ms\n", millis(result.BodyReadTime))

	if result.StatusCode != 0 {
		fmt.Fprintf(builder, "  HTTP Status: %d\n", result.StatusCode)
	}
}

// millis displays an absent timing as 0.
func millis(d *time.Duration) int64 {
	if d == nil {
		return 0
	}
	return d.Milliseconds()
}
