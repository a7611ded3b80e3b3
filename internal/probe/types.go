// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package probe

import "time"

type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// Result is the outcome of a single probe. Timings are nil when the stage was never
// measured; Error is empty unless the probe is DOWN.
type Result struct {
	Status       Status         `json:"status"`
	ConnectTime  *time.Duration `json:"connectTime,omitempty"`
	ResponseTime *time.Duration `json:"responseTime,omitempty"`
	BodyReadTime *time.Duration `json:"bodyReadTime,omitempty"`
	StatusCode   int            `json:"statusCode,omitempty"`
	Error        string         `json:"error,omitempty"`
}

func (r Result) Up() bool {
	return r.Status == StatusUp
}
