// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package healthcheck

import (
	"context"

	"website-monitor/internal/probe"
)

// Results maps every probed url to the outcome of its probe within one cycle.
type Results map[string]probe.Result

type Prober interface {
	Probe(ctx context.Context, url string) probe.Result
}
