// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"sync/atomic"
	"time"

	"website-monitor/internal/report"
	"website-monitor/internal/state"
)

// View is the read-only picture of the monitor served by the API.
type View struct {
	State       state.State    `json:"state"`
	Report      *report.Report `json:"report,omitempty"`
	PublishedAt time.Time      `json:"publishedAt"`
}

// Holder stores the latest view. The orchestrator publishes, any goroutine may read.
type Holder struct {
	current atomic.Pointer[View]
}

func NewHolder() *Holder {
	return &Holder{}
}

// Publish replaces the current view. A nil report keeps the previously published one.
func (h *Holder) Publish(st state.State, rep *report.Report) {
	if rep == nil {
		if previous := h.current.Load(); previous != nil {
			rep = previous.Report
		}
	}

	h.current.Store(&View{
		State:       st,
		Report:      rep,
		PublishedAt: time.Now(),
	})
}

// Get returns the latest view, or nil if nothing was published yet.
func (h *Holder) Get() *View {
	return h.current.Load()
}
