// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"website-monitor/internal/probe"
)

type ProberMock struct {
	mock.Mock

	mu   sync.Mutex
	urls []string
}

func (m *ProberMock) Probe(ctx context.Context, url string) probe.Result {
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.mu.Unlock()

	args := m.Called(url)
	return args.Get(0).(probe.Result)
}

// Urls returns the probed urls in call order.
func (m *ProberMock) Urls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.urls...)
}
