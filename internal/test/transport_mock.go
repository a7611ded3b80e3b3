// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

type TransportMock struct {
	mock.Mock

	mu       sync.Mutex
	payloads [][]byte
}

func (m *TransportMock) Deliver(ctx context.Context, key string, payload []byte) error {
	m.mu.Lock()
	m.payloads = append(m.payloads, payload)
	m.mu.Unlock()

	args := m.Called(key)
	return args.Error(0)
}

// Payloads returns every payload handed to the transport, delivered or not.
func (m *TransportMock) Payloads() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([][]byte(nil), m.payloads...)
}
