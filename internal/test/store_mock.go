// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"website-monitor/internal/state"
)

type StoreMock struct {
	mock.Mock
}

func (m *StoreMock) Load(ctx context.Context) (*state.State, error) {
	args := m.Called()
	if st, ok := args.Get(0).(*state.State); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StoreMock) Save(ctx context.Context, st *state.State) error {
	args := m.Called(st.Clone())
	return args.Error(0)
}
