// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"website-monitor/internal/config"
	"website-monitor/internal/metrics"
)

// Manager is the single owner of the operational state. Every mutation goes through
// Update and is persisted right away.
type Manager struct {
	store  Store
	state  *State
	logger zerolog.Logger
	now    func() time.Time
}

// Load restores the previous state from the store. When there is none, or it cannot be
// read, a fresh inactive state is created and persisted.
func Load(ctx context.Context, store Store, cfg config.Configuration, logger zerolog.Logger) *Manager {
	m := &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	loaded, err := store.Load(ctx)
	if err == nil && loaded != nil {
		logger.Info().Uint64("eventCounter", loaded.EventCounter).Msg("Previous state data loaded")
		m.state = loaded
		return m
	}

	if errors.Is(err, ErrNotFound) {
		logger.Warn().Msg("No previous state found, creating a new one")
	} else {
		logger.Warn().Err(err).Msg("Previous state is unreadable, creating a new one")
	}

	m.state = &State{
		LastUpdated: m.now(),
		ErrorLog:    []ErrorEntry{},
		Config:      SnapshotOf(cfg),
	}

	if err := store.Save(ctx, m.state); err != nil {
		logger.Error().Err(err).Msg("Error occurred while saving new state")
		metrics.RecordPersistFailure()
		m.state.ErrorLog = append(m.state.ErrorLog, NewErrorEntry(KindPersistence, err, m.now()))
	}

	return m
}

// State returns a copy of the current state.
func (m *Manager) State() State {
	return *m.state.Clone()
}

// Update applies mutate, refreshes the timestamp and persists the result. A failed save
// marks the state inactive and appends one persistence entry without saving again.
func (m *Manager) Update(ctx context.Context, mutate func(*State)) error {
	if mutate != nil {
		mutate(m.state)
	}
	m.state.LastUpdated = m.now()

	err := m.store.Save(ctx, m.state)
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to save state")
		metrics.RecordPersistFailure()

		m.state.IsActive = false
		m.state.ErrorLog = append(m.state.ErrorLog, NewErrorEntry(KindPersistence, err, m.now()))
	}

	return err
}

func (m *Manager) RecordError(ctx context.Context, kind Kind, cause error) error {
	entry := NewErrorEntry(kind, cause, m.now())

	return m.Update(ctx, func(st *State) {
		st.ErrorLog = append(st.ErrorLog, entry)
	})
}
