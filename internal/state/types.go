// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"time"

	"github.com/google/uuid"
	"website-monitor/internal/config"
)

type Kind string

const (
	KindConfig      Kind = "config"
	KindPersistence Kind = "persistence"
	KindEncryption  Kind = "encryption"
	KindSend        Kind = "send"
)

type ErrorEntry struct {
	ID        string    `json:"id" bson:"id"`
	Kind      Kind      `json:"kind" bson:"kind"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ConfigSnapshot is the part of the configuration kept alongside the state. It never
// carries secrets.
type ConfigSnapshot struct {
	AppName         string   `json:"appName" bson:"appName"`
	Version         string   `json:"version" bson:"version"`
	Debug           bool     `json:"debug" bson:"debug"`
	IntervalSeconds int      `json:"intervalSeconds" bson:"intervalSeconds"`
	Urls            []string `json:"urls" bson:"urls"`
	Backend         string   `json:"backend" bson:"backend"`
}

type State struct {
	IsActive     bool           `json:"isActive" bson:"isActive"`
	LastUpdated  time.Time      `json:"lastUpdated" bson:"lastUpdated"`
	EventCounter uint64         `json:"eventCounter" bson:"eventCounter"`
	ErrorLog     []ErrorEntry   `json:"errorLog" bson:"errorLog"`
	Data         string         `json:"data" bson:"data"`
	Config       ConfigSnapshot `json:"config" bson:"config"`
}

func NewErrorEntry(kind Kind, err error, now time.Time) ErrorEntry {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}

	return ErrorEntry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		Timestamp: now,
	}
}

func SnapshotOf(cfg config.Configuration) ConfigSnapshot {
	return ConfigSnapshot{
		AppName:         cfg.AppName,
		Version:         cfg.Version,
		Debug:           cfg.Debug,
		IntervalSeconds: cfg.App.IntervalSeconds,
		Urls:            append([]string(nil), cfg.Websites.Urls...),
		Backend:         cfg.State.Backend,
	}
}

// Clone returns a deep copy that shares no slices with s.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	clone := *s
	clone.ErrorLog = append([]ErrorEntry(nil), s.ErrorLog...)
	clone.Config.Urls = append([]string(nil), s.Config.Urls...)
	return &clone
}
