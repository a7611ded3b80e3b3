// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"website-monitor/internal/config"
)

// ErrNotFound is returned by a Store that holds no state yet.
var ErrNotFound = errors.New("state not found")

type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

// PathFor returns the location of the state file for the given configuration.
func PathFor(cfg config.Configuration) string {
	if cfg.State.Path != "" {
		return cfg.State.Path
	}

	dir := cfg.State.Dir
	if dir == "" {
		dir = os.TempDir()
	}

	return filepath.Join(dir, fmt.Sprintf(".%s.state", cfg.AppName))
}

// FileStore keeps the state as a JSON document on the local disk. Writes go through a
// temporary file and a rename, so readers never see a partially written state.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) (*State, error) {
	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not read state file %s: %w", s.path, err)
	}

	var st State
	if err := json.Unmarshal(bytes, &st); err != nil {
		return nil, fmt.Errorf("could not decode state file %s: %w", s.path, err)
	}

	return &st, nil
}

func (s *FileStore) Save(ctx context.Context, st *State) error {
	bytes, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create state directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary state file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(bytes); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write state: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not flush state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace state file %s: %w", s.path, err)
	}

	return nil
}
