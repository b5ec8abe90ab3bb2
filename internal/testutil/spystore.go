// Package testutil provides testing utilities.
package testutil

import (
	"context"

	"tido/internal/task"
)

// SpyStore is an in-memory store.Store for tests. It records every Save
// and supports error injection per method.
type SpyStore struct {
	// Snapshot is the held snapshot. Preset it to simulate stored state.
	Snapshot []task.Task

	// HasSnapshot makes Load report a stored snapshot even when
	// Snapshot is empty.
	HasSnapshot bool

	// SaveCalls counts Save invocations.
	SaveCalls int

	// LoadCalls counts Load invocations.
	LoadCalls int

	// Error injection for testing
	SaveErr error
	LoadErr error
}

// NewSpyStore creates an empty SpyStore.
func NewSpyStore() *SpyStore {
	return &SpyStore{}
}

// Seed presets the snapshot so Load reports it as stored.
func (s *SpyStore) Seed(tasks ...task.Task) {
	s.Snapshot = append([]task.Task(nil), tasks...)
	s.HasSnapshot = true
}

// Save implements store.Store.
func (s *SpyStore) Save(ctx context.Context, tasks []task.Task) error {
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Snapshot = append([]task.Task(nil), tasks...)
	s.HasSnapshot = true
	return nil
}

// Load implements store.Store.
func (s *SpyStore) Load(ctx context.Context) ([]task.Task, bool, error) {
	s.LoadCalls++
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	if !s.HasSnapshot {
		return nil, false, nil
	}
	return append([]task.Task(nil), s.Snapshot...), true, nil
}
