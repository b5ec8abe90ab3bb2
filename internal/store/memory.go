package store

import (
	"context"

	"tido/internal/task"
)

// MemoryStore holds the snapshot in process memory only. It starts empty
// and loses everything on exit.
//
// Known quirk, kept deliberately: a saved empty snapshot is
// indistinguishable from never having saved, because Load reports
// "nothing stored" for both.
type MemoryStore struct {
	snapshot []task.Task
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the held snapshot with a copy of the given one.
// It always succeeds.
func (s *MemoryStore) Save(ctx context.Context, tasks []task.Task) error {
	s.snapshot = make([]task.Task, len(tasks))
	copy(s.snapshot, tasks)
	return nil
}

// Load returns the held snapshot, or "nothing stored" while it is empty.
func (s *MemoryStore) Load(ctx context.Context) ([]task.Task, bool, error) {
	if len(s.snapshot) == 0 {
		return nil, false, nil
	}
	out := make([]task.Task, len(s.snapshot))
	copy(out, s.snapshot)
	return out, true, nil
}
