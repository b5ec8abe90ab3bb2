// Package store defines the persistence interface for task snapshots and
// its backing implementations. The manager never knows which variant it
// holds; all variants save and load the full collection as a single unit.
package store

import (
	"context"

	"tido/internal/task"
)

// Store is the persistence capability for task snapshots.
type Store interface {
	// Save replaces any previously stored snapshot with the given one.
	// The whole collection is written on every call.
	Save(ctx context.Context, tasks []task.Task) error

	// Load returns the most recently saved snapshot. ok is false when
	// nothing is stored. err is reserved for backend faults; callers
	// degrade to an empty collection either way.
	Load(ctx context.Context) (tasks []task.Task, ok bool, err error)
}
