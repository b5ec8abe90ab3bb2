// Package manager owns the live task collection and mediates every
// mutation through a store.
package manager

import (
	"context"
	"log/slog"

	"tido/internal/store"
	"tido/internal/task"
)

// Manager holds the authoritative in-memory task collection for the
// process lifetime. Every mutation follows the same pattern: validate,
// mutate the collection, persist the full snapshot.
//
// A mutation stands in memory even when the save that follows it fails;
// the error is returned so callers can report it.
type Manager struct {
	store store.Store
	log   *slog.Logger
	tasks []task.Task
}

// New creates a Manager backed by st, seeding the collection from a
// stored snapshot when one exists. Load faults are logged and degrade
// to an empty collection.
func New(ctx context.Context, st store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{store: st, log: logger}
	tasks, ok, err := st.Load(ctx)
	if err != nil {
		logger.Warn("loading stored tasks failed, starting empty", slog.Any("error", err))
		return m
	}
	if ok {
		m.tasks = tasks
	}
	return m
}

// Tasks returns a copy of the collection in insertion order. Display
// indexes are 1-based positions in this slice. Pure read: no mutation,
// no save.
func (m *Manager) Tasks() []task.Task {
	out := make([]task.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Len returns the number of tasks in the collection.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Add appends a new task built from title and persists the collection.
// The returned error is the save result; the task is in the collection
// regardless.
func (m *Manager) Add(ctx context.Context, title string) (task.Task, error) {
	t := task.New(title)
	m.tasks = append(m.tasks, t)
	return t, m.save(ctx)
}

// Toggle flips the completion flag of the task at the 0-based index and
// persists the collection. An out-of-range index is a no-op: no
// mutation, no save, ok=false.
func (m *Manager) Toggle(ctx context.Context, index int) (task.Task, bool, error) {
	if index < 0 || index >= len(m.tasks) {
		return task.Task{}, false, nil
	}
	m.tasks[index].Completed = !m.tasks[index].Completed
	return m.tasks[index], true, m.save(ctx)
}

// Delete removes the task at the 0-based index, shifting subsequent
// tasks down by one, and persists the collection. An out-of-range index
// is a no-op.
func (m *Manager) Delete(ctx context.Context, index int) (task.Task, bool, error) {
	if index < 0 || index >= len(m.tasks) {
		return task.Task{}, false, nil
	}
	t := m.tasks[index]
	m.tasks = append(m.tasks[:index], m.tasks[index+1:]...)
	return t, true, m.save(ctx)
}

func (m *Manager) save(ctx context.Context) error {
	if err := m.store.Save(ctx, m.tasks); err != nil {
		m.log.Error("saving tasks failed", slog.Any("error", err))
		return err
	}
	return nil
}
