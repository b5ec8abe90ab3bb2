// Package task defines the to-do item entity.
package task

import (
	"fmt"

	"github.com/google/uuid"
)

// Task represents a single to-do item.
type Task struct {
	// ID uniquely identifies the task. Assigned at creation, never reassigned.
	ID string `json:"id"`

	// Title is the user-supplied text. May be empty by construction;
	// callers decide whether to reject empty input.
	Title string `json:"title"`

	// Completed reports whether the task has been marked done.
	Completed bool `json:"completed"`
}

// New creates a Task with a fresh unique ID and Completed set to false.
func New(title string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Render returns the human-readable form of the task:
// "<title> - ✅" when completed, "<title> - ❌" otherwise.
func (t Task) Render() string {
	mark := "❌"
	if t.Completed {
		mark = "✅"
	}
	return fmt.Sprintf("%s - %s", t.Title, mark)
}
