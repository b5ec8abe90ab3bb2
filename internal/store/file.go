package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tido/internal/task"
)

// FileStore persists task snapshots as a JSON array in a single file.
// Each record carries exactly three fields: id, title, completed.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore creates a FileStore for the given path. It ensures the
// containing directory exists and initializes the file with an empty
// snapshot when absent, so Load never fails just because nothing was
// ever saved.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]\n"), 0600); err != nil {
			return nil, fmt.Errorf("initializing %s: %w", path, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	return &FileStore{path: path, log: logger}, nil
}

// Path returns the file the store writes to.
func (s *FileStore) Path() string {
	return s.path
}

// Save overwrites the entire file with the given snapshot. A nil
// collection is written as zero records, not as absence.
func (s *FileStore) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Load reads and decodes the whole file. A missing, unreadable, or
// undecodable file degrades to "nothing stored"; details go to the log
// rather than interrupting the caller.
func (s *FileStore) Load(ctx context.Context) ([]task.Task, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Warn("task file unreadable, starting empty",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		return nil, false, nil
	}
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warn("task file corrupt, starting empty",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		return nil, false, nil
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, true, nil
}
