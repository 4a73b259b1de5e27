package storage

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"tasker/internal/task"
)

// FileStorage persists the task collection as a single JSON file: an
// indented array of records. Every Save rewrites the full file; there
// is no locking, so with two concurrent writers the last one wins.
type FileStorage struct {
	fs   afero.Fs
	path string
}

// NewFileStorage creates a file-backed store at path on the OS
// filesystem.
func NewFileStorage(path string) *FileStorage {
	return NewFileStorageFs(afero.NewOsFs(), path)
}

// NewFileStorageFs creates a file-backed store on the given filesystem.
// Tests use this with afero.NewMemMapFs().
func NewFileStorageFs(fs afero.Fs, path string) *FileStorage {
	return &FileStorage{fs: fs, path: path}
}

// Save writes the whole collection to the file, replacing its previous
// contents.
func (s *FileStorage) Save(tasks []task.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode tasks for %s", s.path)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to save tasks to %s", s.path)
	}

	slog.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

// Load reads the whole collection from the file. A missing file is an
// empty collection, not an error.
func (s *FileStorage) Load() ([]task.Task, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []task.Task{}, nil
		}
		return nil, errors.Wrapf(err, "failed to load tasks from %s", s.path)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, errors.Wrapf(ErrDecode, "failed to load tasks from %s: %v", s.path, err)
	}

	slog.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}
