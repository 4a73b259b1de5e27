// Package testutil provides testing utilities.
package testutil

import (
	"tasker/internal/storage"
	"tasker/internal/task"
)

// SpyStorage wraps a Storage and counts calls, so tests can assert
// that an operation did or did not persist.
type SpyStorage struct {
	Inner storage.Storage

	SaveCalls int
	LoadCalls int
}

// NewSpyStorage wraps inner in a call-counting storage.
func NewSpyStorage(inner storage.Storage) *SpyStorage {
	return &SpyStorage{Inner: inner}
}

// Save implements storage.Storage.
func (s *SpyStorage) Save(tasks []task.Task) error {
	s.SaveCalls++
	return s.Inner.Save(tasks)
}

// Load implements storage.Storage.
func (s *SpyStorage) Load() ([]task.Task, error) {
	s.LoadCalls++
	return s.Inner.Load()
}

// FlakyStorage wraps a Storage with error injection.
type FlakyStorage struct {
	Inner storage.Storage

	SaveErr error
	LoadErr error
}

// NewFlakyStorage wraps inner in an error-injecting storage.
func NewFlakyStorage(inner storage.Storage) *FlakyStorage {
	return &FlakyStorage{Inner: inner}
}

// Save implements storage.Storage.
func (s *FlakyStorage) Save(tasks []task.Task) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	return s.Inner.Save(tasks)
}

// Load implements storage.Storage.
func (s *FlakyStorage) Load() ([]task.Task, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Inner.Load()
}
