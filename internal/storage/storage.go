// Package storage persists and retrieves the full task collection.
package storage

import (
	"github.com/pkg/errors"

	"tasker/internal/task"
)

// ErrDecode is returned by Load when the stored contents are not valid
// serialized task data.
var ErrDecode = errors.New("invalid task data")

// Storage is the persistence abstraction for the task collection.
// The collection is always read and written whole, in order; the
// interface is deliberately minimal so any medium can conform.
type Storage interface {
	// Save replaces the stored collection with tasks.
	Save(tasks []task.Task) error

	// Load returns the stored collection in insertion order.
	// A store that has never been written loads as an empty collection.
	Load() ([]task.Task, error)
}
