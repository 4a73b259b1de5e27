package storage

import (
	"sync"

	"tasker/internal/task"
)

// MemoryStorage holds the task collection in memory. It exists for
// tests and for runs that need no durability, and is interchangeable
// with FileStorage.
type MemoryStorage struct {
	mu    sync.Mutex
	tasks []task.Task
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Save replaces the stored collection. The slice is copied so the
// caller cannot mutate stored state through a retained reference.
func (s *MemoryStorage) Save(tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]task.Task, len(tasks))
	copy(s.tasks, tasks)
	return nil
}

// Load returns a copy of the stored collection.
func (s *MemoryStorage) Load() ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]task.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks, nil
}
