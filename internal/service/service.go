// Package service implements the business rules for task manipulation.
// It is the only component that mutates the collection, always through
// a full load, compute, save cycle against the injected storage.
package service

import (
	"strings"

	"github.com/pkg/errors"

	"tasker/internal/storage"
	"tasker/internal/task"
)

// Update is a closed set of optional field overwrites for a task.
// A nil field is left unchanged. ID and CreatedAt can never be updated.
type Update struct {
	Title       *string
	Description *string
	Priority    *task.Priority
	DueDate     *string
}

// PriorityCounts holds per-priority task counts.
type PriorityCounts struct {
	Low    int
	Medium int
	High   int
}

// Stats holds aggregate counts over the current task collection.
type Stats struct {
	Total      int
	Completed  int
	Pending    int
	ByPriority PriorityCounts
}

// Service coordinates task operations on top of a storage backend.
// It holds no state of its own: every operation reloads the collection
// from storage, so two services sharing a backend never diverge.
type Service struct {
	store storage.Storage
}

// New creates a service backed by store.
func New(store storage.Storage) *Service {
	return &Service{store: store}
}

// Add appends t to the collection and persists it.
// IDs are generated at construction, so no duplicate check is made.
func (s *Service) Add(t task.Task) error {
	tasks, err := s.store.Load()
	if err != nil {
		return err
	}
	tasks = append(tasks, t)
	return s.store.Save(tasks)
}

// All returns the full collection in storage order.
func (s *Service) All() ([]task.Task, error) {
	return s.store.Load()
}

// ByID returns the task with the given id, or nil if there is none.
func (s *Service) ByID(id string) (*task.Task, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// ByIndex returns the task at position i, or nil if i is out of range.
func (s *Service) ByIndex(i int) (*task.Task, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(tasks) {
		return nil, nil
	}
	return &tasks[i], nil
}

// Update overwrites the fields present in u on the task with the given
// id, preserving ID and CreatedAt, and persists the collection.
// A priority update is validated against the enumeration and rejected
// if invalid. Returns false when no task has the id; nothing is
// persisted in that case.
func (s *Service) Update(id string, u Update) (bool, error) {
	if u.Priority != nil && !u.Priority.Valid() {
		return false, errors.Wrapf(task.ErrInvalidPriority, "%q", *u.Priority)
	}

	return s.mutate(id, func(t *task.Task) {
		if u.Title != nil {
			t.Title = *u.Title
		}
		if u.Description != nil {
			t.Description = *u.Description
		}
		if u.Priority != nil {
			t.Priority = *u.Priority
		}
		if u.DueDate != nil {
			t.DueDate = *u.DueDate
		}
	})
}

// Complete marks the task with the given id as completed.
func (s *Service) Complete(id string) (bool, error) {
	return s.mutate(id, func(t *task.Task) {
		t.Completed = true
	})
}

// CompleteByIndex marks the task at position i as completed.
// An out-of-range index is a not-found; nothing is persisted.
func (s *Service) CompleteByIndex(i int) (bool, error) {
	t, err := s.ByIndex(i)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}
	return s.Complete(t.ID)
}

// Delete removes every task matching id. Duplicates should not occur
// under normal id generation, but removal covers them all if they do.
// Persists only when at least one task was removed.
func (s *Service) Delete(id string) (bool, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return false, err
	}

	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return false, nil
	}
	return true, s.store.Save(kept)
}

// DeleteByIndex removes the task at position i, shifting later tasks
// down by one. An out-of-range index is a not-found.
func (s *Service) DeleteByIndex(i int) (bool, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return false, err
	}
	if i < 0 || i >= len(tasks) {
		return false, nil
	}
	tasks = append(tasks[:i], tasks[i+1:]...)
	return true, s.store.Save(tasks)
}

// Search returns the tasks whose title or description contains keyword,
// case-insensitively, in storage order.
func (s *Service) Search(keyword string) ([]task.Task, error) {
	kw := strings.ToLower(keyword)
	return s.Filter(func(t task.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), kw) ||
			strings.Contains(strings.ToLower(t.Description), kw)
	})
}

// Filter returns the tasks matching pred, in storage order.
func (s *Service) Filter(pred func(task.Task) bool) ([]task.Task, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	matched := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Stats computes aggregate counts in a single pass over the collection.
func (s *Service) Stats() (Stats, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
		switch t.Priority {
		case task.PriorityLow:
			st.ByPriority.Low++
		case task.PriorityMedium:
			st.ByPriority.Medium++
		case task.PriorityHigh:
			st.ByPriority.High++
		}
	}
	st.Pending = st.Total - st.Completed
	return st, nil
}

// mutate loads the collection, applies fn to the first task matching
// id, and persists. Returns false without persisting when id is absent.
func (s *Service) mutate(id string, fn func(*task.Task)) (bool, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return false, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			fn(&tasks[i])
			return true, s.store.Save(tasks)
		}
	}
	return false, nil
}
