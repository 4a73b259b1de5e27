// Package task defines the task record and its priority enumeration.
package task

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidPriority is returned when a priority value is outside the
// allowed enumeration.
var ErrInvalidPriority = errors.New("priority must be one of: low, medium, high")

// Priority is the urgency level of a task.
type Priority string

// Allowed priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the allowed priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority converts a raw string into a Priority.
// An empty string resolves to the default (medium).
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(s)
	if !p.Valid() {
		return "", errors.Wrapf(ErrInvalidPriority, "%q", s)
	}
	return p, nil
}

// Task represents a single task record.
// ID and CreatedAt are generated at creation and never change; the
// update path in the service leaves them untouched.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"due_date"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at"`
}

// New creates a task with a generated ID and creation timestamp.
// The priority is validated against the enumeration; construction fails
// on any value outside it. The due date format is not validated.
func New(title, description string, priority Priority, dueDate string) (Task, error) {
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return Task{}, errors.Wrapf(ErrInvalidPriority, "%q", priority)
	}
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}, nil
}
