// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"tasker/internal/service"
	"tasker/internal/task"
)

const (
	// StatsSeparator frames the statistics block.
	StatsSeparator = "========================================"

	// taskSeparator frames each task in the detailed view.
	taskSeparator = "============================================================"
)

// Formatter renders a task collection for display. Callers hold this
// abstraction, never a concrete formatter.
type Formatter interface {
	FormatTasks(w io.Writer, tasks []task.Task)
}

// Simple renders one line per task.
// Format: "[x] {I:>3}  {PRIORITY:<6}  {TITLE}[ - DESC][ (due: DATE)]"
// where I is the task's 0-based position in the collection.
type Simple struct{}

// FormatTasks implements Formatter.
func (Simple) FormatTasks(w io.Writer, tasks []task.Task) {
	for i, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %3d  %-6s  %s\n", mark, i, t.Priority, summaryLine(t))
	}
}

// Detailed renders a full block per task, all fields included.
type Detailed struct{}

// FormatTasks implements Formatter.
func (Detailed) FormatTasks(w io.Writer, tasks []task.Task) {
	for i, t := range tasks {
		status := "pending"
		if t.Completed {
			status = "completed"
		}
		due := t.DueDate
		if due == "" {
			due = "not set"
		}

		fmt.Fprintln(w, taskSeparator)
		fmt.Fprintf(w, "Task #%d (%s)\n", i, t.ID)
		fmt.Fprintln(w, taskSeparator)
		fmt.Fprintf(w, "Title:       %s\n", normalizeTitle(t.Title))
		fmt.Fprintf(w, "Description: %s\n", t.Description)
		fmt.Fprintf(w, "Priority:    %s\n", t.Priority)
		fmt.Fprintf(w, "Status:      %s\n", status)
		fmt.Fprintf(w, "Due:         %s\n", due)
		fmt.Fprintf(w, "Created:     %s\n", formatCreated(t.CreatedAt))
	}
}

// FormatStats renders the statistics block.
func FormatStats(w io.Writer, st service.Stats) {
	fmt.Fprintln(w, StatsSeparator)
	fmt.Fprintln(w, "Task statistics")
	fmt.Fprintln(w, StatsSeparator)
	fmt.Fprintf(w, "Total:      %d\n", st.Total)
	fmt.Fprintf(w, "Completed:  %d\n", st.Completed)
	fmt.Fprintf(w, "Pending:    %d\n", st.Pending)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "By priority:")
	fmt.Fprintf(w, "  high:     %d\n", st.ByPriority.High)
	fmt.Fprintf(w, "  medium:   %d\n", st.ByPriority.Medium)
	fmt.Fprintf(w, "  low:      %d\n", st.ByPriority.Low)
	fmt.Fprintln(w, StatsSeparator)
}

// summaryLine builds the one-line summary: title, then description and
// due date when present.
func summaryLine(t task.Task) string {
	var b strings.Builder
	b.WriteString(normalizeTitle(t.Title))
	if t.Description != "" {
		b.WriteString(" - ")
		b.WriteString(t.Description)
	}
	if t.DueDate != "" {
		b.WriteString(" (due: ")
		b.WriteString(t.DueDate)
		b.WriteString(")")
	}
	return b.String()
}

// formatCreated renders a creation timestamp relatively ("3 days ago").
// Timestamps that don't parse as RFC 3339 are shown as stored.
func formatCreated(created string) string {
	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return created
	}
	return humanize.Time(ts)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
