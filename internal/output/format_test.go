package output_test

import (
	"bytes"
	"testing"

	"tasker/internal/output"
	"tasker/internal/service"
	"tasker/internal/task"
	"tasker/internal/testutil"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{
			ID:          "a1",
			Title:       "Write documentation",
			Description: "draft the guide",
			Priority:    task.PriorityHigh,
			DueDate:     "2026-09-01",
			CreatedAt:   "2026-08-20T10:00:00Z",
		},
		{
			ID:        "b2",
			Title:     "Fix bug",
			Priority:  task.PriorityMedium,
			Completed: true,
			CreatedAt: "2026-08-21T11:30:00Z",
		},
		{
			ID:        "c3",
			Title:     "Update docs",
			Priority:  task.PriorityLow,
			CreatedAt: "2026-08-22T09:15:00Z",
		},
	}
}

func TestSimple(t *testing.T) {
	var buf bytes.Buffer
	output.Simple{}.FormatTasks(&buf, sampleTasks())

	expected := "[ ]   0  high    Write documentation - draft the guide (due: 2026-09-01)\n" +
		"[x]   1  medium  Fix bug\n" +
		"[ ]   2  low     Update docs\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestSimple_NormalizesTitle(t *testing.T) {
	var buf bytes.Buffer
	output.Simple{}.FormatTasks(&buf, []task.Task{
		{ID: "x", Title: "   ", Priority: task.PriorityMedium},
		{ID: "y", Title: "multi\nline", Priority: task.PriorityMedium},
	})

	expected := "[ ]   0  medium  (untitled)\n" +
		"[ ]   1  medium  multi line\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestDetailed(t *testing.T) {
	var buf bytes.Buffer

	// A non-RFC 3339 timestamp is shown as stored, which keeps this
	// test independent of the current time.
	output.Detailed{}.FormatTasks(&buf, []task.Task{
		{
			ID:          "a1",
			Title:       "Write documentation",
			Description: "draft the guide",
			Priority:    task.PriorityHigh,
			DueDate:     "2026-09-01",
			CreatedAt:   "2026-08-20 10:00",
		},
	})

	expected := "============================================================\n" +
		"Task #0 (a1)\n" +
		"============================================================\n" +
		"Title:       Write documentation\n" +
		"Description: draft the guide\n" +
		"Priority:    high\n" +
		"Status:      pending\n" +
		"Due:         2026-09-01\n" +
		"Created:     2026-08-20 10:00\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestDetailed_CompletedNoDue(t *testing.T) {
	var buf bytes.Buffer
	output.Detailed{}.FormatTasks(&buf, []task.Task{
		{ID: "b2", Title: "Fix bug", Priority: task.PriorityMedium, Completed: true, CreatedAt: "2026-08-21 11:30"},
	})

	got := buf.String()
	if !bytes.Contains([]byte(got), []byte("Status:      completed\n")) {
		t.Errorf("expected completed status, got %q", got)
	}
	if !bytes.Contains([]byte(got), []byte("Due:         not set\n")) {
		t.Errorf("expected 'not set' due date, got %q", got)
	}
}

func TestFormatStats(t *testing.T) {
	var buf bytes.Buffer
	output.FormatStats(&buf, service.Stats{
		Total:     3,
		Completed: 1,
		Pending:   2,
		ByPriority: service.PriorityCounts{
			High:   2,
			Medium: 1,
			Low:    0,
		},
	})

	testutil.Golden(t, "stats", buf.Bytes())
}
