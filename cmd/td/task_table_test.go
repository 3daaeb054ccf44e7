package main

import (
	"strings"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/registry"
	"github.com/taskdeck/taskdeck/task"
)

func noopHighlight(id string, prefixLen int) string {
	return id
}

func TestFormatTaskTable(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 1)
	tasks := []task.Task{
		{
			ID:        "aaaa1111",
			Title:     "Ship release",
			Priority:  task.PriorityHigh,
			Category:  "work",
			Tags:      []string{"urgent"},
			DueDate:   &due,
			CreatedAt: now,
		},
		{
			ID:        "bbbb2222",
			Title:     "Buy milk",
			Completed: true,
			Priority:  task.PriorityLow,
			CreatedAt: now,
		},
	}

	got := formatTaskTable(tasks, registry.Default(), noopHighlight, now)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("expected header row, got %q", lines[0])
	}

	first := lines[1]
	for _, want := range []string{"aaaa1111", "open", "high", "tomorrow", "Work", "Urgent", "Ship release"} {
		if !strings.Contains(first, want) {
			t.Errorf("expected first row to contain %q, got %q", want, first)
		}
	}

	second := lines[2]
	for _, want := range []string{"bbbb2222", "done", "low", "Buy milk"} {
		if !strings.Contains(second, want) {
			t.Errorf("expected second row to contain %q, got %q", want, second)
		}
	}
}

func TestFormatTaskTable_SubtaskProgress(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{
		{
			ID:    "aaaa1111",
			Title: "Plan trip",
			Subtasks: []task.Subtask{
				{ID: "sub1", Title: "Book flight", Completed: true},
				{ID: "sub2", Title: "Pack"},
			},
			CreatedAt: now,
		},
	}

	got := formatTaskTable(tasks, registry.Default(), noopHighlight, now)

	if !strings.Contains(got, "open 1/2") {
		t.Errorf("expected subtask progress in status, got %q", got)
	}
}

func TestFormatTaskTable_UnknownReferencesFallBackToIDs(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{
		{ID: "aaaa1111", Title: "X", Category: "ghost", Tags: []string{"phantom"}, CreatedAt: now},
	}

	got := formatTaskTable(tasks, registry.Default(), noopHighlight, now)

	if !strings.Contains(got, "ghost") || !strings.Contains(got, "phantom") {
		t.Errorf("expected raw IDs for unknown references, got %q", got)
	}
}

func TestFormatStatsTable(t *testing.T) {
	stats := []task.CategoryStat{
		{Category: registry.Category{ID: "work", Name: "Work", Color: "#3B82F6"}, Total: 3, Completed: 1, Pending: 2},
		{Category: registry.Category{ID: "health", Name: "Health", Color: "#EF4444"}, Total: 0, Completed: 0, Pending: 0},
	}

	got := formatStatsTable(stats)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines: %q", len(lines), got)
	}
	if !strings.Contains(lines[1], "Work") || !strings.Contains(lines[1], "3") {
		t.Errorf("expected work counts, got %q", lines[1])
	}
}
