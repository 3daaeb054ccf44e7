// Package task implements the taskdeck task state engine.
//
// The engine owns the authoritative in-memory task collection and the pure
// operations over it: create, toggle, delete, subtask edits, recurrence
// regeneration, filtering, sorting, and per-category statistics. Everything
// user-facing (rendering, input handling) lives elsewhere and calls into
// this package.
//
// The public API mirrors what a presentation layer needs:
//   - Store with Create, Toggle, Delete, AddSubtask, ToggleSubtask,
//     DeleteSubtask, ReplaceAll for the task lifecycle
//   - View, Partition, Stats for querying
//   - Export, DecodeDocument, SaveTasks, LoadTasks for moving the
//     collection in and out of the process
package task

import "time"

// Task represents a single to-do item.
type Task struct {
	// ID is a unique identifier (8-char base32, derived from title + timestamp).
	ID string `json:"id"`

	// Title is the display text of the task. Always non-empty.
	Title string `json:"title"`

	// Description provides optional free-text context.
	Description string `json:"description,omitempty"`

	// Completed reports whether the task has been checked off.
	Completed bool `json:"completed"`

	// DueDate is an optional deadline (nil when unset).
	DueDate *time.Time `json:"dueDate,omitempty"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// Category optionally references an entry in the category registry.
	Category string `json:"category,omitempty"`

	// Tags reference entries in the tag registry, in addition order.
	Tags []string `json:"tags"`

	// Subtasks are owned exclusively by this task.
	Subtasks []Subtask `json:"subtasks"`

	// IsRecurring marks the task for regeneration on completion.
	// Set if and only if RecurringType is set.
	IsRecurring bool `json:"isRecurring,omitempty"`

	// RecurringType is the regeneration cadence (daily, weekly, monthly).
	RecurringType RecurringType `json:"recurringType,omitempty"`

	// CreatedAt is when the task was created. For a recurrence-spawned
	// instance this is the computed next occurrence date.
	CreatedAt time.Time `json:"createdAt"`
}

// Subtask is a checklist item owned by exactly one task.
type Subtask struct {
	// ID is unique within the parent task's subtask list.
	ID string `json:"id"`

	// Title is the display text of the subtask. Always non-empty.
	Title string `json:"title"`

	// Completed reports whether the subtask has been checked off.
	Completed bool `json:"completed"`

	// CreatedAt is when the subtask was added.
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	clone := t
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	if t.Tags != nil {
		clone.Tags = append([]string(nil), t.Tags...)
	}
	if t.Subtasks != nil {
		clone.Subtasks = append([]Subtask(nil), t.Subtasks...)
	}
	return clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

// cloneTasks deep-copies a task slice.
func cloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Clone()
	}
	return out
}
