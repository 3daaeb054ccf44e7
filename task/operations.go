package task

import (
	"strings"
	"time"
)

// CreateOptions configures a new task.
type CreateOptions struct {
	// Description provides optional free-text context.
	Description string

	// DueDate is an optional deadline.
	DueDate *time.Time

	// Priority is the importance level. Defaults to PriorityMedium.
	Priority Priority

	// Category optionally references a category registry entry.
	Category string

	// Tags reference tag registry entries; addition order is preserved.
	Tags []string

	// Recurring sets the regeneration cadence. Empty means non-recurring.
	Recurring RecurringType
}

// Create appends a new task with the given title and returns it.
//
// A title that is empty after trimming is a validation no-op: Create returns
// nil and the collection is unchanged.
func (s *Store) Create(title string, opts CreateOptions) *Task {
	if !titleOK(title) {
		return nil
	}
	title = strings.TrimSpace(title)

	now := s.now()
	isRecurring, recurringType := normalizeRecurrence(opts.Recurring != "", opts.Recurring)
	t := Task{
		ID:            GenerateID(title, now),
		Title:         title,
		Description:   opts.Description,
		DueDate:       cloneTime(opts.DueDate),
		Priority:      normalizePriority(opts.Priority),
		Category:      opts.Category,
		Tags:          append([]string{}, opts.Tags...),
		Subtasks:      []Subtask{},
		IsRecurring:   isRecurring,
		RecurringType: recurringType,
		CreatedAt:     now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	s.persist()

	created := t.Clone()
	return &created
}

// Toggle flips the completion state of the task with the given ID and
// returns the updated task, or nil if the ID is unknown.
//
// When an incomplete recurring task becomes complete, the next occurrence is
// computed immediately but appended only after SpawnDelay, as a separate
// mutation with its own save. The spawn is not cancelled if the original is
// deleted in the meantime.
func (s *Store) Toggle(id string) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return nil
	}

	s.tasks[i].Completed = !s.tasks[i].Completed

	if s.tasks[i].Completed && s.tasks[i].IsRecurring && s.tasks[i].RecurringType.IsValid() {
		next := NextOccurrence(s.tasks[i], s.now())
		s.pending.Add(1)
		s.sched.AfterFunc(SpawnDelay, func() {
			defer s.pending.Done()
			s.appendSpawn(next)
		})
	}

	s.persist()

	updated := s.tasks[i].Clone()
	return &updated
}

// appendSpawn adds a regenerated recurring task as a new sibling.
func (s *Store) appendSpawn(t Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	s.persist()
}

// Delete removes the task with the given ID, reporting whether anything
// changed. Unknown IDs are a no-op.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return false
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persist()
	return true
}

// AddSubtask appends a new subtask to the task with the given ID and returns
// it. A blank title or unknown task ID is a no-op returning nil.
func (s *Store) AddSubtask(taskID, title string) *Subtask {
	if !titleOK(title) {
		return nil
	}
	title = strings.TrimSpace(title)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(taskID)
	if i < 0 {
		return nil
	}

	now := s.now()
	sub := Subtask{
		ID:        generateSubtaskID(title, now, len(s.tasks[i].Subtasks)),
		Title:     title,
		CreatedAt: now,
	}
	s.tasks[i].Subtasks = append(s.tasks[i].Subtasks, sub)
	s.persist()

	created := sub
	return &created
}

// ToggleSubtask flips the completion state of one subtask, reporting whether
// anything changed. Unknown IDs are a no-op.
func (s *Store) ToggleSubtask(taskID, subtaskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(taskID)
	if i < 0 {
		return false
	}

	for j := range s.tasks[i].Subtasks {
		if s.tasks[i].Subtasks[j].ID == subtaskID {
			s.tasks[i].Subtasks[j].Completed = !s.tasks[i].Subtasks[j].Completed
			s.persist()
			return true
		}
	}
	return false
}

// DeleteSubtask removes one subtask, leaving its siblings untouched, and
// reports whether anything changed. Unknown IDs are a no-op.
func (s *Store) DeleteSubtask(taskID, subtaskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(taskID)
	if i < 0 {
		return false
	}

	subtasks := s.tasks[i].Subtasks
	for j := range subtasks {
		if subtasks[j].ID == subtaskID {
			s.tasks[i].Subtasks = append(subtasks[:j], subtasks[j+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// ReplaceAll atomically swaps the entire collection. Used by import and by
// clear; it replaces, never merges.
func (s *Store) ReplaceAll(tasks []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = cloneTasks(tasks)
	if s.tasks == nil {
		s.tasks = []Task{}
	}
	s.persist()
}
