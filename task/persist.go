package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// StorageKey is the key-value store entry holding the task collection.
const StorageKey = "taskdeck/tasks"

// KV is the subset of a key-value store the task engine persists through.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// SaveTasks serializes the collection as a JSON array under StorageKey.
// Dates serialize as RFC 3339 strings.
func SaveTasks(kv KV, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := kv.Set(StorageKey, data); err != nil {
		return fmt.Errorf("store tasks: %w", err)
	}
	return nil
}

// LoadTasks reads the collection back from the store, reviving date fields
// defensively. An absent entry yields an empty collection. A record whose
// createdAt will not parse gets the current time instead; a record that is
// not an object at all is skipped. The load never fails because of one bad
// record.
func LoadTasks(kv KV, now time.Time) ([]Task, error) {
	data, ok, err := kv.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	if !ok {
		return nil, nil
	}
	tasks, err := decodeTaskArray(data, now)
	if err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

// ClearTasks removes the stored collection.
func ClearTasks(kv KV) error {
	if err := kv.Delete(StorageKey); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	return nil
}

// taskRecord is the tolerant wire form of a Task: date fields are untyped
// strings so a malformed value degrades per field instead of rejecting the
// whole record.
type taskRecord struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Completed     bool            `json:"completed"`
	DueDate       *string         `json:"dueDate"`
	Priority      Priority        `json:"priority"`
	Category      string          `json:"category"`
	Tags          []string        `json:"tags"`
	Subtasks      []subtaskRecord `json:"subtasks"`
	IsRecurring   bool            `json:"isRecurring"`
	RecurringType RecurringType   `json:"recurringType"`
	CreatedAt     *string         `json:"createdAt"`
}

type subtaskRecord struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	CreatedAt *string `json:"createdAt"`
}

// decodeTaskArray parses a JSON array of task records. Records are decoded
// one at a time so a single malformed record is dropped rather than failing
// the whole collection.
func decodeTaskArray(data []byte, now time.Time) ([]Task, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse task array: %w", err)
	}

	tasks := make([]Task, 0, len(raw))
	for _, item := range raw {
		var rec taskRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		tasks = append(tasks, reviveTask(rec, now))
	}
	return tasks, nil
}

// reviveTask converts a wire record into a Task, reconstructing dates.
// A bad createdAt falls back to now; a bad dueDate is dropped.
func reviveTask(rec taskRecord, now time.Time) Task {
	isRecurring, recurringType := normalizeRecurrence(rec.IsRecurring, rec.RecurringType)

	t := Task{
		ID:            rec.ID,
		Title:         rec.Title,
		Description:   rec.Description,
		Completed:     rec.Completed,
		DueDate:       parseOptionalTime(rec.DueDate),
		Priority:      normalizePriority(rec.Priority),
		Category:      rec.Category,
		Tags:          rec.Tags,
		IsRecurring:   isRecurring,
		RecurringType: recurringType,
		CreatedAt:     parseTimeOr(rec.CreatedAt, now),
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	t.Subtasks = make([]Subtask, 0, len(rec.Subtasks))
	for _, sub := range rec.Subtasks {
		t.Subtasks = append(t.Subtasks, Subtask{
			ID:        sub.ID,
			Title:     sub.Title,
			Completed: sub.Completed,
			CreatedAt: parseTimeOr(sub.CreatedAt, now),
		})
	}

	return t
}

func parseTimeOr(value *string, fallback time.Time) time.Time {
	if value == nil {
		return fallback
	}
	parsed, err := time.Parse(time.RFC3339Nano, *value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseOptionalTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, *value)
	if err != nil {
		return nil
	}
	return &parsed
}
