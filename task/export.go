package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentVersion is the export document format version.
const DocumentVersion = "1.0"

// Document is the transportable form of a task collection.
type Document struct {
	Tasks      []Task    `json:"tasks"`
	ExportDate time.Time `json:"exportDate"`
	Version    string    `json:"version"`
}

// Export wraps the collection in a document stamped with the export time.
func Export(tasks []Task, now time.Time) Document {
	if tasks == nil {
		tasks = []Task{}
	}
	return Document{
		Tasks:      cloneTasks(tasks),
		ExportDate: now,
		Version:    DocumentVersion,
	}
}

// EncodeDocument renders a document as indented JSON.
func EncodeDocument(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

// DecodeDocument parses an export document and returns its tasks, revived
// through the same date reconstruction as LoadTasks.
//
// The top level must be an object with a tasks array; anything else is
// rejected with ErrInvalidDocument and no tasks are returned. The caller
// replaces its collection wholesale with the result; import never merges.
func DecodeDocument(data []byte, now time.Time) ([]Task, error) {
	var envelope struct {
		Tasks json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if len(envelope.Tasks) == 0 || string(envelope.Tasks) == "null" {
		return nil, ErrInvalidDocument
	}

	tasks, err := decodeTaskArray(envelope.Tasks, now)
	if err != nil {
		return nil, ErrInvalidDocument
	}
	return tasks, nil
}
