package task

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/ids"
)

// GenerateID creates a unique 8-character base32 ID from a title and timestamp.
func GenerateID(title string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(title, timestamp, ids.DefaultLength)
}

// generateSubtaskID derives a subtask ID, salted with a sequence number so
// that cloning a whole subtask list in one operation yields distinct IDs.
func generateSubtaskID(title string, timestamp time.Time, seq int) string {
	return ids.GenerateSequenced(title, timestamp, seq, ids.DefaultLength)
}
