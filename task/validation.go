package task

import (
	"errors"
	"strings"

	internalstrings "github.com/taskdeck/taskdeck/internal/strings"
)

// ErrInvalidDocument is returned when an import document does not have a
// tasks array at the top level.
var ErrInvalidDocument = errors.New("document has no tasks array")

// titleOK reports whether a title survives trimming. Operations receiving a
// blank title are validation no-ops: the engine leaves state untouched
// rather than raising, because the input layer should have rejected it.
func titleOK(title string) bool {
	return strings.TrimSpace(title) != ""
}

// normalizePriority lowercases the input and falls back to medium for
// anything outside the fixed set.
func normalizePriority(p Priority) Priority {
	normalized := Priority(internalstrings.NormalizeLowerTrimSpace(string(p)))
	if !normalized.IsValid() {
		return PriorityMedium
	}
	return normalized
}

// normalizeRecurrence keeps the IsRecurring/RecurringType pair consistent:
// the type is set if and only if the flag is set and names a known cadence.
func normalizeRecurrence(isRecurring bool, typ RecurringType) (bool, RecurringType) {
	normalized := RecurringType(internalstrings.NormalizeLowerTrimSpace(string(typ)))
	if !isRecurring || !normalized.IsValid() {
		return false, ""
	}
	return true, normalized
}
