package task

import "time"

// NextOccurrence builds the successor instance of a recurring task.
//
// The new task duplicates every field of from except: fresh ID, Completed
// false, subtasks cloned with fresh IDs and Completed false, and CreatedAt
// set to the next occurrence date computed from now. It does not mutate from
// and does not insert anything; the store appends the result.
func NextOccurrence(from Task, now time.Time) Task {
	nextDate := nextOccurrenceDate(now, from.RecurringType)

	next := from.Clone()
	next.ID = GenerateID(from.Title, now)
	next.Completed = false
	next.CreatedAt = nextDate

	subtasks := make([]Subtask, len(from.Subtasks))
	for i, sub := range from.Subtasks {
		clone := sub
		clone.ID = generateSubtaskID(sub.Title, now, i)
		clone.Completed = false
		subtasks[i] = clone
	}
	next.Subtasks = subtasks

	return next
}

// nextOccurrenceDate advances now by one cadence step. Monthly advancement
// clamps to the last valid day of the target month, so Jan 31 rolls to
// Feb 28 (or 29) rather than normalizing into March.
func nextOccurrenceDate(now time.Time, typ RecurringType) time.Time {
	switch typ {
	case RecurringDaily:
		return now.AddDate(0, 0, 1)
	case RecurringWeekly:
		return now.AddDate(0, 0, 7)
	case RecurringMonthly:
		return addMonthClamped(now)
	default:
		return now
	}
}

func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	target := month + 1
	if last := daysInMonth(year, target); day > last {
		day = last
	}
	return time.Date(year, target, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month. The month may
// be out of the 1-12 range; time.Date normalizes it.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
