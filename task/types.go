package task

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the lowest importance level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default importance level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the highest importance level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority; higher means more important.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// RecurringType represents the regeneration cadence of a recurring task.
type RecurringType string

const (
	// RecurringDaily advances the next occurrence by one calendar day.
	RecurringDaily RecurringType = "daily"

	// RecurringWeekly advances the next occurrence by seven calendar days.
	RecurringWeekly RecurringType = "weekly"

	// RecurringMonthly advances the next occurrence by one calendar month,
	// clamped to the last valid day of the target month.
	RecurringMonthly RecurringType = "monthly"
)

// ValidRecurringTypes returns all valid recurring type values.
func ValidRecurringTypes() []RecurringType {
	return []RecurringType{RecurringDaily, RecurringWeekly, RecurringMonthly}
}

// IsValid returns true if the recurring type is a known valid value.
func (r RecurringType) IsValid() bool {
	for _, valid := range ValidRecurringTypes() {
		if r == valid {
			return true
		}
	}
	return false
}
