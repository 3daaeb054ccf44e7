package task

import (
	"sort"
	"strings"

	internalstrings "github.com/taskdeck/taskdeck/internal/strings"
	"github.com/taskdeck/taskdeck/registry"
)

// SortBy selects the ordering of a view.
type SortBy string

const (
	// SortCreated orders newest first.
	SortCreated SortBy = "created"

	// SortPriority orders high before medium before low.
	SortPriority SortBy = "priority"

	// SortCategory orders by category identifier ascending, with
	// uncategorized tasks last.
	SortCategory SortBy = "category"
)

// ValidSortBys returns all valid sort values.
func ValidSortBys() []SortBy {
	return []SortBy{SortCreated, SortPriority, SortCategory}
}

// IsValid returns true if the sort value is known.
func (s SortBy) IsValid() bool {
	for _, valid := range ValidSortBys() {
		if s == valid {
			return true
		}
	}
	return false
}

// Filter configures which tasks a view keeps. Zero-valued fields are
// inactive; active fields combine with AND.
type Filter struct {
	// Category keeps tasks whose category equals this value.
	Category string

	// Priority keeps tasks whose priority equals this value.
	Priority Priority

	// Tag keeps tasks whose tag set contains this value.
	Tag string

	// Search keeps tasks matching a case-insensitive substring search over
	// title, description, tag display names, and category display name.
	Search string
}

// uncategorizedSortKey sorts after every real category identifier.
const uncategorizedSortKey = "￿"

// View returns the filtered, sorted projection of tasks. The input is never
// mutated; ties keep their input order.
func View(tasks []Task, reg *registry.Registry, filter Filter, sortBy SortBy) []Task {
	filtered := make([]Task, 0, len(tasks))
	query := internalstrings.NormalizeLowerTrimSpace(filter.Search)

	for _, t := range tasks {
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.Tag != "" && !containsTag(t.Tags, filter.Tag) {
			continue
		}
		if query != "" && !matchesSearch(t, reg, query) {
			continue
		}
		filtered = append(filtered, t.Clone())
	}

	sortTasks(filtered, sortBy)
	return filtered
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// matchesSearch checks the query against title, description, and the display
// names resolved through the registry. Unknown category or tag references
// resolve to empty names and simply never match.
func matchesSearch(t Task, reg *registry.Registry, query string) bool {
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	if t.Description != "" && strings.Contains(strings.ToLower(t.Description), query) {
		return true
	}
	for _, tagID := range t.Tags {
		name := reg.TagName(tagID)
		if name != "" && strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	if t.Category != "" {
		name := reg.CategoryName(t.Category)
		if name != "" && strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	return false
}

func sortTasks(tasks []Task, sortBy SortBy) {
	switch sortBy {
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
		})
	case SortCategory:
		sort.SliceStable(tasks, func(i, j int) bool {
			return categorySortKey(tasks[i]) < categorySortKey(tasks[j])
		})
	default:
		// SortCreated, newest first.
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}

func categorySortKey(t Task) string {
	if t.Category == "" {
		return uncategorizedSortKey
	}
	return t.Category
}

// Partition splits a view into pending and completed tasks, preserving the
// view's order within each half.
func Partition(tasks []Task) (pending, completed []Task) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}
