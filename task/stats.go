package task

import "github.com/taskdeck/taskdeck/registry"

// CategoryStat aggregates completion counts for one category.
type CategoryStat struct {
	Category  registry.Category `json:"category"`
	Total     int               `json:"total"`
	Completed int               `json:"completed"`
	Pending   int               `json:"pending"`
}

// Stats computes per-category counts over the unfiltered collection, one
// entry per registry category in display order. The category overview is
// independent of any active filters.
func Stats(tasks []Task, reg *registry.Registry) []CategoryStat {
	categories := reg.Categories()
	stats := make([]CategoryStat, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		stats[i] = CategoryStat{Category: c}
		index[c.ID] = i
	}

	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			continue
		}
		stats[i].Total++
		if t.Completed {
			stats[i].Completed++
		} else {
			stats[i].Pending++
		}
	}

	return stats
}
