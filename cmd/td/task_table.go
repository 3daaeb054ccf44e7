package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/registry"
	"github.com/taskdeck/taskdeck/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, reg *registry.Registry, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, reg, ui.HighlightID, now))
}

func formatTaskTable(tasks []task.Task, reg *registry.Registry, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "PRI", "DUE", "CATEGORY", "TAGS", "TITLE"}, len(tasks))

	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	prefixLengths := ui.UniqueIDPrefixLengths(ids)

	for _, t := range tasks {
		builder.AddRow([]string{
			highlight(t.ID, ui.PrefixLength(prefixLengths, t.ID)),
			statusCell(t),
			priorityCell(t.Priority),
			dueCell(t, now),
			categoryCell(t.Category, reg),
			tagsCell(t.Tags, reg),
			ui.TruncateCell(t.Title),
		})
	}

	return builder.String()
}

func statusCell(t task.Task) string {
	status := "open"
	if t.Completed {
		status = "done"
	}
	if len(t.Subtasks) == 0 {
		return status
	}

	done := 0
	for _, sub := range t.Subtasks {
		if sub.Completed {
			done++
		}
	}
	return fmt.Sprintf("%s %d/%d", status, done, len(t.Subtasks))
}

func priorityCell(p task.Priority) string {
	return ui.PriorityLabel(string(p))
}

func dueCell(t task.Task, now time.Time) string {
	if t.DueDate == nil {
		return "-"
	}
	return ui.FormatDueDate(*t.DueDate, now)
}

func categoryCell(id string, reg *registry.Registry) string {
	if id == "" {
		return "-"
	}
	category, ok := reg.Category(id)
	if !ok {
		return id
	}
	return ui.Label(category.Name, category.Color)
}

func tagsCell(ids []string, reg *registry.Registry) string {
	if len(ids) == 0 {
		return "-"
	}

	labels := make([]string, len(ids))
	for i, id := range ids {
		tag, ok := reg.Tag(id)
		if !ok {
			labels[i] = id
			continue
		}
		labels[i] = ui.Label(tag.Name, tag.Color)
	}
	return strings.Join(labels, ",")
}

// formatStatsTable renders per-category completion counts.
func formatStatsTable(stats []task.CategoryStat) string {
	builder := ui.NewTableBuilder([]string{"CATEGORY", "TOTAL", "DONE", "PENDING"}, len(stats))
	for _, stat := range stats {
		builder.AddRow([]string{
			ui.Label(stat.Category.Name, stat.Category.Color),
			fmt.Sprintf("%d", stat.Total),
			fmt.Sprintf("%d", stat.Completed),
			fmt.Sprintf("%d", stat.Pending),
		})
	}
	return builder.String()
}
