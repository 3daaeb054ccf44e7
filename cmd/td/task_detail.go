package main

import (
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/registry"
	"github.com/taskdeck/taskdeck/task"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, reg *registry.Registry, plain bool, now time.Time) {
	fmt.Printf("ID:       %s\n", t.ID)
	fmt.Printf("Title:    %s\n", t.Title)
	fmt.Printf("Status:   %s\n", statusName(t.Completed))
	fmt.Printf("Priority: %s\n", priorityCell(t.Priority))

	if t.Category != "" {
		fmt.Printf("Category: %s\n", categoryCell(t.Category, reg))
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", tagsCell(t.Tags, reg))
	}
	if t.DueDate != nil {
		fmt.Printf("Due:      %s (%s)\n", ui.FormatDate(*t.DueDate), ui.FormatDueDate(*t.DueDate, now))
	}
	if t.IsRecurring {
		fmt.Printf("Repeats:  %s\n", t.RecurringType)
	}
	fmt.Printf("Created:  %s (%s)\n", t.CreatedAt.Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.CreatedAt, now))

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", formatTaskDescription(t.Description, plain))
	}

	if len(t.Subtasks) > 0 {
		fmt.Println("\nSubtasks:")
		for _, sub := range t.Subtasks {
			marker := "[ ]"
			if sub.Completed {
				marker = "[x]"
			}
			fmt.Printf("  %s %s  %s\n", marker, sub.ID, sub.Title)
		}
	}
}

func statusName(completed bool) string {
	if completed {
		return "done"
	}
	return "open"
}

func formatTaskDescription(value string, plain bool) string {
	if plain {
		return reflowParagraphs(value, taskDetailLineWidth)
	}
	return renderMarkdownOrDash(value, taskDetailLineWidth)
}
