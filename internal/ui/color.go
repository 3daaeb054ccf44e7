package ui

import "github.com/charmbracelet/lipgloss"

var priorityColors = map[string]string{
	"high":   "#EF4444",
	"medium": "#F59E0B",
	"low":    "#10B981",
}

// Label renders text in the given hex color when the terminal supports it.
func Label(text, hexColor string) string {
	if text == "" || hexColor == "" || !ansiEnabled() {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(text)
}

// PriorityLabel colors a priority name by severity.
func PriorityLabel(priority string) string {
	return Label(priority, priorityColors[priority])
}
