package registry

// Default returns the built-in category and tag sets.
func Default() *Registry {
	return New(defaultCategories(), defaultTags())
}

func defaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work", Color: "#3B82F6"},
		{ID: "personal", Name: "Personal", Color: "#10B981"},
		{ID: "shopping", Name: "Shopping", Color: "#F59E0B"},
		{ID: "health", Name: "Health", Color: "#EF4444"},
		{ID: "learning", Name: "Learning", Color: "#8B5CF6"},
		{ID: "finance", Name: "Finance", Color: "#06B6D4"},
	}
}

func defaultTags() []Tag {
	return []Tag{
		{ID: "urgent", Name: "Urgent", Color: "#DC2626"},
		{ID: "important", Name: "Important", Color: "#7C3AED"},
		{ID: "quick", Name: "Quick Task", Color: "#059669"},
		{ID: "meeting", Name: "Meeting", Color: "#2563EB"},
		{ID: "deadline", Name: "Deadline", Color: "#EA580C"},
		{ID: "research", Name: "Research", Color: "#0891B2"},
		{ID: "creative", Name: "Creative", Color: "#C026D3"},
		{ID: "routine", Name: "Routine", Color: "#65A30D"},
	}
}
