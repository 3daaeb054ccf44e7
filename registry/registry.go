// Package registry holds the fixed category and tag lookup tables.
//
// The task engine never hard-codes category or tag metadata; it consumes a
// Registry supplied at construction time. Unknown references resolve to "no
// match" rather than an error, so stale IDs in stored data never break
// rendering or search.
package registry

// Category describes one entry in the fixed category set.
type Category struct {
	// ID is the stable identifier stored on tasks.
	ID string `toml:"id" json:"id"`

	// Name is the human-readable display name.
	Name string `toml:"name" json:"name"`

	// Color is the display color as a hex string (e.g. "#3B82F6").
	Color string `toml:"color" json:"color"`
}

// Tag describes one entry in the fixed tag set.
type Tag struct {
	// ID is the stable identifier stored on tasks.
	ID string `toml:"id" json:"id"`

	// Name is the human-readable display name.
	Name string `toml:"name" json:"name"`

	// Color is the display color as a hex string.
	Color string `toml:"color" json:"color"`
}

// Registry is an immutable set of categories and tags.
type Registry struct {
	categories []Category
	tags       []Tag
	catByID    map[string]Category
	tagByID    map[string]Tag
}

// New builds a registry from the given entries. Entry order is preserved for
// display; duplicate IDs keep the first occurrence.
func New(categories []Category, tags []Tag) *Registry {
	reg := &Registry{
		categories: append([]Category(nil), categories...),
		tags:       append([]Tag(nil), tags...),
		catByID:    make(map[string]Category, len(categories)),
		tagByID:    make(map[string]Tag, len(tags)),
	}
	for _, c := range reg.categories {
		if _, ok := reg.catByID[c.ID]; !ok {
			reg.catByID[c.ID] = c
		}
	}
	for _, t := range reg.tags {
		if _, ok := reg.tagByID[t.ID]; !ok {
			reg.tagByID[t.ID] = t
		}
	}
	return reg
}

// Categories returns the categories in display order.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

// Tags returns the tags in display order.
func (r *Registry) Tags() []Tag {
	return append([]Tag(nil), r.tags...)
}

// Category looks up a category by ID.
func (r *Registry) Category(id string) (Category, bool) {
	c, ok := r.catByID[id]
	return c, ok
}

// Tag looks up a tag by ID.
func (r *Registry) Tag(id string) (Tag, bool) {
	t, ok := r.tagByID[id]
	return t, ok
}

// CategoryName returns the display name for a category ID, or "" when the
// ID is unknown.
func (r *Registry) CategoryName(id string) string {
	return r.catByID[id].Name
}

// TagName returns the display name for a tag ID, or "" when the ID is unknown.
func (r *Registry) TagName(id string) string {
	return r.tagByID[id].Name
}
