package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	reg := Default()

	if got := len(reg.Categories()); got != 6 {
		t.Errorf("expected 6 categories, got %d", got)
	}
	if got := len(reg.Tags()); got != 8 {
		t.Errorf("expected 8 tags, got %d", got)
	}

	work, ok := reg.Category("work")
	if !ok {
		t.Fatal("expected 'work' category")
	}
	if work.Name != "Work" {
		t.Errorf("expected display name 'Work', got %q", work.Name)
	}
	if work.Color != "#3B82F6" {
		t.Errorf("expected color #3B82F6, got %q", work.Color)
	}

	quick, ok := reg.Tag("quick")
	if !ok {
		t.Fatal("expected 'quick' tag")
	}
	if quick.Name != "Quick Task" {
		t.Errorf("expected display name 'Quick Task', got %q", quick.Name)
	}
}

func TestRegistry_UnknownIDs(t *testing.T) {
	reg := Default()

	if _, ok := reg.Category("nope"); ok {
		t.Error("unknown category should not resolve")
	}
	if _, ok := reg.Tag("nope"); ok {
		t.Error("unknown tag should not resolve")
	}
	if name := reg.CategoryName("nope"); name != "" {
		t.Errorf("expected empty name for unknown category, got %q", name)
	}
	if name := reg.TagName("nope"); name != "" {
		t.Errorf("expected empty name for unknown tag, got %q", name)
	}
}

func TestRegistry_PreservesOrder(t *testing.T) {
	reg := New(
		[]Category{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}},
		[]Tag{{ID: "z", Name: "Z"}, {ID: "y", Name: "Y"}},
	)

	cats := reg.Categories()
	if cats[0].ID != "b" || cats[1].ID != "a" {
		t.Errorf("category order not preserved: %v", cats)
	}
	tags := reg.Tags()
	if tags[0].ID != "z" || tags[1].ID != "y" {
		t.Errorf("tag order not preserved: %v", tags)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "registry.toml"))
	if err != nil {
		t.Fatalf("failed to load missing registry: %v", err)
	}
	if len(reg.Categories()) != 6 || len(reg.Tags()) != 8 {
		t.Errorf("expected default registry, got %d categories %d tags",
			len(reg.Categories()), len(reg.Tags()))
	}
}

func TestLoad_OverridesCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	content := `
[[category]]
id = "errands"
name = "Errands"
color = "#112233"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write registry file: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}

	cats := reg.Categories()
	if len(cats) != 1 || cats[0].ID != "errands" {
		t.Errorf("expected single 'errands' category, got %v", cats)
	}
	// Tags section omitted, so defaults apply.
	if len(reg.Tags()) != 8 {
		t.Errorf("expected default tags, got %d", len(reg.Tags()))
	}
}

func TestLoad_RejectsEmptyID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	content := `
[[tag]]
name = "Broken"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write registry file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for tag with empty id")
	}
}
