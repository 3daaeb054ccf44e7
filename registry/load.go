package registry

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// registryFile is the TOML representation of a registry file.
type registryFile struct {
	Categories []Category `toml:"category"`
	Tags       []Tag      `toml:"tag"`
}

// Load reads a registry from a TOML file. A missing file yields the built-in
// default registry. A file may override categories, tags, or both; an
// omitted section falls back to the defaults.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read registry file %s: %w", path, err)
	}

	var file registryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse registry file %s: %w", path, err)
	}

	categories := file.Categories
	if len(categories) == 0 {
		categories = defaultCategories()
	}
	tags := file.Tags
	if len(tags) == 0 {
		tags = defaultTags()
	}

	for _, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("registry file %s: category with empty id", path)
		}
	}
	for _, t := range tags {
		if t.ID == "" {
			return nil, fmt.Errorf("registry file %s: tag with empty id", path)
		}
	}

	return New(categories, tags), nil
}
