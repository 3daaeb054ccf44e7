package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/kv"
	"github.com/taskdeck/taskdeck/registry"
	"github.com/taskdeck/taskdeck/task"
)

// deck bundles the open task store with the registry it resolves
// category and tag references against.
type deck struct {
	store *task.Store
	reg   *registry.Registry
}

// openDeck loads config, registry, and the persisted task collection,
// and wires the store to save back after every mutation.
func openDeck() (*deck, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}

	stateDir, err := cfg.StateDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	store := kv.NewStore(stateDir)
	tasks, err := task.LoadTasks(store, time.Now())
	if err != nil {
		return nil, err
	}

	return &deck{
		store: task.NewStore(tasks, task.Options{
			Save: func(tasks []task.Task) error {
				return task.SaveTasks(store, tasks)
			},
			ReportError: func(err error) {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			},
		}),
		reg: reg,
	}, nil
}

func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	if cfg.Registry.Path == "" {
		return registry.Default(), nil
	}
	return registry.Load(cfg.Registry.Path)
}

// close waits for any deferred recurring spawns before the process exits.
func (d *deck) close() {
	d.store.Wait()
}

// resolveTaskID matches a full ID or a unique prefix, case-insensitively.
func (d *deck) resolveTaskID(arg string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(arg))
	if needle == "" {
		return "", fmt.Errorf("task ID is required")
	}

	var matches []string
	for _, t := range d.store.Tasks() {
		id := strings.ToLower(t.ID)
		if id == needle {
			return t.ID, nil
		}
		if strings.HasPrefix(id, needle) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no task matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// resolveSubtaskID matches a subtask of one task by full ID or unique prefix.
func (d *deck) resolveSubtaskID(taskID, arg string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(arg))
	if needle == "" {
		return "", fmt.Errorf("subtask ID is required")
	}

	var subtasks []task.Subtask
	for _, t := range d.store.Tasks() {
		if t.ID == taskID {
			subtasks = t.Subtasks
			break
		}
	}

	var matches []string
	for _, sub := range subtasks {
		id := strings.ToLower(sub.ID)
		if id == needle {
			return sub.ID, nil
		}
		if strings.HasPrefix(id, needle) {
			matches = append(matches, sub.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no subtask matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("subtask ID %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// validateCategory checks a category reference against the registry.
func (d *deck) validateCategory(id string) error {
	if id == "" {
		return nil
	}
	if _, ok := d.reg.Category(id); !ok {
		return fmt.Errorf("unknown category %q (valid: %s)", id, categoryIDs(d.reg))
	}
	return nil
}

// validateTags checks tag references against the registry.
func (d *deck) validateTags(ids []string) error {
	for _, id := range ids {
		if _, ok := d.reg.Tag(id); !ok {
			return fmt.Errorf("unknown tag %q (valid: %s)", id, tagIDs(d.reg))
		}
	}
	return nil
}

func categoryIDs(reg *registry.Registry) string {
	categories := reg.Categories()
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return strings.Join(ids, ", ")
}

func tagIDs(reg *registry.Registry) string {
	tags := reg.Tags()
	ids := make([]string, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}
	return strings.Join(ids, ", ")
}
