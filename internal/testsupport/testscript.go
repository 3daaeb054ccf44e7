package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/taskdeck/taskdeck/task"
)

var (
	buildOnce sync.Once
	tdPath    string
	buildErr  error
)

// BuildTd builds the td binary once and returns its path.
func BuildTd(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "td-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tdPath = filepath.Join(binDir, "td")
		cmd := exec.Command("go", "build", "-o", tdPath, "./cmd/td")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build td: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tdPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TD", BuildTd(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".local", "state", "taskdeck"), 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	return nil
}

// CmdTaskID finds a task by title in a JSON task list and stores its ID
// in an env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	var items []task.Task
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}

	title := args[1]
	for _, item := range items {
		if item.Title == title {
			ts.Setenv(args[2], item.ID)
			return
		}
	}

	ts.Fatalf("task with title %q not found", title)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
