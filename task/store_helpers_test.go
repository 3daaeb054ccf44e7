package task

import (
	"testing"
	"time"
)

// manualScheduler collects deferred funcs so tests control when spawns fire.
type manualScheduler struct {
	fns []func()
}

func (m *manualScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	m.fns = append(m.fns, fn)
	return func() bool { return false }
}

func (m *manualScheduler) fire() {
	fns := m.fns
	m.fns = nil
	for _, fn := range fns {
		fn()
	}
}

// recordingSaver captures each snapshot handed to the save hook.
type recordingSaver struct {
	calls [][]Task
	err   error
}

func (r *recordingSaver) save(tasks []Task) error {
	r.calls = append(r.calls, tasks)
	return r.err
}

// testClock returns strictly increasing times so IDs and createdAt values
// stay distinct without sleeping.
type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) now() time.Time {
	c.current = c.current.Add(time.Second)
	return c.current
}

func newTestStore(t *testing.T, initial []Task) (*Store, *manualScheduler, *recordingSaver) {
	t.Helper()

	sched := &manualScheduler{}
	saver := &recordingSaver{}
	store := NewStore(initial, Options{
		Save:      saver.save,
		Scheduler: sched,
		Now:       newTestClock().now,
	})
	return store, sched, saver
}

func taskIDs(tasks []Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
