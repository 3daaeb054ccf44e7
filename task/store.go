package task

import (
	"fmt"
	"sync"
	"time"
)

// SpawnDelay is how long the store waits after a completing toggle before
// appending the regenerated sibling of a recurring task. The delay keeps the
// toggle and the spawn observable as two separate state transitions: the
// checkbox ticks first, the new task appears after.
const SpawnDelay = 100 * time.Millisecond

// SaveFunc persists the full task collection after a mutation.
type SaveFunc func(tasks []Task) error

// Scheduler defers a function call. The returned cancel func reports whether
// the call was stopped before running.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func() bool)
}

// timerScheduler schedules on real timers.
type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	timer := time.AfterFunc(d, fn)
	return timer.Stop
}

// Options configures a Store's injected collaborators.
type Options struct {
	// Save is invoked with a snapshot of the collection after every
	// successful mutation. Nil disables persistence.
	Save SaveFunc

	// ReportError receives save failures. A failed save never rolls back
	// the in-memory mutation. Nil discards the error.
	ReportError func(error)

	// Scheduler defers the recurrence spawn. Nil uses real timers.
	Scheduler Scheduler

	// Now supplies the current time. Nil uses time.Now.
	Now func() time.Time
}

// Store owns the authoritative in-memory task collection.
//
// Operations are atomic with respect to the collection. The mutex exists only
// because the deferred recurrence spawn fires on a timer goroutine; there are
// no concurrent writers otherwise.
type Store struct {
	mu      sync.Mutex
	tasks   []Task
	save    SaveFunc
	report  func(error)
	sched   Scheduler
	now     func() time.Time
	pending sync.WaitGroup
}

// NewStore creates a store seeded with the given tasks.
func NewStore(initial []Task, opts Options) *Store {
	s := &Store{
		tasks:  cloneTasks(initial),
		save:   opts.Save,
		report: opts.ReportError,
		sched:  opts.Scheduler,
		now:    opts.Now,
	}
	if s.sched == nil {
		s.sched = timerScheduler{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Tasks returns a deep-copied snapshot of the collection.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Wait blocks until all scheduled recurrence spawns have fired. Callers that
// exit soon after a toggle (the CLI, tests) use it to observe the spawn.
func (s *Store) Wait() {
	s.pending.Wait()
}

// persist pushes a snapshot through the save hook. Must be called with the
// mutex held. Save failures are reported, never propagated: the in-memory
// state is already the source of truth.
func (s *Store) persist() {
	if s.save == nil {
		return
	}
	if err := s.save(cloneTasks(s.tasks)); err != nil && s.report != nil {
		s.report(fmt.Errorf("save tasks: %w", err))
	}
}

// findTask returns the index of the task with the given ID, or -1.
// Must be called with the mutex held.
func (s *Store) findTask(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
