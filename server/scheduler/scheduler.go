// Package scheduler implements a cooperative task scheduler driven by the
// server tick loop. Tasks run on the goroutine calling Tick, one after
// another, so they never race with each other or with other tick work.
package scheduler

import (
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Task is a function scheduled to run on a Scheduler, either once or
// repeatedly with a fixed period in ticks.
type Task struct {
	id     uuid.UUID
	owner  string
	fn     func()
	period int64

	next      int64
	cancelled atomic.Bool
}

// ID returns the unique ID assigned to the Task.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Owner returns the owner the Task was scheduled by.
func (t *Task) Owner() string {
	return t.owner
}

// Cancel stops the Task from running again. Cancelling a Task from within its
// own function is permitted. Cancel is a no-op on a nil or cancelled Task.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled.Store(true)
}

// Cancelled reports if the Task was cancelled. A nil Task is considered
// cancelled.
func (t *Task) Cancelled() bool {
	return t == nil || t.cancelled.Load()
}

// Scheduler holds tasks and runs them when they are due. A Scheduler is safe
// for concurrent use, but tasks only ever run on the goroutine calling Tick.
type Scheduler struct {
	log *slog.Logger

	mu      sync.Mutex
	tasks   []*Task
	current int64
}

// New creates an empty Scheduler. If log is nil, slog.Default() is used.
func New(log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{log: log.With("subsystem", "scheduler")}
}

// RunTask schedules fn to run once, on the next tick.
func (s *Scheduler) RunTask(owner string, fn func()) *Task {
	return s.RunTaskTimer(owner, 0, 0, fn)
}

// RunTaskTimer schedules fn to run after delay ticks and then every period
// ticks until the Task returned is cancelled. A delay of zero runs fn on the
// next tick. A period of zero or less runs fn only once.
func (s *Scheduler) RunTaskTimer(owner string, delay, period int64, fn func()) *Task {
	t := &Task{id: uuid.New(), owner: owner, fn: fn, period: period}
	s.mu.Lock()
	t.next = s.current + max(delay, 1)
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return t
}

// Tick advances the Scheduler by one tick and runs all tasks that are due, in
// the order they were scheduled. Tasks scheduled while ticking run no earlier
// than the next tick. A task that panics is cancelled and the panic logged.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	s.current++
	tick := s.current
	due := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Cancelled() && t.next <= tick {
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		if t.Cancelled() {
			continue
		}
		s.run(t)
		if t.period <= 0 {
			t.Cancel()
		} else {
			t.next = tick + t.period
		}
	}

	s.mu.Lock()
	s.tasks = slices.DeleteFunc(s.tasks, (*Task).Cancelled)
	s.mu.Unlock()
}

func (s *Scheduler) run(t *Task) {
	defer func() {
		if r := recover(); r != nil {
			t.Cancel()
			s.log.Error("Task panic.", "owner", t.owner, "task", t.id, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	t.fn()
}

// CancelOwner cancels all tasks scheduled by the owner passed.
func (s *Scheduler) CancelOwner(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.owner == owner {
			t.Cancel()
		}
	}
}

// Pending returns the number of tasks that were not yet cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.Cancelled() {
			n++
		}
	}
	return n
}

// CurrentTick returns the number of ticks the Scheduler has run.
func (s *Scheduler) CurrentTick() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
