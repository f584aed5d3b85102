package scheduler

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newScheduler() *Scheduler {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRunTaskTimer(t *testing.T) {
	s := newScheduler()
	var runs []int64
	task := s.RunTaskTimer("test", 0, 2, func() { runs = append(runs, s.CurrentTick()) })
	require.NotEqual(t, uuid.Nil, task.ID())
	require.Equal(t, "test", task.Owner())

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	require.Equal(t, []int64{1, 3, 5}, runs)

	task.Cancel()
	s.Tick()
	s.Tick()
	require.Len(t, runs, 3)
	require.Zero(t, s.Pending())
}

func TestRunTaskDelay(t *testing.T) {
	s := newScheduler()
	runs := 0
	s.RunTaskTimer("test", 3, 1, func() { runs++ })
	s.Tick()
	s.Tick()
	require.Zero(t, runs)
	s.Tick()
	require.Equal(t, 1, runs)
	s.Tick()
	require.Equal(t, 2, runs)
}

func TestRunTaskOnce(t *testing.T) {
	s := newScheduler()
	runs := 0
	task := s.RunTask("test", func() { runs++ })
	s.Tick()
	s.Tick()
	require.Equal(t, 1, runs)
	require.True(t, task.Cancelled())
	require.Zero(t, s.Pending())
}

func TestTaskCancelsItself(t *testing.T) {
	s := newScheduler()
	runs := 0
	var task *Task
	task = s.RunTaskTimer("test", 0, 1, func() {
		runs++
		if runs == 2 {
			task.Cancel()
		}
	})
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	require.Equal(t, 2, runs)
}

func TestTaskScheduledWhileTicking(t *testing.T) {
	s := newScheduler()
	inner := 0
	s.RunTask("test", func() {
		s.RunTask("test", func() { inner++ })
	})
	s.Tick()
	require.Zero(t, inner)
	s.Tick()
	require.Equal(t, 1, inner)
}

func TestTaskPanicCancels(t *testing.T) {
	s := newScheduler()
	other := 0
	bad := s.RunTaskTimer("bad", 0, 1, func() { panic("boom") })
	s.RunTaskTimer("good", 0, 1, func() { other++ })
	s.Tick()
	s.Tick()
	require.True(t, bad.Cancelled())
	require.Equal(t, 2, other)
	require.Equal(t, 1, s.Pending())
}

func TestCancelOwner(t *testing.T) {
	s := newScheduler()
	s.RunTaskTimer("a", 0, 1, func() {})
	s.RunTaskTimer("a", 0, 1, func() {})
	s.RunTaskTimer("b", 0, 1, func() {})
	s.CancelOwner("a")
	require.Equal(t, 1, s.Pending())

	var nilTask *Task
	nilTask.Cancel()
	require.True(t, nilTask.Cancelled())
}
