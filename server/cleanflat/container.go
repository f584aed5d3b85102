package cleanflat

import (
	"sync"

	"github.com/dm-vev/cleanflat/server/scheduler"
	"github.com/dm-vev/cleanflat/server/world"
)

// State is the state of the drain task of a world.
type State int

const (
	// Idle means no drain task is running for the world.
	Idle State = iota
	// Active means a drain task is running and regenerates one chunk per
	// tick.
	Active
)

// String ...
func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Status describes the regeneration queue of a world.
type Status struct {
	World  string
	State  State
	Queued int
	// Bound reports if a generator was resolved for the world.
	Bound bool
}

// container holds the queue, drain task and binding of one world. Its mutex
// guards all fields but w.
type container struct {
	w *world.World

	mu    sync.Mutex
	queue queue
	// attempts holds the number of failed regenerations of queued chunks.
	attempts map[world.ChunkPos]int
	// task is the running drain task, or nil if the container is idle.
	task *scheduler.Task
	// bound is the Binding captured when task was started.
	bound   Binding
	binding *Binding
}

func (ct *container) status() Status {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	s := Status{World: ct.w.Name(), Queued: ct.queue.len(), Bound: ct.binding != nil}
	if ct.running() {
		s.State = Active
	}
	return s
}

// running reports if the drain task of the container is scheduled. ct.mu must
// be held.
func (ct *container) running() bool {
	return ct.task != nil && !ct.task.Cancelled()
}
