// Package cleanflat repairs chunks of managed worlds that were generated as
// superflat because no generator was attached to the world when they were
// first loaded. Such chunks are detected when they load, queued, and
// regenerated with the generator of the world one chunk per tick, so a large
// backlog never stalls the tick loop.
package cleanflat

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dm-vev/cleanflat/server/event"
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/dm-vev/cleanflat/server/scheduler"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
	"github.com/google/uuid"
)

// Owner is the owner name tasks and listeners of the Listener are registered
// under.
const Owner = "cleanflat"

// GeneratorProvider provides the generator a world should be generated with.
type GeneratorProvider interface {
	// Generator returns the generator assigned to the world with the name
	// passed, or nil if none is assigned. id optionally names a generator
	// variant.
	Generator(name, id string) world.Generator
}

// WorldSettings holds the game mode settings of worlds.
type WorldSettings interface {
	// InWorld reports if the world with the name passed is managed.
	InWorld(name string) bool
	NetherGenerate(name string) bool
	NetherIslands(name string) bool
	EndGenerate(name string) bool
	EndIslands(name string) bool
}

// FlagStore holds per-world feature flags.
type FlagStore interface {
	Enabled(f flags.Flag, name string) bool
	Set(f flags.Flag, name string, enabled bool) bool
}

// Scheduler runs the periodic drain task of a world.
type Scheduler interface {
	RunTaskTimer(owner string, delay, period int64, fn func()) *scheduler.Task
}

// Config holds the settings of a Listener.
type Config struct {
	// Log is the Logger used by the Listener. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Flags is the store the CleanSuperFlat flag is read from. If no
	// generator can be found for a world, the flag is disabled for it in
	// Flags.
	Flags FlagStore
	// Worlds holds the settings of managed worlds. Chunks of worlds not
	// managed are never regenerated.
	Worlds WorldSettings
	// Generators provides the generator chunks are regenerated with.
	Generators GeneratorProvider
	// Scheduler runs the drain tasks. Scheduler must be driven by the same
	// goroutine that loads chunks.
	Scheduler Scheduler
	// LogChunks enables an info line for every chunk regenerated.
	LogChunks bool
	// RetryBudget is the number of times regenerating a chunk may fail before
	// the chunk is dropped from the queue. If zero or less, it is set to 3.
	RetryBudget int
	// Metrics receives counters of the Listener. If nil, a new Metrics is
	// created.
	Metrics *Metrics
}

// New creates a Listener using the Config passed. The Listener does nothing
// until HandleReady is called.
func (conf Config) New() *Listener {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Flags == nil || conf.Worlds == nil || conf.Generators == nil || conf.Scheduler == nil {
		panic("cleanflat: config requires flags, worlds, generators and scheduler")
	}
	if conf.RetryBudget <= 0 {
		conf.RetryBudget = 3
	}
	if conf.Metrics == nil {
		conf.Metrics = NewMetrics()
	}
	return &Listener{
		conf:       conf,
		log:        conf.Log.With("subsystem", "cleanflat"),
		containers: make(map[uuid.UUID]*container),
	}
}

// Listener listens for chunk loads and regenerates chunks that were generated
// as superflat. It implements event.Listener.
type Listener struct {
	event.NopListener

	conf Config
	log  *slog.Logger

	// ready is set once by HandleReady and never reset.
	ready atomic.Bool

	mu         sync.Mutex
	containers map[uuid.UUID]*container
}

// Compile time check to make sure Listener implements event.Listener.
var _ event.Listener = (*Listener)(nil)

// HandleReady marks the server as ready. Chunk loads before it are ignored, as
// many chunks are loaded during start-up.
func (l *Listener) HandleReady() {
	if l.ready.CompareAndSwap(false, true) {
		l.log.Debug("Listening for superflat chunks.")
	}
}

// Ready reports if HandleReady was called.
func (l *Listener) Ready() bool {
	return l.ready.Load()
}

// HandleChunkLoad queues the chunk loaded for regeneration if it was generated
// as superflat and the world has a generator.
func (l *Listener) HandleChunkLoad(w *world.World, pos world.ChunkPos, c *chunk.Chunk) {
	if !l.RequiresRegeneration(w, pos, c) {
		return
	}
	b, ok := l.resolve(w)
	if !ok {
		return
	}
	l.Enqueue(w, b, pos)
}

// Metrics returns the Metrics the Listener reports to.
func (l *Listener) Metrics() *Metrics {
	return l.conf.Metrics
}

// Status returns the state of the regeneration queue of a world.
func (l *Listener) Status(w *world.World) Status {
	ct, ok := l.lookup(w)
	if !ok {
		return Status{World: w.Name(), State: Idle}
	}
	return ct.status()
}

// Statuses returns the state of all worlds that had chunks queued, sorted by
// world name.
func (l *Listener) Statuses() []Status {
	l.mu.Lock()
	all := make([]*container, 0, len(l.containers))
	for _, ct := range l.containers {
		all = append(all, ct)
	}
	l.mu.Unlock()

	statuses := make([]Status, 0, len(all))
	for _, ct := range all {
		statuses = append(statuses, ct.status())
	}
	slices.SortFunc(statuses, func(a, b Status) int {
		return strings.Compare(a.World, b.World)
	})
	return statuses
}

// Queued returns the chunks queued for regeneration in a world, in the order
// they will be regenerated.
func (l *Listener) Queued(w *world.World) []world.ChunkPos {
	ct, ok := l.lookup(w)
	if !ok {
		return nil
	}
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.queue.snapshot()
}

// Discard cancels the drain task of a world and drops all chunks queued for
// it. The binding of the world is forgotten, so a later chunk load resolves
// the generator again. Discard returns the number of chunks dropped.
func (l *Listener) Discard(w *world.World) int {
	l.mu.Lock()
	ct, ok := l.containers[w.UUID()]
	delete(l.containers, w.UUID())
	l.mu.Unlock()
	if !ok {
		return 0
	}

	ct.mu.Lock()
	defer ct.mu.Unlock()
	n := ct.queue.len()
	ct.queue.clear()
	clear(ct.attempts)
	if ct.task != nil {
		ct.task.Cancel()
		ct.task = nil
		l.conf.Metrics.incStops(w.Name())
	}
	l.conf.Metrics.setQueue(w.Name(), 0)
	if n > 0 {
		l.log.Info("Discarded queued chunks.", "world", w.Name(), "count", n)
	}
	return n
}

// container returns the per-world state of w, creating it if needed.
func (l *Listener) container(w *world.World) *container {
	l.mu.Lock()
	defer l.mu.Unlock()
	ct, ok := l.containers[w.UUID()]
	if !ok {
		ct = &container{w: w, attempts: make(map[world.ChunkPos]int)}
		l.containers[w.UUID()] = ct
	}
	return ct
}

func (l *Listener) lookup(w *world.World) (*container, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ct, ok := l.containers[w.UUID()]
	return ct, ok
}
