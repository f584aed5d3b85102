package cleanflat

import (
	"errors"

	"github.com/dm-vev/cleanflat/server/internal/guard"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

// DrainResult is the outcome of a single drain step.
type DrainResult struct {
	// Pos is the chunk that was taken from the queue. It is only set if Done
	// is false.
	Pos world.ChunkPos
	// Done is true if the queue was empty and the drain task was stopped.
	Done bool
	// Err is the error regenerating Pos failed with.
	Err error
	// Requeued is true if Pos failed and was put back at the end of the queue.
	Requeued bool
	// Remaining is the number of chunks left in the queue.
	Remaining int
}

// Enqueue adds pos to the regeneration queue of w. If no drain task is running
// for w, one is started that regenerates chunks with the Binding passed,
// starting on the next tick.
func (l *Listener) Enqueue(w *world.World, b Binding, pos world.ChunkPos) {
	ct := l.container(w)
	ct.mu.Lock()
	defer ct.mu.Unlock()

	ct.queue.push(pos)
	l.conf.Metrics.setQueue(w.Name(), ct.queue.len())
	if ct.running() {
		return
	}
	if ct.task != nil {
		// Cancelled outside the Listener, for example by the scheduler.
		ct.task = nil
		l.conf.Metrics.incStops(w.Name())
	}
	ct.bound = b
	ct.task = l.conf.Scheduler.RunTaskTimer(Owner, 0, 1, func() {
		l.drain(ct)
	})
	l.conf.Metrics.incStarts(w.Name())
	l.log.Debug("Regeneration task started.", "world", w.Name())
}

// DrainOne takes the first chunk from the queue of w and regenerates it. If the
// queue is empty, the drain task of w is cancelled and Done is set in the
// result. DrainOne is called by the drain task every tick and must not be
// called concurrently with it.
func (l *Listener) DrainOne(w *world.World) DrainResult {
	ct, ok := l.lookup(w)
	if !ok {
		return DrainResult{Done: true}
	}
	return l.drain(ct)
}

func (l *Listener) drain(ct *container) DrainResult {
	name := ct.w.Name()

	ct.mu.Lock()
	pos, ok := ct.queue.pop()
	if !ok {
		if ct.task != nil {
			ct.task.Cancel()
			ct.task = nil
			l.conf.Metrics.incStops(name)
			l.log.Debug("Regeneration task stopped.", "world", name)
		}
		ct.mu.Unlock()
		return DrainResult{Done: true}
	}
	b := ct.bound
	if b.Generator == nil && ct.binding != nil {
		b = *ct.binding
	}
	ct.mu.Unlock()

	err := guard.Run(func() error {
		return regenerate(ct.w, b, pos)
	})

	ct.mu.Lock()
	defer ct.mu.Unlock()
	res := DrainResult{Pos: pos, Err: err}
	if err == nil {
		delete(ct.attempts, pos)
		res.Remaining = ct.queue.len()
		l.conf.Metrics.incRegenerated(name)
		l.conf.Metrics.setQueue(name, res.Remaining)
		if l.conf.LogChunks {
			l.log.Info("Regenerating superflat chunk.", "world", name, "x", pos[0], "z", pos[1], "remaining", res.Remaining)
		}
		return res
	}

	l.conf.Metrics.incFailed(name)
	ct.attempts[pos]++
	if attempts := ct.attempts[pos]; attempts < l.conf.RetryBudget {
		ct.queue.push(pos)
		res.Requeued = true
		l.log.Warn("Could not regenerate chunk, retrying later.", "world", name, "x", pos[0], "z", pos[1], "attempt", attempts, "err", err)
	} else {
		delete(ct.attempts, pos)
		l.conf.Metrics.incDropped(name)
		l.log.Error("Could not regenerate chunk, dropping it from the queue.", "world", name, "x", pos[0], "z", pos[1], "attempts", attempts, "err", err)
	}
	res.Remaining = ct.queue.len()
	l.conf.Metrics.setQueue(name, res.Remaining)
	return res
}

var (
	errNoGenerator = errors.New("no generator bound")
	errWorldClosed = errors.New("world closed")
)

// regenerate generates the chunk at pos with the generator of b and writes
// every block of it into the live chunk of w, after which the populators of
// the generator are run over the live chunk. The random source of the
// populators only depends on the world seed and pos, so regenerating a chunk
// twice yields the same content.
func regenerate(w *world.World, b Binding, pos world.ChunkPos) error {
	if b.Generator == nil {
		return errNoGenerator
	}
	live := w.Chunk(pos)
	if live == nil {
		return errWorldClosed
	}
	r := w.Range()
	fresh := chunk.New(world.AirRuntimeID, r)
	if b.Biomes == nil {
		b.Biomes = world.NewBiomeGrid(w.Dimension())
	}
	b.Biomes.Reset()
	b.Generator.GenerateChunk(pos, fresh, b.Biomes)

	for x := uint8(0); x < 16; x++ {
		for z := uint8(0); z < 16; z++ {
			for y := r.Min(); y <= r.Max(); y++ {
				live.SetBlock(x, int16(y), z, fresh.Block(x, int16(y), z))
			}
		}
	}

	rnd := world.ChunkRandom(w.Seed(), pos)
	for _, p := range b.Generator.Populators(w) {
		p.Populate(w, pos, live, rnd)
	}
	return nil
}
