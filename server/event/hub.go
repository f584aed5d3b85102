package event

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

type registration struct {
	owner    string
	listener Listener
	id       uint64
}

type registrations struct {
	regs []registration
	next uint64
}

func (l *registrations) add(owner string, listener Listener) uint64 {
	id := l.next
	l.next++
	l.regs = append(l.regs, registration{owner: owner, listener: listener, id: id})
	return id
}

func (l *registrations) removeByID(id uint64) {
	regs := l.regs[:0]
	for _, reg := range l.regs {
		if reg.id != id {
			regs = append(regs, reg)
		}
	}
	l.regs = regs
}

func (l *registrations) removeOwner(owner string) {
	regs := l.regs[:0]
	for _, reg := range l.regs {
		if reg.owner != owner {
			regs = append(regs, reg)
		}
	}
	l.regs = regs
}

func (l *registrations) snapshot() []registration {
	if len(l.regs) == 0 {
		return nil
	}
	out := make([]registration, len(l.regs))
	copy(out, l.regs)
	return out
}

// Hub holds the listeners of a server and dispatches events to them in the
// order they were registered. Dispatching reads an immutable snapshot of the
// listeners, so listeners may be registered and removed from within a
// handler.
type Hub struct {
	log *slog.Logger

	mu    sync.Mutex
	list  registrations
	chain atomic.Pointer[[]registration]

	ready atomic.Bool
}

// NewHub creates an empty Hub. If log is nil, slog.Default() is used.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	h := &Hub{log: log.With("subsystem", "events")}
	h.chain.Store(&[]registration{})
	return h
}

// Register adds a Listener owned by the owner passed. The function returned
// removes the Listener again and may be called more than once.
func (h *Hub) Register(owner string, l Listener) func() {
	if l == nil {
		return func() {}
	}
	h.mu.Lock()
	id := h.list.add(owner, l)
	h.storeLocked()
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			h.list.removeByID(id)
			h.storeLocked()
			h.mu.Unlock()
		})
	}
}

// Clear removes all listeners of the owner passed.
func (h *Hub) Clear(owner string) {
	h.mu.Lock()
	h.list.removeOwner(owner)
	h.storeLocked()
	h.mu.Unlock()
}

// Len returns the number of listeners registered.
func (h *Hub) Len() int {
	return len(*h.chain.Load())
}

// Ready dispatches HandleReady to all listeners. Only the first call has an
// effect. Ready returns false if the event was dispatched before.
func (h *Hub) Ready() bool {
	if !h.ready.CompareAndSwap(false, true) {
		return false
	}
	h.call(func(l Listener) { l.HandleReady() })
	return true
}

// WorldHandler returns a world.Handler dispatching chunk loads of a World to
// the listeners of the Hub before calling base. Wrapping a handler returned
// by WorldHandler again does not dispatch events twice.
func (h *Hub) WorldHandler(base world.Handler) world.Handler {
	if chain, ok := base.(*worldChain); ok {
		base = chain.base
	}
	if base == nil {
		base = world.NopHandler{}
	}
	return &worldChain{hub: h, base: base}
}

// Wrap may be passed to world.SetHandlerWrap so that every handler assigned
// to a World dispatches to the Hub.
func (h *Hub) Wrap(_ *world.World, base world.Handler) world.Handler {
	return h.WorldHandler(base)
}

func (h *Hub) storeLocked() {
	snapshot := h.list.snapshot()
	h.chain.Store(&snapshot)
}

func (h *Hub) call(fn func(Listener)) {
	for _, reg := range *h.chain.Load() {
		h.invoke(reg, fn)
	}
}

func (h *Hub) invoke(reg registration, fn func(Listener)) {
	defer func() {
		if r := recover(); r != nil {
			h.Clear(reg.owner)
			h.log.Error("Listener panic.", "owner", reg.owner, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	fn(reg.listener)
}

type worldChain struct {
	hub  *Hub
	base world.Handler
}

func (c *worldChain) HandleChunkLoad(w *world.World, pos world.ChunkPos, ch *chunk.Chunk) {
	c.hub.call(func(l Listener) { l.HandleChunkLoad(w, pos, ch) })
	c.base.HandleChunkLoad(w, pos, ch)
}

func (c *worldChain) HandleClose(w *world.World) {
	c.base.HandleClose(w)
}
