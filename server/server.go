package server

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dm-vev/cleanflat/server/cleanflat"
	"github.com/dm-vev/cleanflat/server/event"
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/dm-vev/cleanflat/server/gamemode"
	"github.com/dm-vev/cleanflat/server/scheduler"
	"github.com/dm-vev/cleanflat/server/world"
)

var (
	// ErrUnknownWorld is returned when an operation names a world that the
	// Server does not host.
	ErrUnknownWorld = errors.New("unknown world")
	// ErrClosed is returned when the Server was closed.
	ErrClosed = errors.New("server closed")
)

// Server hosts the worlds of game modes. It owns the tick loop that drives
// scheduled tasks, the event hub that dispatches chunk loads and the listener
// that regenerates chunks generated as superflat.
type Server struct {
	conf Config
	log  *slog.Logger

	hub   *event.Hub
	sched *scheduler.Scheduler
	flags *flags.Store
	clean *cleanflat.Listener

	started atomic.Pointer[time.Time]
	tps     atomic.Uint64

	queue     chan job
	closing   chan struct{}
	closeOnce sync.Once
	running   atomic.Bool
	done      chan struct{}

	worldMu sync.RWMutex
	worlds  map[string]*world.World
}

type job struct {
	fn   func()
	done chan struct{}
}

func newServer(conf Config) (*Server, error) {
	store, err := flags.Config{Log: conf.Log, Handler: conf.Database}.New()
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}
	srv := &Server{
		conf:    conf,
		log:     conf.Log,
		hub:     event.NewHub(conf.Log),
		sched:   scheduler.New(conf.Log),
		flags:   store,
		queue:   make(chan job, 256),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
		worlds:  make(map[string]*world.World),
	}
	srv.clean = cleanflat.Config{
		Log:         conf.Log,
		Flags:       store,
		Worlds:      conf.Registry,
		Generators:  conf.Registry,
		Scheduler:   srv.sched,
		LogChunks:   conf.LogCleanSuperFlatChunks,
		RetryBudget: conf.CleanSuperFlatRetries,
	}.New()
	srv.hub.Register(cleanflat.Owner, srv.clean)

	for _, entry := range conf.Registry.Worlds() {
		srv.createWorld(entry)
	}
	return srv, nil
}

// createWorld creates the world of a registry entry and makes it dispatch
// chunk loads to the event hub.
func (srv *Server) createWorld(entry gamemode.World) *world.World {
	dim := entry.Dim()
	w := world.Config{
		Log:       srv.log,
		Name:      entry.Name,
		Dim:       dim,
		Seed:      entry.Seed,
		Generator: srv.conf.Generator(dim),
	}.New()
	w.Handle(srv.hub.WorldHandler(nil))

	srv.worldMu.Lock()
	srv.worlds[strings.ToLower(entry.Name)] = w
	srv.worldMu.Unlock()
	srv.log.Debug("Created world.", "world", entry.Name, "dimension", dim.String())
	return w
}

// Name returns the name of the Server.
func (srv *Server) Name() string {
	return srv.conf.Name
}

// World returns the world with the name passed. Names are case-insensitive.
func (srv *Server) World(name string) (*world.World, bool) {
	srv.worldMu.RLock()
	defer srv.worldMu.RUnlock()
	w, ok := srv.worlds[strings.ToLower(name)]
	return w, ok
}

// Worlds returns all worlds of the Server sorted by name.
func (srv *Server) Worlds() []*world.World {
	srv.worldMu.RLock()
	all := make([]*world.World, 0, len(srv.worlds))
	for _, w := range srv.worlds {
		all = append(all, w)
	}
	srv.worldMu.RUnlock()
	slices.SortFunc(all, func(a, b *world.World) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return all
}

// Listener returns the listener that regenerates superflat chunks.
func (srv *Server) Listener() *cleanflat.Listener {
	return srv.clean
}

// Flags returns the feature flag store of the Server.
func (srv *Server) Flags() *flags.Store {
	return srv.flags
}

// Registry returns the registry of worlds managed by game modes.
func (srv *Server) Registry() *gamemode.Registry {
	return srv.conf.Registry
}

// Scheduler returns the scheduler driven by the tick loop.
func (srv *Server) Scheduler() *scheduler.Scheduler {
	return srv.sched
}

// StartTime returns the time Run was called. The zero time is returned if the
// Server is not running.
func (srv *Server) StartTime() time.Time {
	if t := srv.started.Load(); t != nil {
		return *t
	}
	return time.Time{}
}

// TPS returns the ticks per second measured over the last samples.
func (srv *Server) TPS() float64 {
	return math.Float64frombits(srv.tps.Load())
}

// Ready dispatches the ready event to all listeners. Only the first call has
// an effect.
func (srv *Server) Ready() bool {
	if !srv.hub.Ready() {
		return false
	}
	srv.log.Info("Server ready.", "worlds", len(srv.Worlds()))
	return true
}

// Exec queues fn to run on the tick goroutine at the start of the next tick.
// The channel returned is closed once fn has run. If the Server is closed, fn
// is not run and the channel returned is closed immediately.
func (srv *Server) Exec(fn func()) <-chan struct{} {
	done := make(chan struct{})
	select {
	case <-srv.closing:
		close(done)
		return done
	default:
	}
	select {
	case srv.queue <- job{fn: fn, done: done}:
	case <-srv.closing:
		close(done)
	}
	return done
}

// LoadChunk loads the chunk at pos in the world with the name passed on the
// tick goroutine. The channel returned is closed once the chunk is loaded.
func (srv *Server) LoadChunk(name string, pos world.ChunkPos) (<-chan struct{}, error) {
	w, ok := srv.World(name)
	if !ok {
		return nil, fmt.Errorf("load chunk %v: %w: %q", pos, ErrUnknownWorld, name)
	}
	return srv.Exec(func() { w.LoadChunk(pos) }), nil
}

// Close stops the tick loop if it is running, drops all queued
// regenerations, closes the worlds and the flag store. Close is safe to call
// more than once, but must not be called from the tick goroutine.
func (srv *Server) Close() error {
	var err error
	srv.closeOnce.Do(func() {
		close(srv.closing)
		if srv.running.Load() {
			<-srv.done
		}
		for n := len(srv.queue); n > 0; n-- {
			close((<-srv.queue).done)
		}
		srv.hub.Clear(cleanflat.Owner)
		srv.sched.CancelOwner(cleanflat.Owner)

		for _, w := range srv.Worlds() {
			srv.clean.Discard(w)
			if cerr := w.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("close world %v: %w", w.Name(), cerr))
			}
		}
		srv.flags.Close()
		srv.log.Info("Server closed.")
	})
	return err
}
