package world

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dm-vev/cleanflat/server/world/chunk"
	"github.com/dm-vev/cleanflat/server/world/cube"
	"github.com/google/uuid"
)

// Config may be used to create a new World. It holds all the settings that
// are needed to create a World. The zero value of Config is usable and results
// in a void overworld.
type Config struct {
	// Log is the Logger used by the World. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Name is the name of the World. Names are used to look up per-world
	// settings and feature flags, so they should be unique per server.
	Name string
	// Dim is the Dimension of the World. If nil, the World will use
	// Overworld.
	Dim Dimension
	// Seed is the seed of the World. It is used to derive the random sources
	// handed to populators.
	Seed int64
	// Generator is the Generator used to generate chunks that are loaded for
	// the first time. If nil, NopGenerator is used.
	Generator Generator
}

// New creates a new World using the Config conf.
func (conf Config) New() *World {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Dim == nil {
		conf.Dim = Overworld
	}
	if conf.Name == "" {
		conf.Name = "World"
	}
	if conf.Generator == nil {
		conf.Generator = NopGenerator{}
	}
	w := &World{
		conf:   conf,
		id:     uuid.New(),
		ra:     conf.Dim.Range(),
		chunks: make(map[ChunkPos]*chunk.Chunk),
		stored: make(map[ChunkPos]*chunk.Chunk),
	}
	w.conf.Log = conf.Log.With("world", conf.Name)
	var h Handler = NopHandler{}
	w.handler.Store(&h)
	return w
}

// World holds the chunks of a single named dimension. Chunks are generated by
// the World's Generator the first time they are loaded and kept in memory
// after being unloaded, so that loading them again restores the previous
// content. A nil *World is safe to use but not functional.
type World struct {
	conf Config
	id   uuid.UUID
	ra   cube.Range

	handler atomic.Pointer[Handler]
	closed  atomic.Bool

	mu sync.Mutex
	// chunks holds the chunks currently loaded.
	chunks map[ChunkPos]*chunk.Chunk
	// stored holds chunks that were unloaded. They are restored instead of
	// generated when loaded again.
	stored map[ChunkPos]*chunk.Chunk
}

// Name returns the name of the World.
func (w *World) Name() string {
	if w == nil {
		return ""
	}
	return w.conf.Name
}

// UUID returns the unique ID assigned to the World when it was created.
func (w *World) UUID() uuid.UUID {
	if w == nil {
		return uuid.Nil
	}
	return w.id
}

// Dimension returns the Dimension assigned to the World.
func (w *World) Dimension() Dimension {
	if w == nil {
		return Overworld
	}
	return w.conf.Dim
}

// Range returns the range in blocks of the World (min and max). It is
// equivalent to calling World.Dimension().Range().
func (w *World) Range() cube.Range {
	if w == nil {
		return cube.Range{}
	}
	return w.ra
}

// Seed returns the seed of the World.
func (w *World) Seed() int64 {
	if w == nil {
		return 0
	}
	return w.conf.Seed
}

// Generator returns the Generator the World uses for chunks loaded for the
// first time.
func (w *World) Generator() Generator {
	if w == nil {
		return NopGenerator{}
	}
	return w.conf.Generator
}

// Logger returns the logger of the World.
func (w *World) Logger() *slog.Logger {
	if w == nil {
		return slog.Default()
	}
	return w.conf.Log
}

// Handle changes the current Handler of the world. As a result, events called
// by the world will call handlers of the Handler passed. Handle sets the world's
// Handler to NopHandler if nil is passed.
func (w *World) Handle(h Handler) {
	if w == nil {
		return
	}
	if h == nil {
		h = NopHandler{}
	}
	h = wrapWorldHandler(w, h)
	w.handler.Store(&h)
}

// Handler returns the Handler of the world.
func (w *World) Handler() Handler {
	if w == nil {
		return NopHandler{}
	}
	return *w.handler.Load()
}

// Chunk returns the loaded chunk at the position passed, loading it first if
// it is not loaded yet.
func (w *World) Chunk(pos ChunkPos) *chunk.Chunk {
	c, _ := w.LoadChunk(pos)
	return c
}

// ChunkIfLoaded returns the chunk at the position passed if it is currently
// loaded.
func (w *World) ChunkIfLoaded(pos ChunkPos) (*chunk.Chunk, bool) {
	if w == nil {
		return nil, false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunks[pos]
	return c, ok
}

// LoadChunk loads the chunk at the position passed. If the chunk was loaded
// already, it is returned and false is returned. Otherwise the chunk is
// restored from storage or generated, the World's Handler is notified through
// HandleChunkLoad and true is returned.
func (w *World) LoadChunk(pos ChunkPos) (*chunk.Chunk, bool) {
	if w == nil || w.closed.Load() {
		return nil, false
	}
	w.mu.Lock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.Unlock()
		return c, false
	}
	c, ok := w.stored[pos]
	if ok {
		delete(w.stored, pos)
	} else {
		c = w.generate(pos)
	}
	w.chunks[pos] = c
	w.mu.Unlock()

	w.Handler().HandleChunkLoad(w, pos, c)
	return c, true
}

// UnloadChunk unloads the chunk at the position passed, keeping its content so
// that a later LoadChunk restores it. UnloadChunk returns false if the chunk
// was not loaded.
func (w *World) UnloadChunk(pos ChunkPos) bool {
	if w == nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunks[pos]
	if !ok {
		return false
	}
	delete(w.chunks, pos)
	w.stored[pos] = c
	return true
}

// LoadedChunks returns the positions of all loaded chunks, sorted by X and
// then Z.
func (w *World) LoadedChunks() []ChunkPos {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	positions := slices.Collect(maps.Keys(w.chunks))
	w.mu.Unlock()
	slices.SortFunc(positions, func(a, b ChunkPos) int {
		if a[0] != b[0] {
			return int(a[0]) - int(b[0])
		}
		return int(a[1]) - int(b[1])
	})
	return positions
}

// LoadedChunkCount returns the number of chunks currently loaded.
func (w *World) LoadedChunkCount() int {
	if w == nil {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.chunks)
}

// Close closes the world. Chunks can no longer be loaded afterwards and the
// Handler's HandleClose method is called.
func (w *World) Close() error {
	if w == nil || !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	w.Handler().HandleClose(w)
	w.mu.Lock()
	clear(w.chunks)
	clear(w.stored)
	w.mu.Unlock()
	return nil
}

// generate creates a new chunk at pos using the World's Generator and runs
// its populators.
func (w *World) generate(pos ChunkPos) *chunk.Chunk {
	c := chunk.New(AirRuntimeID, w.ra)
	gen := w.conf.Generator
	gen.GenerateChunk(pos, c, NewBiomeGrid(w.conf.Dim))
	if populators := gen.Populators(w); len(populators) > 0 {
		r := ChunkRandom(w.conf.Seed, pos)
		for _, p := range populators {
			p.Populate(w, pos, c, r)
		}
	}
	return c
}
