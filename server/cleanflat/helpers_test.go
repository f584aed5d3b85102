package cleanflat

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/dm-vev/cleanflat/server/event"
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/dm-vev/cleanflat/server/scheduler"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
	"github.com/dm-vev/cleanflat/server/world/cube"
	"github.com/stretchr/testify/require"
)

// settings is an in-memory WorldSettings and GeneratorProvider.
type settings struct {
	managed                       map[string]bool
	generators                    map[string]world.Generator
	netherGenerate, netherIslands bool
	endGenerate, endIslands       bool
	lookups                       int
}

func newSettings() *settings {
	return &settings{
		managed:        make(map[string]bool),
		generators:     make(map[string]world.Generator),
		netherGenerate: true, netherIslands: true,
		endGenerate: true, endIslands: true,
	}
}

func (s *settings) InWorld(name string) bool   { return s.managed[name] }
func (s *settings) NetherGenerate(string) bool { return s.netherGenerate }
func (s *settings) NetherIslands(string) bool  { return s.netherIslands }
func (s *settings) EndGenerate(string) bool    { return s.endGenerate }
func (s *settings) EndIslands(string) bool     { return s.endIslands }
func (s *settings) Generator(name, _ string) world.Generator {
	s.lookups++
	return s.generators[name]
}

// records collects log records so tests can count diagnostics.
type records struct {
	mu   sync.Mutex
	list []slog.Record
}

func (r *records) Enabled(context.Context, slog.Level) bool { return true }
func (r *records) WithAttrs([]slog.Attr) slog.Handler       { return r }
func (r *records) WithGroup(string) slog.Handler            { return r }
func (r *records) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	r.list = append(r.list, rec)
	r.mu.Unlock()
	return nil
}

func (r *records) count(level slog.Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.list {
		if rec.Level == level {
			n++
		}
	}
	return n
}

// attr returns the value of the attribute key of the last record logged at
// level.
func (r *records) attr(level slog.Level, key string) (slog.Value, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].Level != level {
			continue
		}
		var (
			v     slog.Value
			found bool
		)
		r.list[i].Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				v, found = a.Value, true
				return false
			}
			return true
		})
		return v, found
	}
	return slog.Value{}, false
}

// unsavedFlags is a FlagStore that updates flags in memory but reports every
// write as not persisted.
type unsavedFlags struct {
	*flags.Store
}

func (u unsavedFlags) Set(f flags.Flag, name string, enabled bool) bool {
	u.Store.Set(f, name, enabled)
	return false
}

type fixture struct {
	t        *testing.T
	l        *Listener
	hub      *event.Hub
	sched    *scheduler.Scheduler
	flags    *flags.Store
	settings *settings
	records  *records
}

func newFixture(t *testing.T, conf Config) *fixture {
	t.Helper()
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := flags.Config{Log: discard}.New()
	require.NoError(t, err)
	t.Cleanup(store.Close)

	f := &fixture{
		t:        t,
		hub:      event.NewHub(discard),
		sched:    scheduler.New(discard),
		flags:    store,
		settings: newSettings(),
		records:  &records{},
	}
	conf.Log = slog.New(f.records)
	conf.Flags, conf.Worlds, conf.Generators, conf.Scheduler = f.flags, f.settings, f.settings, f.sched
	f.l = conf.New()
	f.hub.Register(Owner, f.l)
	return f
}

// world creates a world with the live generator passed. If managed is true,
// the world is managed and gen is assigned to it for regeneration.
func (f *fixture) world(name string, dim world.Dimension, live, gen world.Generator) *world.World {
	w := world.Config{
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Name:      name,
		Dim:       dim,
		Seed:      1234,
		Generator: live,
	}.New()
	w.Handle(f.hub.WorldHandler(nil))
	f.settings.managed[name] = true
	if gen != nil {
		f.settings.generators[name] = gen
	}
	return w
}

func (f *fixture) tick(n int) {
	for i := 0; i < n; i++ {
		f.sched.Tick()
	}
}

// column returns a chunk with the blocks passed placed at x=0, z=0 from base
// upwards.
func column(r cube.Range, base int16, blocks ...world.Block) *chunk.Chunk {
	c := chunk.New(world.AirRuntimeID, r)
	for i, b := range blocks {
		c.SetBlock(0, base+int16(i), 0, world.BlockRuntimeID(b))
	}
	return c
}

// expected returns the content a chunk at pos of a fresh world generated by
// gen with the seed of the fixture worlds would have.
func expected(gen world.Generator, dim world.Dimension, pos world.ChunkPos) uint64 {
	w := world.Config{
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Name:      "reference",
		Dim:       dim,
		Seed:      1234,
		Generator: gen,
	}.New()
	defer w.Close()
	return w.Chunk(pos).Digest()
}

// panicGenerator panics when generating the chunk at bad.
type panicGenerator struct {
	world.Generator
	bad world.ChunkPos
}

func (g panicGenerator) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk, biomes *world.BiomeGrid) {
	if pos == g.bad {
		panic("corrupt generator state")
	}
	g.Generator.GenerateChunk(pos, c, biomes)
}
