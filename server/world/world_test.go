package world

import (
	"testing"

	"github.com/dm-vev/cleanflat/server/world/chunk"
)

type layerGenerator struct {
	rid   uint32
	calls *int
}

func (g layerGenerator) GenerateChunk(_ ChunkPos, c *chunk.Chunk, biomes *BiomeGrid) {
	*g.calls++
	for x := uint8(0); x < 16; x++ {
		for z := uint8(0); z < 16; z++ {
			c.SetBlock(x, int16(c.Range().Min()), z, g.rid)
			biomes.SetBiome(x, z, BiomeDesert)
		}
	}
}

func (layerGenerator) Populators(*World) []Populator { return nil }

type recordingHandler struct {
	NopHandler
	loads  []ChunkPos
	closed int
}

func (h *recordingHandler) HandleChunkLoad(_ *World, pos ChunkPos, _ *chunk.Chunk) {
	h.loads = append(h.loads, pos)
}

func (h *recordingHandler) HandleClose(*World) { h.closed++ }

type namedBlock string

func (b namedBlock) EncodeBlock() string { return string(b) }

func TestWorldLoadChunkNotifiesOnce(t *testing.T) {
	calls := 0
	rid := BlockRuntimeID(namedBlock("test:layer"))
	w := Config{Name: "test", Generator: layerGenerator{rid: rid, calls: &calls}}.New()
	h := &recordingHandler{}
	w.Handle(h)

	c, loaded := w.LoadChunk(ChunkPos{1, 2})
	if !loaded {
		t.Fatalf("expected first load to report a fresh load")
	}
	if got := c.Block(0, -64, 0); got != rid {
		t.Fatalf("expected generated layer at range minimum, got %d", got)
	}
	if _, loaded = w.LoadChunk(ChunkPos{1, 2}); loaded {
		t.Fatalf("expected second load of a loaded chunk to be a no-op")
	}
	if len(h.loads) != 1 {
		t.Fatalf("expected one load notification, got %d", len(h.loads))
	}
}

func TestWorldReloadRestoresContent(t *testing.T) {
	calls := 0
	w := Config{Name: "test", Generator: layerGenerator{rid: BlockRuntimeID(namedBlock("test:layer")), calls: &calls}}.New()
	h := &recordingHandler{}
	w.Handle(h)

	pos := ChunkPos{0, 0}
	c := w.Chunk(pos)
	c.SetBlock(4, 10, 4, 42)
	if !w.UnloadChunk(pos) {
		t.Fatalf("expected chunk to unload")
	}
	if w.UnloadChunk(pos) {
		t.Fatalf("expected second unload to report false")
	}
	c = w.Chunk(pos)
	if got := c.Block(4, 10, 4); got != 42 {
		t.Fatalf("expected restored chunk content, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("expected generator to run once, ran %d times", calls)
	}
	if len(h.loads) != 2 {
		t.Fatalf("expected a load notification for every load, got %d", len(h.loads))
	}
}

func TestWorldCloseStopsLoading(t *testing.T) {
	w := Config{Name: "test"}.New()
	h := &recordingHandler{}
	w.Handle(h)
	_ = w.Chunk(ChunkPos{0, 0})
	if err := w.Close(); err != nil {
		t.Fatalf("close world: %v", err)
	}
	_ = w.Close()
	if h.closed != 1 {
		t.Fatalf("expected HandleClose once, got %d", h.closed)
	}
	if c := w.Chunk(ChunkPos{0, 0}); c != nil {
		t.Fatalf("expected nil chunk after close")
	}
}

func TestSetHandlerWrap(t *testing.T) {
	t.Cleanup(func() { SetHandlerWrap(nil) })
	var wrapped int
	SetHandlerWrap(func(_ *World, h Handler) Handler {
		wrapped++
		return h
	})
	w := Config{}.New()
	w.Handle(nil)
	if wrapped != 1 {
		t.Fatalf("expected wrapper to be applied once, got %d", wrapped)
	}
	if _, ok := w.Handler().(NopHandler); !ok {
		t.Fatalf("expected nil handler to normalise to NopHandler, got %T", w.Handler())
	}
}

func TestBlockRegistry(t *testing.T) {
	a := RegisterBlock(namedBlock("test:registry_a"))
	if again := RegisterBlock(namedBlock("test:registry_a")); again != a {
		t.Fatalf("re-registering a block changed its runtime ID: %d != %d", again, a)
	}
	if BlockRuntimeID(namedBlock("test:registry_a")) != a {
		t.Fatalf("BlockRuntimeID mismatch")
	}
	b, ok := BlockByRuntimeID(a)
	if !ok || b.EncodeBlock() != "test:registry_a" {
		t.Fatalf("BlockByRuntimeID(%d) = %v, %v", a, b, ok)
	}
	if BlockRuntimeID(namedBlock("minecraft:air")) != AirRuntimeID {
		t.Fatalf("air must map to runtime ID 0")
	}
	if _, ok := BlockByRuntimeID(1 << 30); ok {
		t.Fatalf("expected unknown runtime ID lookup to fail")
	}
}

func TestBiomeGridDefaults(t *testing.T) {
	g := NewBiomeGrid(Nether)
	if g.Biome(3, 3) != BiomeNetherWastes {
		t.Fatalf("expected nether wastes default, got %v", g.Biome(3, 3))
	}
	g.SetBiome(3, 3, BiomeDesert)
	if g.Biome(3, 3) != BiomeDesert {
		t.Fatalf("expected desert after SetBiome")
	}
	g.Reset()
	if g.Biome(3, 3) != BiomeNetherWastes {
		t.Fatalf("expected Reset to restore default biome")
	}
}

func TestChunkRandomDeterministic(t *testing.T) {
	a, b := ChunkRandom(7, ChunkPos{1, -1}), ChunkRandom(7, ChunkPos{1, -1})
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("chunk random sources diverged at draw %d", i)
		}
	}
	if ChunkRandom(7, ChunkPos{1, -1}).Uint64() == ChunkRandom(7, ChunkPos{-1, 1}).Uint64() {
		t.Fatalf("expected different positions to produce different sources")
	}
}
