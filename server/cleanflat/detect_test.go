package cleanflat

import (
	"testing"

	"github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/generator"
	"github.com/dm-vev/cleanflat/server/world/generator/pmgen"
)

var layers = []world.Block{block.Bedrock{}, block.Dirt{}, block.Dirt{}, block.Grass{}}

func TestDetectionRequiresReady(t *testing.T) {
	f := newFixture(t, Config{})
	w := f.world("bskyblock_world", world.Overworld, generator.SuperFlat(), pmgen.New(1))
	c := column(w.Range(), -64, layers...)

	if f.l.RequiresRegeneration(w, world.ChunkPos{}, c) {
		t.Fatalf("expected no regeneration before ready")
	}
	w.LoadChunk(world.ChunkPos{0, 0})
	if n := len(f.l.Queued(w)); n != 0 {
		t.Fatalf("expected chunks loaded before ready to be ignored, %d queued", n)
	}
	if f.settings.lookups != 0 {
		t.Fatalf("expected no generator lookup before ready")
	}

	f.hub.Ready()
	if !f.l.Ready() || !f.l.RequiresRegeneration(w, world.ChunkPos{}, c) {
		t.Fatalf("expected regeneration after ready")
	}
}

func TestDetectionWindows(t *testing.T) {
	f := newFixture(t, Config{})
	f.hub.Ready()
	w := f.world("bskyblock_world", world.Overworld, nil, pmgen.New(1))
	r := w.Range()

	tests := map[string]struct {
		base   int16
		blocks []world.Block
		want   bool
	}{
		"bottom of world": {base: -64, blocks: layers, want: true},
		"legacy y=0":      {base: 0, blocks: layers, want: true},
		"shifted by one":  {base: -63, blocks: layers, want: false},
		"legacy shifted":  {base: 1, blocks: layers, want: false},
		"wrong order":     {base: -64, blocks: []world.Block{block.Bedrock{}, block.Dirt{}, block.Grass{}, block.Dirt{}}, want: false},
		"missing grass":   {base: 0, blocks: []world.Block{block.Bedrock{}, block.Dirt{}, block.Dirt{}}, want: false},
		"stone terrain":   {base: -64, blocks: []world.Block{block.Bedrock{}, block.Stone{}, block.Stone{}, block.Stone{}}, want: false},
		"empty":           {base: 0, want: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := column(r, tc.base, tc.blocks...)
			if got := f.l.RequiresRegeneration(w, world.ChunkPos{}, c); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	both := column(r, -64, layers...)
	for i, b := range layers {
		both.SetBlock(0, int16(i), 0, world.BlockRuntimeID(b))
	}
	if !f.l.RequiresRegeneration(w, world.ChunkPos{}, both) {
		t.Fatalf("expected a chunk matching both windows to require regeneration")
	}
}

func TestDetectionNetherBottom(t *testing.T) {
	f := newFixture(t, Config{})
	f.hub.Ready()
	w := f.world("bskyblock_world_nether", world.Nether, nil, generator.Void{})

	// The nether starts at y=0, so both windows sample the same column.
	if !f.l.RequiresRegeneration(w, world.ChunkPos{}, column(w.Range(), 0, layers...)) {
		t.Fatalf("expected nether superflat chunk to require regeneration")
	}
}

func TestDetectionWorldGates(t *testing.T) {
	f := newFixture(t, Config{})
	f.hub.Ready()
	over := f.world("bskyblock_world", world.Overworld, nil, pmgen.New(1))
	nether := f.world("bskyblock_world_nether", world.Nether, nil, generator.Void{})
	end := f.world("bskyblock_world_the_end", world.End, nil, generator.Void{})
	unmanaged := f.world("lobby", world.Overworld, nil, pmgen.New(1))
	delete(f.settings.managed, "lobby")

	flat := func(w *world.World) bool {
		return f.l.RequiresRegeneration(w, world.ChunkPos{}, column(w.Range(), 0, layers...))
	}

	if flat(unmanaged) {
		t.Fatalf("expected unmanaged world to be ignored")
	}
	if !flat(over) {
		t.Fatalf("expected managed world to be checked")
	}
	f.flags.Set(flags.CleanSuperFlat, "bskyblock_world", false)
	if flat(over) {
		t.Fatalf("expected world with flag disabled to be ignored")
	}

	for _, tc := range []struct {
		name                    string
		w                       *world.World
		generate, islands, want bool
	}{
		{"nether", nether, true, true, true},
		{"nether not generated", nether, false, true, false},
		{"nether without islands", nether, true, false, false},
		{"end", end, true, true, true},
		{"end not generated", end, false, true, false},
		{"end without islands", end, true, false, false},
	} {
		f.settings.netherGenerate, f.settings.netherIslands = tc.generate, tc.islands
		f.settings.endGenerate, f.settings.endIslands = tc.generate, tc.islands
		if got := flat(tc.w); got != tc.want {
			t.Fatalf("%v: expected %v, got %v", tc.name, tc.want, got)
		}
	}

	// Dimension toggles do not apply to the overworld.
	f.flags.Set(flags.CleanSuperFlat, "bskyblock_world", true)
	f.settings.netherGenerate, f.settings.endGenerate = false, false
	if !flat(over) {
		t.Fatalf("expected overworld to ignore nether and end toggles")
	}
}
