package generator

import (
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

// Flat is the flat generator of World. It generates flat worlds (like
// superflat in Minecraft) with a single biome and layers of blocks passed.
type Flat struct {
	// base is the absolute Y value of the lowest layer. It is only used if
	// fixedBase is set, otherwise layers start at the bottom of the chunk.
	base      int16
	fixedBase bool
	biome     world.Biome
	layers    []world.Block
	rids      []uint32
}

// NewFlat creates a new Flat generator. Chunks generated are completely filled
// with the world.Biome passed. layers is a list of block layers placed by the
// Flat generator. The layers are ordered in a way where the last element in
// the slice is placed as the bottom most block of the chunk.
func NewFlat(biome world.Biome, layers []world.Block) Flat {
	f := Flat{biome: biome, layers: layers, rids: make([]uint32, len(layers))}
	for i, b := range layers {
		f.rids[len(layers)-1-i] = world.BlockRuntimeID(b)
	}
	return f
}

// AtBase returns a copy of the Flat generator that places its bottom layer at
// the absolute Y value passed instead of at the bottom of the chunk. Older
// world formats placed flat layers at Y=0 regardless of the dimension's
// range.
func (f Flat) AtBase(y int16) Flat {
	f.base, f.fixedBase = y, true
	return f
}

// GenerateChunk ...
func (f Flat) GenerateChunk(_ world.ChunkPos, c *chunk.Chunk, biomes *world.BiomeGrid) {
	start := int16(c.Range().Min())
	if f.fixedBase {
		start = f.base
	}
	for x := uint8(0); x < 16; x++ {
		for z := uint8(0); z < 16; z++ {
			biomes.SetBiome(x, z, f.biome)
			for i, rid := range f.rids {
				c.SetBlock(x, start+int16(i), z, rid)
			}
		}
	}
}

// Populators ...
func (Flat) Populators(*world.World) []world.Populator { return nil }

// Void generates empty chunks. Every column is classified with the default
// biome of the chunk's dimension.
type Void struct{}

// GenerateChunk ...
func (Void) GenerateChunk(world.ChunkPos, *chunk.Chunk, *world.BiomeGrid) {}

// Populators ...
func (Void) Populators(*world.World) []world.Populator { return nil }
