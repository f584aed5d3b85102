package world

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

// Generator handles the generating of newly created chunks. Worlds have one
// generator which is used to generate chunks when a chunk is loaded for the
// first time.
type Generator interface {
	// GenerateChunk generates a chunk at a chunk position passed. The generator
	// sets blocks in the chunk that is passed and records the biome of every
	// column in the grid.
	GenerateChunk(pos ChunkPos, c *chunk.Chunk, biomes *BiomeGrid)
	// Populators returns the decoration passes that should run over a chunk
	// after GenerateChunk, in order.
	Populators(w *World) []Populator
}

// Populator decorates a generated chunk, for example by placing ores or
// vegetation. Populate may only modify the chunk passed: it must not load
// chunks from the World, as it may be called while the World is loading.
type Populator interface {
	Populate(w *World, pos ChunkPos, c *chunk.Chunk, r *rand.Rand)
}

// NopGenerator is the default generator of a World. It places no blocks in the
// World which results in a void World.
type NopGenerator struct{}

// GenerateChunk ...
func (NopGenerator) GenerateChunk(ChunkPos, *chunk.Chunk, *BiomeGrid) {}

// Populators ...
func (NopGenerator) Populators(*World) []Populator { return nil }

// ChunkRandom returns a new random source for the chunk at pos. The source is
// derived from the seed and position only, so population is reproducible.
func ChunkRandom(seed int64, pos ChunkPos) *rand.Rand {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(pos[0]))
	binary.LittleEndian.PutUint32(buf[12:], uint32(pos[1]))
	h := xxhash.Sum64(buf[:])
	return rand.New(rand.NewPCG(h, h^0x9e3779b97f4a7c15))
}
