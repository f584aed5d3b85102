// Package populate implements decoration passes run over chunks after their
// terrain has been generated. Every populator only reads and writes the chunk
// it is handed, so the outcome depends on nothing but the chunk content and
// the random source.
package populate

import (
	"math/rand/v2"

	"github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

var (
	airRID        = world.BlockRuntimeID(block.Air{})
	grassRID      = world.BlockRuntimeID(block.Grass{})
	shortGrassRID = world.BlockRuntimeID(block.ShortGrass{})
)

// rangeIn returns a random int in [lo, hi].
func rangeIn(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// surface returns the Y value of the highest grass block at x and z that has
// air above it.
func surface(c *chunk.Chunk, x, z uint8) (int16, bool) {
	top := c.HighestBlock(x, z)
	for y := top; y > int16(c.Range().Min()); y-- {
		if c.Block(x, y, z) == grassRID && c.Block(x, y+1, z) == airRID {
			return y, true
		}
		if c.Block(x, y, z) != airRID && c.Block(x, y, z) != shortGrassRID {
			return 0, false
		}
	}
	return 0, false
}

// TallGrass scatters short grass over the grass blocks of a chunk.
type TallGrass struct {
	Amount int
}

// Populate ...
func (t TallGrass) Populate(_ *world.World, _ world.ChunkPos, c *chunk.Chunk, r *rand.Rand) {
	amount := r.IntN(2) + t.Amount
	for i := 0; i < amount; i++ {
		x, z := uint8(r.IntN(16)), uint8(r.IntN(16))
		if y, ok := surface(c, x, z); ok {
			c.SetBlock(x, y+1, z, shortGrassRID)
		}
	}
}
