package populate

import (
	"math/rand/v2"

	"github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

// Tree grows simple oak trees on grass blocks. Trees too close to the chunk
// border to fit their canopy are not placed.
type Tree struct {
	Amount int
}

// Populate ...
func (t Tree) Populate(_ *world.World, _ world.ChunkPos, c *chunk.Chunk, r *rand.Rand) {
	logRID, leavesRID := world.BlockRuntimeID(block.Log{}), world.BlockRuntimeID(block.Leaves{})
	dirtRID := world.BlockRuntimeID(block.Dirt{})

	amount := r.IntN(2) + t.Amount
	for i := 0; i < amount; i++ {
		x, z := uint8(rangeIn(r, 2, 13)), uint8(rangeIn(r, 2, 13))
		y, ok := surface(c, x, z)
		if !ok {
			continue
		}
		height := int16(rangeIn(r, 4, 6))
		if int(y+height+1) > c.Range().Max() {
			continue
		}
		c.SetBlock(x, y, z, dirtRID)
		top := y + height
		for yy := top - 2; yy <= top+1; yy++ {
			radius := 2
			if yy > top-1 {
				radius = 1
			}
			for dx := -radius; dx <= radius; dx++ {
				for dz := -radius; dz <= radius; dz++ {
					if radius == 2 && (dx == -2 || dx == 2) && (dz == -2 || dz == 2) && r.IntN(2) == 0 {
						continue
					}
					lx, lz := uint8(int(x)+dx), uint8(int(z)+dz)
					if cur := c.Block(lx, yy, lz); cur == airRID || cur == shortGrassRID {
						c.SetBlock(lx, yy, lz, leavesRID)
					}
				}
			}
		}
		for yy := y + 1; yy <= top; yy++ {
			c.SetBlock(x, yy, z, logRID)
		}
	}
}
