package chunk

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dm-vev/cleanflat/server/world/cube"
)

// Chunk is a full-height column of 16x16 blocks. Blocks are stored as runtime
// IDs indexed by x first, then z, then y, so that a horizontal layer is
// contiguous in memory.
type Chunk struct {
	air    uint32
	r      cube.Range
	blocks []uint32
}

// New initialises a new chunk filled with air, spanning the Range passed.
func New(air uint32, r cube.Range) *Chunk {
	c := &Chunk{air: air, r: r, blocks: make([]uint32, 256*r.Height())}
	if air != 0 {
		for i := range c.blocks {
			c.blocks[i] = air
		}
	}
	return c
}

// Range returns the cube.Range of the Chunk as passed to New.
func (c *Chunk) Range() cube.Range {
	return c.r
}

// Air returns the runtime ID used for air in this chunk.
func (c *Chunk) Air() uint32 {
	return c.air
}

// Block returns the runtime ID of the block at a given x, y and z in a chunk.
// Positions outside the chunk's Range read as air.
func (c *Chunk) Block(x uint8, y int16, z uint8) uint32 {
	i, ok := c.index(x, y, z)
	if !ok {
		return c.air
	}
	return c.blocks[i]
}

// SetBlock sets the runtime ID of a block at a given x, y and z in a chunk.
// Writes outside the chunk's Range are ignored.
func (c *Chunk) SetBlock(x uint8, y int16, z uint8, rid uint32) {
	if i, ok := c.index(x, y, z); ok {
		c.blocks[i] = rid
	}
}

// HighestBlock returns the Y value of the highest non-air block at an x and z
// in the chunk, or the minimum of the Range if the column is empty.
func (c *Chunk) HighestBlock(x, z uint8) int16 {
	for y := int16(c.r[1]); y >= int16(c.r[0]); y-- {
		if c.Block(x, y, z) != c.air {
			return y
		}
	}
	return int16(c.r[0])
}

// Digest returns a hash of the block content of the chunk. Two chunks with the
// same Range and the same blocks always produce the same digest.
func (c *Chunk) Digest() uint64 {
	d := xxhash.New()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(c.r[0])))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(c.r[1])))
	_, _ = d.Write(buf[:])
	for _, rid := range c.blocks {
		binary.LittleEndian.PutUint32(buf[:], rid)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func (c *Chunk) index(x uint8, y int16, z uint8) (int, bool) {
	if x > 15 || z > 15 || !c.r.Contains(int(y)) {
		return 0, false
	}
	return int(x) | int(z)<<4 | (int(y)-c.r[0])<<8, true
}
