package world

import (
	"fmt"
	"strings"

	"github.com/dm-vev/cleanflat/server/world/cube"
)

// ChunkPos holds the position of a chunk. The type is provided as a utility
// struct for keeping track of a chunk's position. Chunks do not themselves
// keep track of that. Chunk positions are different from block positions in
// the way that increasing the X/Z by one means increasing the absolute value
// on the X/Z axis in terms of blocks by 16.
type ChunkPos [2]int32

// String implements fmt.Stringer.
func (p ChunkPos) String() string {
	return fmt.Sprintf("(%v, %v)", p[0], p[1])
}

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 {
	return p[1]
}

// Dimension is a dimension of a World. It influences a variety of properties
// of a World such as the building range and the biome used when generators
// leave a column unclassified.
type Dimension interface {
	// Range returns the lowest and highest valid Y coordinates of a block in
	// the Dimension.
	Range() cube.Range
	// DefaultBiome returns the biome that columns of the Dimension hold before
	// a generator classifies them.
	DefaultBiome() Biome
	fmt.Stringer
}

var (
	// Overworld is the Dimension implementation of a normal overworld. It has
	// a blue sky under normal circumstances and has a sun, clouds, stars and a
	// moon. Overworld has a building range of [-64, 319].
	Overworld overworld
	// Nether is a Dimension implementation with a lower base light level and a
	// darker sky without sun/moon. It has a building range of [0, 127].
	Nether nether
	// End is a Dimension implementation with a dark sky. It has a building
	// range of [0, 255].
	End end
)

type (
	overworld struct{}
	nether    struct{}
	end       struct{}
)

func (overworld) Range() cube.Range   { return cube.Range{-64, 319} }
func (overworld) DefaultBiome() Biome { return BiomePlains }
func (overworld) String() string      { return "Overworld" }

func (nether) Range() cube.Range   { return cube.Range{0, 127} }
func (nether) DefaultBiome() Biome { return BiomeNetherWastes }
func (nether) String() string      { return "Nether" }

func (end) Range() cube.Range   { return cube.Range{0, 255} }
func (end) DefaultBiome() Biome { return BiomeTheEnd }
func (end) String() string      { return "End" }

// DimensionByName returns the Dimension with the name passed. Names are
// matched case-insensitively, and "the_nether" and "the_end" are accepted as
// aliases.
func DimensionByName(name string) (Dimension, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "overworld", "":
		return Overworld, true
	case "nether", "the_nether":
		return Nether, true
	case "end", "the_end":
		return End, true
	}
	return nil, false
}
