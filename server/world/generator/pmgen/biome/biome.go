// Package biome holds the biomes picked by the pmgen generator. A biome
// decides the elevation of the terrain, the blocks covering it and the
// decoration placed on top.
package biome

import (
	"github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/world"
)

// Biome is a biome selectable by the pmgen generator.
type Biome interface {
	// ID returns the world.Biome the columns of this biome are classified as.
	ID() world.Biome
	// Elevation returns the minimum and maximum height of terrain in the
	// biome.
	Elevation() (min, max int)
	// GroundCover returns the blocks placed on top of the terrain, from the
	// surface downwards.
	GroundCover() []world.Block
	// Populators returns the decoration passes run over chunks centred in the
	// biome.
	Populators() []world.Populator
	// Temperature returns the temperature of the biome.
	Temperature() float64
	// Rainfall returns the rainfall of the biome.
	Rainfall() float64
}

type grassy struct{}

func (grassy) GroundCover() []world.Block {
	return []world.Block{block.Grass{}, block.Dirt{}, block.Dirt{}, block.Dirt{}}
}

type sandy struct{}

func (sandy) GroundCover() []world.Block {
	return []world.Block{block.Sand{}, block.Sand{}, block.Sand{}, block.Sand{}}
}

type snowy struct{}

func (snowy) GroundCover() []world.Block {
	return []world.Block{block.Snow{}, block.Grass{}, block.Dirt{}, block.Dirt{}, block.Dirt{}}
}

type watery struct{}

func (watery) GroundCover() []world.Block {
	return []world.Block{block.Gravel{}, block.Gravel{}, block.Gravel{}, block.Gravel{}, block.Gravel{}}
}
