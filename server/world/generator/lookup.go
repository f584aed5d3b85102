package generator

import (
	"strings"

	"github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/generator/pmgen"
)

// SuperFlat returns the layered generator hosts fall back to when a world has
// no generator attached: bedrock, two layers of dirt and grass on top.
func SuperFlat() Flat {
	return NewFlat(world.BiomePlains, []world.Block{block.Grass{}, block.Dirt{}, block.Dirt{}, block.Bedrock{}})
}

// ByName returns the generator registered under the name passed, seeded with
// the seed passed. Names are matched case-insensitively. An empty or unknown
// name returns false.
func ByName(name string, seed int64) (world.Generator, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "void", "empty":
		return Void{}, true
	case "flat", "superflat":
		return SuperFlat(), true
	case "pmgen", "normal", "default":
		return pmgen.New(seed), true
	case "nether_flat":
		return NewFlat(world.BiomeNetherWastes, []world.Block{block.Netherrack{}, block.Netherrack{}, block.Netherrack{}, block.Bedrock{}}), true
	case "end_flat":
		return NewFlat(world.BiomeTheEnd, []world.Block{block.EndStone{}, block.EndStone{}, block.EndStone{}, block.Bedrock{}}), true
	}
	return nil, false
}
