package pmgen

import (
	"math/rand/v2"

	"github.com/dm-vev/cleanflat/server/world/generator/pmgen/biome"
)

// biomeSelector picks biomes from two low frequency noise maps: temperature
// and rainfall.
type biomeSelector struct {
	temperature *noise
	rainfall    *noise
}

func newBiomeSelector(r *rand.Rand) *biomeSelector {
	return &biomeSelector{
		temperature: newNoise(r, 2, 1.0/16, 1.0/512),
		rainfall:    newNoise(r, 2, 1.0/16, 1.0/512),
	}
}

// pickBiome returns the biome of the column at x and z.
func (s *biomeSelector) pickBiome(x, z int64) biome.Biome {
	temperature := clamp((s.temperature.noise2D(float64(x), float64(z))+1)/2, 0, 1)
	rainfall := clamp((s.rainfall.noise2D(float64(x), float64(z))+1)/2, 0, 1)
	return lookup(temperature, rainfall)
}

func lookup(temperature, rainfall float64) biome.Biome {
	switch {
	case rainfall < 0.25:
		switch {
		case temperature < 0.7:
			return biome.Ocean{}
		case temperature < 0.85:
			return biome.River{}
		}
		return biome.Swamp{}
	case rainfall < 0.6:
		switch {
		case temperature < 0.25:
			return biome.IcePlains{}
		case temperature < 0.75:
			return biome.Plains{}
		}
		return biome.Desert{}
	case rainfall < 0.8:
		switch {
		case temperature < 0.25:
			return biome.Taiga{}
		case temperature < 0.75:
			return biome.Forest{}
		}
		return biome.BirchForest{}
	}
	if temperature < 0.7 {
		return biome.Mountains{}
	}
	return biome.River{}
}
