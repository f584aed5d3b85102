// Package pmgen implements a noise based overworld generator. Terrain height
// follows the elevation of the biomes around each column, smoothed with a
// gaussian kernel, and is decorated by ore veins and biome populators.
package pmgen

import (
	"math/rand/v2"

	"github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
	"github.com/dm-vev/cleanflat/server/world/generator/pmgen/biome"
	"github.com/dm-vev/cleanflat/server/world/generator/pmgen/populate"
)

const (
	smoothSize  = 2
	waterHeight = 62
	terrainTop  = 128
)

var gaussianKernel = [5][5]float64{
	{1.4715177646858, 2.141045714076, 2.4261226388505, 2.141045714076, 1.4715177646858},
	{2.141045714076, 3.1152031322856, 3.5299876103384, 3.1152031322856, 2.141045714076},
	{2.4261226388505, 3.5299876103384, 4, 3.5299876103384, 2.4261226388505},
	{2.141045714076, 3.1152031322856, 3.5299876103384, 3.1152031322856, 2.141045714076},
	{1.4715177646858, 2.141045714076, 2.4261226388505, 2.141045714076, 1.4715177646858},
}

// ores are the veins placed in the stone of every chunk.
var ores = populate.Ore{Types: []populate.OreType{
	{Material: block.CoalOre{}, Replaces: block.Stone{}, ClusterCount: 20, ClusterSize: 16, MinHeight: 0, MaxHeight: 128},
	{Material: block.IronOre{}, Replaces: block.Stone{}, ClusterCount: 20, ClusterSize: 8, MinHeight: 0, MaxHeight: 64},
	{Material: block.GoldOre{}, Replaces: block.Stone{}, ClusterCount: 2, ClusterSize: 8, MinHeight: 0, MaxHeight: 32},
	{Material: block.DiamondOre{}, Replaces: block.Stone{}, ClusterCount: 1, ClusterSize: 7, MinHeight: 0, MaxHeight: 16},
	{Material: block.Dirt{}, Replaces: block.Stone{}, ClusterCount: 20, ClusterSize: 32, MinHeight: 0, MaxHeight: 128},
	{Material: block.Gravel{}, Replaces: block.Stone{}, ClusterCount: 10, ClusterSize: 16, MinHeight: 0, MaxHeight: 128},
}}

// Generator generates overworld terrain from noise. A Generator holds no
// mutable state after New returns, so it may generate chunks concurrently.
type Generator struct {
	seed     int64
	noise    *noise
	selector *biomeSelector

	bedrockRID, stoneRID, waterRID, airRID uint32
}

// New creates a Generator for the seed passed. Two generators with the same
// seed generate identical chunks.
func New(seed int64) *Generator {
	r := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	return &Generator{
		seed:       seed,
		noise:      newNoise(r, 4, 1.0/4, 1.0/32),
		selector:   newBiomeSelector(r),
		bedrockRID: world.BlockRuntimeID(block.Bedrock{}),
		stoneRID:   world.BlockRuntimeID(block.Stone{}),
		waterRID:   world.BlockRuntimeID(block.Water{}),
		airRID:     world.BlockRuntimeID(block.Air{}),
	}
}

// Seed returns the seed the Generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// GenerateChunk ...
func (g *Generator) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk, biomes *world.BiomeGrid) {
	bx, bz := int64(pos[0])*16, int64(pos[1])*16
	density := g.noise.fastNoise3D(16, terrainTop, 16, 4, 8, 4, float64(bx), 0, float64(bz))
	r := c.Range()

	var (
		cache = make(map[[2]int64]biome.Biome)
		cols  [16][16]biome.Biome
	)
	for x := int64(0); x < 16; x++ {
		for z := int64(0); z < 16; z++ {
			b := g.pickBiome(bx+x, bz+z)
			cols[x][z] = b
			if biomes != nil {
				biomes.SetBiome(uint8(x), uint8(z), b.ID())
			}

			var minSum, maxSum, weightSum float64
			for sx := int64(-smoothSize); sx <= smoothSize; sx++ {
				for sz := int64(-smoothSize); sz <= smoothSize; sz++ {
					weight := gaussianKernel[sx+smoothSize][sz+smoothSize]
					adjacent := b
					if sx != 0 || sz != 0 {
						i := [2]int64{bx + x + sx, bz + z + sz}
						var ok bool
						if adjacent, ok = cache[i]; !ok {
							adjacent = g.pickBiome(i[0], i[1])
							cache[i] = adjacent
						}
					}
					lo, hi := adjacent.Elevation()
					minSum += float64(lo-1) * weight
					maxSum += float64(hi) * weight
					weightSum += weight
				}
			}
			minSum /= weightSum
			maxSum /= weightSum
			smoothHeight := (maxSum - minSum) / 2

			for y := r.Min(); y < terrainTop; y++ {
				lx, ly, lz := uint8(x), int16(y), uint8(z)
				switch {
				case y == r.Min():
					c.SetBlock(lx, ly, lz, g.bedrockRID)
				case y <= 0:
					c.SetBlock(lx, ly, lz, g.stoneRID)
				default:
					v := density.at(int(x), y, int(z)) - 1.0/smoothHeight*(float64(y)-smoothHeight-minSum)
					if v > 0 {
						c.SetBlock(lx, ly, lz, g.stoneRID)
					} else if y <= waterHeight {
						c.SetBlock(lx, ly, lz, g.waterRID)
					}
				}
			}
		}
	}

	for x := uint8(0); x < 16; x++ {
		for z := uint8(0); z < 16; z++ {
			g.cover(c, x, z, cols[x][z].GroundCover())
		}
	}
}

// cover places the ground cover of a biome over the highest solid block of a
// column. Cover is not placed over caves, and non-solid cover is not placed
// in water.
func (g *Generator) cover(c *chunk.Chunk, x, z uint8, cov []world.Block) {
	if len(cov) == 0 {
		return
	}
	var diffY int16
	if !solid(cov[0]) {
		diffY = 1
	}
	start := min(terrainTop-1, g.highestSolid(c, x, z)+diffY)
	end := start - int16(len(cov))
	for y := start; y > end && y >= 0; y-- {
		def := cov[start-y]
		current := c.Block(x, y, z)
		if current == g.airRID && solid(def) {
			break
		}
		if current == g.waterRID && !solid(def) {
			continue
		}
		c.SetBlock(x, y, z, world.BlockRuntimeID(def))
	}
}

func (g *Generator) highestSolid(c *chunk.Chunk, x, z uint8) int16 {
	r := c.Range()
	for y := int16(min(r.Max(), terrainTop-1)); y > int16(r.Min()); y-- {
		if rid := c.Block(x, y, z); rid != g.airRID && rid != g.waterRID {
			return y
		}
	}
	return int16(r.Min())
}

// Populators returns the ore populator followed by the decoration of the
// biome at the centre of each chunk.
func (g *Generator) Populators(*world.World) []world.Populator {
	return []world.Populator{ores, decoration{g: g}}
}

func (g *Generator) pickBiome(x, z int64) biome.Biome {
	hash := x*2345803 ^ z*9236449 ^ g.seed
	hash *= hash + 223
	xNoise, zNoise := hash>>20&3, hash>>22&3
	if xNoise == 3 {
		xNoise = 1
	}
	if zNoise == 3 {
		zNoise = 1
	}
	return g.selector.pickBiome(x+xNoise-1, z+zNoise-1)
}

// decoration runs the populators of the biome found at the centre of a chunk.
type decoration struct {
	g *Generator
}

// Populate ...
func (d decoration) Populate(w *world.World, pos world.ChunkPos, c *chunk.Chunk, r *rand.Rand) {
	centre := d.g.pickBiome(int64(pos[0])*16+7, int64(pos[1])*16+7)
	for _, p := range centre.Populators() {
		p.Populate(w, pos, c, r)
	}
}

func solid(b world.Block) bool {
	switch b.(type) {
	case block.Snow, block.ShortGrass, block.Water, block.Air:
		return false
	}
	return true
}
