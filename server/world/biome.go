package world

// Biome is the environmental classification of a block column. Generators use
// it to decide on ground cover and decoration.
type Biome uint8

const (
	BiomePlains Biome = iota
	BiomeDesert
	BiomeForest
	BiomeBirchForest
	BiomeTaiga
	BiomeSwamp
	BiomeRiver
	BiomeOcean
	BiomeWindsweptHills
	BiomeSnowyPlains
	BiomeNetherWastes
	BiomeTheEnd
)

var biomeNames = [...]string{
	BiomePlains:         "plains",
	BiomeDesert:         "desert",
	BiomeForest:         "forest",
	BiomeBirchForest:    "birch_forest",
	BiomeTaiga:          "taiga",
	BiomeSwamp:          "swamp",
	BiomeRiver:          "river",
	BiomeOcean:          "ocean",
	BiomeWindsweptHills: "windswept_hills",
	BiomeSnowyPlains:    "snowy_plains",
	BiomeNetherWastes:   "nether_wastes",
	BiomeTheEnd:         "the_end",
}

// String returns the vanilla name of the biome.
func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

// BiomeGrid holds the biome of every column of a single chunk. A new grid is
// scoped to a Dimension and reports the Dimension's default biome for every
// column until a generator sets one.
type BiomeGrid struct {
	dim    Dimension
	biomes [256]Biome
}

// NewBiomeGrid returns an empty BiomeGrid for the Dimension passed.
func NewBiomeGrid(dim Dimension) *BiomeGrid {
	g := &BiomeGrid{dim: dim}
	g.Reset()
	return g
}

// Dimension returns the Dimension the grid was created for.
func (g *BiomeGrid) Dimension() Dimension {
	return g.dim
}

// Biome returns the biome of the column at x and z.
func (g *BiomeGrid) Biome(x, z uint8) Biome {
	return g.biomes[int(x&15)|int(z&15)<<4]
}

// SetBiome sets the biome of the column at x and z.
func (g *BiomeGrid) SetBiome(x, z uint8, b Biome) {
	g.biomes[int(x&15)|int(z&15)<<4] = b
}

// Reset sets every column back to the default biome of the grid's Dimension.
func (g *BiomeGrid) Reset() {
	def := g.dim.DefaultBiome()
	for i := range g.biomes {
		g.biomes[i] = def
	}
}
