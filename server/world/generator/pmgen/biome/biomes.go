package biome

import (
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/generator/pmgen/populate"
)

type Plains struct{ grassy }

func (Plains) ID() world.Biome           { return world.BiomePlains }
func (Plains) Elevation() (min, max int) { return 63, 68 }
func (Plains) Temperature() float64      { return 0.8 }
func (Plains) Rainfall() float64         { return 0.4 }
func (Plains) Populators() []world.Populator {
	return []world.Populator{populate.TallGrass{Amount: 12}}
}

type Desert struct{ sandy }

func (Desert) ID() world.Biome               { return world.BiomeDesert }
func (Desert) Elevation() (min, max int)     { return 63, 74 }
func (Desert) Temperature() float64          { return 2 }
func (Desert) Rainfall() float64             { return 0 }
func (Desert) Populators() []world.Populator { return nil }

type Forest struct{ grassy }

func (Forest) ID() world.Biome           { return world.BiomeForest }
func (Forest) Elevation() (min, max int) { return 63, 81 }
func (Forest) Temperature() float64      { return 0.7 }
func (Forest) Rainfall() float64         { return 0.8 }
func (Forest) Populators() []world.Populator {
	return []world.Populator{populate.Tree{Amount: 5}, populate.TallGrass{Amount: 3}}
}

type BirchForest struct{ grassy }

func (BirchForest) ID() world.Biome           { return world.BiomeBirchForest }
func (BirchForest) Elevation() (min, max int) { return 63, 81 }
func (BirchForest) Temperature() float64      { return 0.6 }
func (BirchForest) Rainfall() float64         { return 0.5 }
func (BirchForest) Populators() []world.Populator {
	return []world.Populator{populate.Tree{Amount: 5}, populate.TallGrass{Amount: 3}}
}

type Taiga struct{ snowy }

func (Taiga) ID() world.Biome           { return world.BiomeTaiga }
func (Taiga) Elevation() (min, max int) { return 63, 81 }
func (Taiga) Temperature() float64      { return 0.05 }
func (Taiga) Rainfall() float64         { return 0.8 }
func (Taiga) Populators() []world.Populator {
	return []world.Populator{populate.Tree{Amount: 10}, populate.TallGrass{Amount: 1}}
}

type Swamp struct{ grassy }

func (Swamp) ID() world.Biome               { return world.BiomeSwamp }
func (Swamp) Elevation() (min, max int)     { return 62, 63 }
func (Swamp) Temperature() float64          { return 0.8 }
func (Swamp) Rainfall() float64             { return 0.9 }
func (Swamp) Populators() []world.Populator { return nil }

type Mountains struct{ grassy }

func (Mountains) ID() world.Biome           { return world.BiomeWindsweptHills }
func (Mountains) Elevation() (min, max int) { return 63, 127 }
func (Mountains) Temperature() float64      { return 0.4 }
func (Mountains) Rainfall() float64         { return 0.5 }
func (Mountains) Populators() []world.Populator {
	return []world.Populator{populate.Tree{Amount: 1}, populate.TallGrass{Amount: 1}}
}

type IcePlains struct{ snowy }

func (IcePlains) ID() world.Biome           { return world.BiomeSnowyPlains }
func (IcePlains) Elevation() (min, max int) { return 63, 74 }
func (IcePlains) Temperature() float64      { return 0.05 }
func (IcePlains) Rainfall() float64         { return 0.8 }
func (IcePlains) Populators() []world.Populator {
	return []world.Populator{populate.TallGrass{Amount: 5}}
}

type Ocean struct{ watery }

func (Ocean) ID() world.Biome               { return world.BiomeOcean }
func (Ocean) Elevation() (min, max int)     { return 46, 58 }
func (Ocean) Temperature() float64          { return 0.5 }
func (Ocean) Rainfall() float64             { return 0.5 }
func (Ocean) Populators() []world.Populator { return []world.Populator{populate.TallGrass{Amount: 5}} }

type River struct{ watery }

func (River) ID() world.Biome               { return world.BiomeRiver }
func (River) Elevation() (min, max int)     { return 58, 62 }
func (River) Temperature() float64          { return 0.5 }
func (River) Rainfall() float64             { return 0.7 }
func (River) Populators() []world.Populator { return []world.Populator{populate.TallGrass{Amount: 5}} }
