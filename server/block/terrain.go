package block

import "github.com/dm-vev/cleanflat/server/world"

// Air is the block present in otherwise empty space.
type Air struct{}

// Bedrock is a block that is indestructible in survival. It forms the floor of
// generated terrain.
type Bedrock struct{}

// Dirt is a block found abundantly in most biomes under a layer of grass
// blocks at the top of the normal world.
type Dirt struct{}

// Grass blocks generate abundantly across the surface of the world.
type Grass struct{}

// Stone is a block found underground in the world or on mountains.
type Stone struct{}

// Gravel is a block affected by gravity. It generates in veins and on ocean
// floors.
type Gravel struct{}

// Sand is a block found in deserts and on beaches.
type Sand struct{}

// Water is a still water source block.
type Water struct{}

// CoalOre is a common ore.
type CoalOre struct{}

// IronOre is a mineral block found underground.
type IronOre struct{}

// GoldOre is a rare mineral block found underground.
type GoldOre struct{}

// DiamondOre is a rare ore that generates deep underground.
type DiamondOre struct{}

// ShortGrass is a transparent plant block that generates on grass blocks.
type ShortGrass struct{}

// Log is the trunk block of a tree.
type Log struct{}

// Leaves are blocks that grow as part of trees.
type Leaves struct{}

// Snow is a layer of snow covering the surface of cold biomes.
type Snow struct{}

// Netherrack is the main block of the nether.
type Netherrack struct{}

// EndStone is the main block of the end.
type EndStone struct{}

func (Air) EncodeBlock() string        { return "minecraft:air" }
func (Bedrock) EncodeBlock() string    { return "minecraft:bedrock" }
func (Dirt) EncodeBlock() string       { return "minecraft:dirt" }
func (Grass) EncodeBlock() string      { return "minecraft:grass_block" }
func (Stone) EncodeBlock() string      { return "minecraft:stone" }
func (Gravel) EncodeBlock() string     { return "minecraft:gravel" }
func (Sand) EncodeBlock() string       { return "minecraft:sand" }
func (Water) EncodeBlock() string      { return "minecraft:water" }
func (CoalOre) EncodeBlock() string    { return "minecraft:coal_ore" }
func (IronOre) EncodeBlock() string    { return "minecraft:iron_ore" }
func (GoldOre) EncodeBlock() string    { return "minecraft:gold_ore" }
func (DiamondOre) EncodeBlock() string { return "minecraft:diamond_ore" }
func (ShortGrass) EncodeBlock() string { return "minecraft:short_grass" }
func (Log) EncodeBlock() string        { return "minecraft:oak_log" }
func (Leaves) EncodeBlock() string     { return "minecraft:oak_leaves" }
func (Snow) EncodeBlock() string       { return "minecraft:snow_layer" }
func (Netherrack) EncodeBlock() string { return "minecraft:netherrack" }
func (EndStone) EncodeBlock() string   { return "minecraft:end_stone" }

func init() {
	for _, b := range []world.Block{
		Air{}, Bedrock{}, Dirt{}, Grass{}, Stone{}, Gravel{}, Sand{}, Water{},
		CoalOre{}, IronOre{}, GoldOre{}, DiamondOre{}, ShortGrass{}, Log{},
		Leaves{}, Snow{}, Netherrack{}, EndStone{},
	} {
		world.RegisterBlock(b)
	}
}
