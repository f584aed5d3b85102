package populate

import (
	"math"
	"math/rand/v2"

	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
	"github.com/go-gl/mathgl/mgl64"
)

// Ore places clusters of ore blocks in a chunk, replacing a host block.
type Ore struct {
	Types []OreType
}

// Populate ...
func (o Ore) Populate(_ *world.World, _ world.ChunkPos, c *chunk.Chunk, r *rand.Rand) {
	for _, ore := range o.Types {
		replaces := world.BlockRuntimeID(ore.Replaces)
		for i := 0; i < ore.ClusterCount; i++ {
			x, y, z := r.IntN(16), rangeIn(r, ore.MinHeight, ore.MaxHeight), r.IntN(16)
			if c.Block(uint8(x), int16(y), uint8(z)) == replaces {
				ore.place(c, mgl64.Vec3{float64(x), float64(y), float64(z)}, replaces, r)
			}
		}
	}
}

// OreType describes one kind of ore cluster.
type OreType struct {
	Material, Replaces        world.Block
	ClusterCount, ClusterSize int
	MinHeight, MaxHeight      int
}

// place carves an ellipsoid vein of the ore through the chunk. Blocks of the
// vein outside the chunk are skipped.
func (o OreType) place(c *chunk.Chunk, vec mgl64.Vec3, replaces uint32, r *rand.Rand) {
	material := world.BlockRuntimeID(o.Material)
	clusterSize := float64(o.ClusterSize)
	angle := r.Float64() * math.Pi
	offset := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(clusterSize / 8)
	x1, x2 := vec[0]+offset[0], vec[0]-offset[0]
	z1, z2 := vec[2]+offset[1], vec[2]-offset[1]
	y1, y2 := vec[1]+float64(r.IntN(3))-1, vec[1]+float64(r.IntN(3))-1

	for i := float64(0); i <= clusterSize; i++ {
		seedX := x1 + (x2-x1)*i/clusterSize
		seedY := y1 + (y2-y1)*i/clusterSize
		seedZ := z1 + (z2-z1)*i/clusterSize
		size := ((math.Sin(i*(math.Pi/clusterSize))+1)*r.Float64()*clusterSize/16 + 1) / 2

		for xx := math.Floor(seedX - size); xx <= math.Floor(seedX+size); xx++ {
			sizeX := (xx + 0.5 - seedX) / size
			sizeX *= sizeX
			if sizeX >= 1 || xx < 0 || xx > 15 {
				continue
			}
			for yy := math.Floor(seedY - size); yy <= math.Floor(seedY+size); yy++ {
				sizeY := (yy + 0.5 - seedY) / size
				sizeY *= sizeY
				if sizeX+sizeY >= 1 {
					continue
				}
				for zz := math.Floor(seedZ - size); zz <= math.Floor(seedZ+size); zz++ {
					sizeZ := (zz + 0.5 - seedZ) / size
					sizeZ *= sizeZ
					if sizeX+sizeY+sizeZ >= 1 || zz < 0 || zz > 15 {
						continue
					}
					lx, ly, lz := uint8(xx), int16(yy), uint8(zz)
					if c.Block(lx, ly, lz) == replaces {
						c.SetBlock(lx, ly, lz, material)
					}
				}
			}
		}
	}
}
