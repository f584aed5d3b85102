package cleanflat

import (
	"github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

// superflat is the column found at the bottom of a chunk generated by the
// default superflat generator, from the bottom up.
var superflat = [...]world.Block{block.Bedrock{}, block.Dirt{}, block.Dirt{}, block.Grass{}}

// RequiresRegeneration reports if the chunk at pos in w was generated as
// superflat and should be regenerated. It returns false before HandleReady is
// called, for worlds not managed or with the CleanSuperFlat flag disabled, and
// for nether and end worlds that are not generated with islands.
//
// The chunk matches if the column at x=0, z=0 holds bedrock, dirt, dirt and
// grass either from y=0 upwards, as older superflat generation placed it, or
// from the bottom of the world upwards.
func (l *Listener) RequiresRegeneration(w *world.World, _ world.ChunkPos, c *chunk.Chunk) bool {
	if !l.ready.Load() {
		return false
	}
	name := w.Name()
	if !l.conf.Worlds.InWorld(name) || !l.conf.Flags.Enabled(flags.CleanSuperFlat, name) {
		return false
	}
	switch w.Dimension() {
	case world.Nether:
		if !l.conf.Worlds.NetherGenerate(name) || !l.conf.Worlds.NetherIslands(name) {
			return false
		}
	case world.End:
		if !l.conf.Worlds.EndGenerate(name) || !l.conf.Worlds.EndIslands(name) {
			return false
		}
	}
	return matchesSuperflat(c, 0) || matchesSuperflat(c, int16(w.Range().Min()))
}

// matchesSuperflat checks if the column at x=0, z=0 of c holds the superflat
// layers starting at y.
func matchesSuperflat(c *chunk.Chunk, y int16) bool {
	for i, b := range superflat {
		if c.Block(0, y+int16(i), 0) != world.BlockRuntimeID(b) {
			return false
		}
	}
	return true
}
