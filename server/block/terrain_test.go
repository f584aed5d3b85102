package block

import (
	"testing"

	"github.com/dm-vev/cleanflat/server/world"
)

func TestTerrainBlocksRegistered(t *testing.T) {
	if got := world.BlockRuntimeID(Air{}); got != world.AirRuntimeID {
		t.Fatalf("expected air to use the air runtime ID, got %d", got)
	}
	seen := make(map[uint32]world.Block)
	for _, b := range []world.Block{Bedrock{}, Dirt{}, Grass{}, Stone{}, Netherrack{}, EndStone{}} {
		rid := world.BlockRuntimeID(b)
		if prev, ok := seen[rid]; ok {
			t.Fatalf("%T and %T share runtime ID %d", prev, b, rid)
		}
		seen[rid] = b
		got, ok := world.BlockByRuntimeID(rid)
		if !ok || got != b {
			t.Fatalf("BlockByRuntimeID(%d) = %v, want %v", rid, got, b)
		}
	}
}
