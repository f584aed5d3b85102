package world

import (
	"sync"

	"github.com/brentp/intintmap"
	"github.com/segmentio/fasthash/fnv1a"
)

// Block is a block that may be placed in a chunk. Blocks are identified by
// their encoded name: two Block values that encode to the same name share a
// runtime ID.
type Block interface {
	// EncodeBlock returns the namespaced name of the block, for example
	// "minecraft:bedrock".
	EncodeBlock() string
}

// airName is the name reserved for runtime ID 0.
const airName = "minecraft:air"

type unregisteredAir struct{}

func (unregisteredAir) EncodeBlock() string { return airName }

var registry = struct {
	mu     sync.RWMutex
	blocks []Block
	hashes *intintmap.Map
}{
	blocks: []Block{unregisteredAir{}},
	hashes: newHashMap(),
}

func newHashMap() *intintmap.Map {
	m := intintmap.New(128, 0.6)
	m.Put(int64(fnv1a.HashString64(airName)), 0)
	return m
}

// RegisterBlock registers the Block passed and returns its runtime ID. If a
// block with the same name was registered before, the existing runtime ID is
// returned and the Block replaces the previous value returned by
// BlockByRuntimeID.
func RegisterBlock(b Block) uint32 {
	h := int64(fnv1a.HashString64(b.EncodeBlock()))

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if rid, ok := registry.hashes.Get(h); ok {
		registry.blocks[rid] = b
		return uint32(rid)
	}
	rid := uint32(len(registry.blocks))
	registry.blocks = append(registry.blocks, b)
	registry.hashes.Put(h, int64(rid))
	return rid
}

// BlockRuntimeID returns the runtime ID of the Block passed. Blocks that were
// not yet registered are registered on first use.
func BlockRuntimeID(b Block) uint32 {
	if b == nil {
		return 0
	}
	h := int64(fnv1a.HashString64(b.EncodeBlock()))
	registry.mu.RLock()
	rid, ok := registry.hashes.Get(h)
	registry.mu.RUnlock()
	if ok {
		return uint32(rid)
	}
	return RegisterBlock(b)
}

// BlockByRuntimeID returns the Block registered under the runtime ID passed.
// If no block has that runtime ID, false is returned.
func BlockByRuntimeID(rid uint32) (Block, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	if int(rid) >= len(registry.blocks) {
		return nil, false
	}
	return registry.blocks[rid], true
}

// AirRuntimeID is the runtime ID of air. Chunks are created filled with it.
const AirRuntimeID uint32 = 0
