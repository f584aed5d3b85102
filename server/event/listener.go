// Package event dispatches server events to listeners registered by owners,
// such as game modes and server features. A listener that panics is removed
// together with all other listeners of its owner.
package event

import (
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

// Listener handles events dispatched by a Hub.
type Listener interface {
	// HandleReady handles the server having finished start-up. It is called
	// once, after all worlds are loaded.
	HandleReady()
	// HandleChunkLoad handles a chunk being loaded into a World. The chunk is
	// live: changes made to it are visible to the World.
	HandleChunkLoad(w *world.World, pos world.ChunkPos, c *chunk.Chunk)
}

// Compile time check to make sure NopListener implements Listener.
var _ Listener = NopListener{}

// NopListener implements the Listener interface but does not execute any code
// when an event is called. Users may embed NopListener to avoid having to
// implement each method.
type NopListener struct{}

func (NopListener) HandleReady()                                               {}
func (NopListener) HandleChunkLoad(*world.World, world.ChunkPos, *chunk.Chunk) {}
