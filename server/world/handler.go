package world

import "github.com/dm-vev/cleanflat/server/world/chunk"

// Handler handles events that are called by a World. Implementations of
// Handler may be used to listen to specific events such as when a chunk is
// loaded.
type Handler interface {
	// HandleChunkLoad handles a chunk being loaded into the World, either
	// freshly generated or restored from the World's storage. The chunk is
	// live: changes made to it are visible to the World.
	HandleChunkLoad(w *World, pos ChunkPos, c *chunk.Chunk)
	// HandleClose handles the World being closed. HandleClose may be used as a
	// moment to finish code running on other goroutines that operates on the
	// World specifically.
	HandleClose(w *World)
}

// Compile time check to make sure NopHandler implements Handler.
var _ Handler = (*NopHandler)(nil)

// NopHandler implements the Handler interface but does not execute any code
// when an event is called. The default Handler of worlds is set to
// NopHandler. Users may embed NopHandler to avoid having to implement each
// method.
type NopHandler struct{}

func (NopHandler) HandleChunkLoad(*World, ChunkPos, *chunk.Chunk) {}
func (NopHandler) HandleClose(*World)                             {}
