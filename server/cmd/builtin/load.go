package builtin

import (
	"strconv"
	"time"

	"github.com/dm-vev/cleanflat/server/cmd"
	"github.com/dm-vev/cleanflat/server/world"
)

const (
	maxLoadRadius = 8
	loadTimeout   = 30 * time.Second
)

type loadCommand struct {
	info
	srv serverAdapter
}

func newLoadCommand(srv serverAdapter) cmd.Command {
	return loadCommand{info: info{name: "load", usage: "<world> <x> <z> [radius]", description: "Loads the chunks around a chunk position."}, srv: srv}
}

func (l loadCommand) Run(_ cmd.Source, args []string, o *cmd.Output) {
	if len(args) < 3 {
		o.Error("Usage: load <world> <x> <z> [radius]")
		return
	}
	w, ok := lookupWorld(l.srv, args, o)
	if !ok {
		return
	}
	x, ok := parseInt32(args[1], "x", o)
	if !ok {
		return
	}
	z, ok := parseInt32(args[2], "z", o)
	if !ok {
		return
	}
	radius := int32(0)
	if len(args) > 3 {
		r, err := strconv.Atoi(args[3])
		if err != nil || r < 0 || r > maxLoadRadius {
			o.Errorf("Invalid radius %q: expected a number between 0 and %d.", args[3], maxLoadRadius)
			return
		}
		radius = int32(r)
	}

	before := w.LoadedChunkCount()
	var pending []<-chan struct{}
	for cx := x - radius; cx <= x+radius; cx++ {
		for cz := z - radius; cz <= z+radius; cz++ {
			done, err := l.srv.LoadChunk(w.Name(), world.ChunkPos{cx, cz})
			if err != nil {
				o.Error(err)
				return
			}
			pending = append(pending, done)
		}
	}
	timeout := time.After(loadTimeout)
	for _, done := range pending {
		select {
		case <-done:
		case <-timeout:
			o.Errorf("Timed out loading chunks around %v.", world.ChunkPos{x, z})
			return
		}
	}
	o.Printf("Loaded %d new chunks around %v in %s. %d chunks queued for regeneration.",
		w.LoadedChunkCount()-before, world.ChunkPos{x, z}, w.Name(), l.srv.Listener().Status(w).Queued)
}
