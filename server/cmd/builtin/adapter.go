package builtin

import (
	"time"

	"github.com/dm-vev/cleanflat/server/cleanflat"
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/dm-vev/cleanflat/server/world"
)

type serverAdapter interface {
	StartTime() time.Time
	TPS() float64
	Worlds() []*world.World
	World(name string) (*world.World, bool)
	Listener() *cleanflat.Listener
	Flags() *flags.Store
	LoadChunk(name string, pos world.ChunkPos) (<-chan struct{}, error)
	Close() error
}

// info implements the descriptive methods of cmd.Command.
type info struct {
	name, description, usage string
	aliases                  []string
}

func (i info) Name() string        { return i.name }
func (i info) Aliases() []string   { return i.aliases }
func (i info) Description() string { return i.description }
func (i info) Usage() string       { return i.usage }
