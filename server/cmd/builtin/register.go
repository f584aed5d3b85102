// Package builtin holds the commands available from the server console.
package builtin

import (
	"github.com/dm-vev/cleanflat/server/cmd"
)

// Register registers the built-in command set on the provided server.
func Register(srv serverAdapter) {
	cmd.Register(newHelpCommand())
	cmd.Register(newStatusCommand(srv))
	cmd.Register(newQueueCommand(srv))
	cmd.Register(newFlagCommand(srv))
	cmd.Register(newLoadCommand(srv))
	cmd.Register(newStopCommand(srv))
}
