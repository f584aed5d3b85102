package builtin

import (
	"github.com/dm-vev/cleanflat/server/cmd"
)

type stopCommand struct {
	info
	srv serverAdapter
}

func newStopCommand(srv serverAdapter) cmd.Command {
	return stopCommand{info: info{name: "stop", description: "Stops the server."}, srv: srv}
}

func (s stopCommand) Run(_ cmd.Source, _ []string, o *cmd.Output) {
	o.Print("Stopping server...")
	if err := s.srv.Close(); err != nil {
		o.Error(err)
	}
}
