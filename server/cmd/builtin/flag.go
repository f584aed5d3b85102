package builtin

import (
	"strings"

	"github.com/dm-vev/cleanflat/server/cmd"
	"github.com/dm-vev/cleanflat/server/flags"
)

type flagCommand struct {
	info
	srv serverAdapter
}

func newFlagCommand(srv serverAdapter) cmd.Command {
	return flagCommand{info: info{name: "flag", usage: "<world> [on|off]", description: "Shows or changes the clean super flat flag of a world."}, srv: srv}
}

func (f flagCommand) Run(_ cmd.Source, args []string, o *cmd.Output) {
	w, ok := lookupWorld(f.srv, args, o)
	if !ok {
		return
	}
	store := f.srv.Flags()
	if len(args) < 2 {
		o.Printf("%s in %s: %s", flags.CleanSuperFlat.ID, w.Name(), onOff(store.Enabled(flags.CleanSuperFlat, w.Name())))
		return
	}

	var enabled bool
	switch strings.ToLower(args[1]) {
	case "on", "true", "enable":
		enabled = true
	case "off", "false", "disable":
	default:
		o.Errorf("Invalid flag value %q: expected on or off.", args[1])
		return
	}
	if !store.Set(flags.CleanSuperFlat, w.Name(), enabled) {
		o.Errorf("Could not save %s for %s.", flags.CleanSuperFlat.ID, w.Name())
		return
	}
	o.Printf("%s in %s set to %s.", flags.CleanSuperFlat.ID, w.Name(), onOff(enabled))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
