package builtin

import (
	"strconv"

	"github.com/dm-vev/cleanflat/server/cmd"
	"github.com/dm-vev/cleanflat/server/world"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// title returns s with the first letter of every word in upper case.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// lookupWorld returns the world named by the first argument, adding an error
// to o if it is missing or unknown.
func lookupWorld(srv serverAdapter, args []string, o *cmd.Output) (*world.World, bool) {
	if len(args) == 0 {
		o.Error("A world name is required.")
		return nil, false
	}
	w, ok := srv.World(args[0])
	if !ok {
		o.Errorf("Unknown world: %v.", args[0])
		return nil, false
	}
	return w, true
}

func parseInt32(s, name string, o *cmd.Output) (int32, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		o.Errorf("Invalid %v: %q is not a number.", name, s)
		return 0, false
	}
	return int32(v), true
}
