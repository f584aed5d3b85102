package builtin

import (
	"github.com/dm-vev/cleanflat/server/cmd"
)

// queuePreview is the maximum number of queued chunks listed.
const queuePreview = 10

type queueCommand struct {
	info
	srv serverAdapter
}

func newQueueCommand(srv serverAdapter) cmd.Command {
	return queueCommand{info: info{name: "queue", usage: "<world>", description: "Shows the chunks queued for regeneration in a world."}, srv: srv}
}

func (q queueCommand) Run(_ cmd.Source, args []string, o *cmd.Output) {
	w, ok := lookupWorld(q.srv, args, o)
	if !ok {
		return
	}
	l := q.srv.Listener()
	st := l.Status(w)
	o.Printf("%s: %s, %d queued", w.Name(), title(st.State.String()), st.Queued)

	queued := l.Queued(w)
	for i, pos := range queued {
		if i == queuePreview {
			o.Printf("... and %d more", len(queued)-queuePreview)
			break
		}
		o.Printf("%d. %v", i+1, pos)
	}

	c := l.Metrics().World(w.Name())
	o.Printf("Regenerated: %d | Failed: %d | Dropped: %d | Task starts: %d | Task stops: %d",
		c.Regenerated, c.Failed, c.Dropped, c.Starts, c.Stops)
}
