package event

import (
	"io"
	"log/slog"
	"testing"

	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
)

type recorder struct {
	NopListener
	name  string
	log   *[]string
	panic bool
}

func (r recorder) HandleReady() {
	*r.log = append(*r.log, r.name+":ready")
}

func (r recorder) HandleChunkLoad(_ *world.World, pos world.ChunkPos, _ *chunk.Chunk) {
	if r.panic {
		panic("boom")
	}
	*r.log = append(*r.log, r.name+":"+pos.String())
}

func newHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHubReadyOnce(t *testing.T) {
	var log []string
	h := newHub()
	h.Register("a", recorder{name: "a", log: &log})
	h.Register("b", recorder{name: "b", log: &log})

	if !h.Ready() {
		t.Fatalf("expected first Ready to dispatch")
	}
	if h.Ready() {
		t.Fatalf("expected second Ready to be ignored")
	}
	if len(log) != 2 || log[0] != "a:ready" || log[1] != "b:ready" {
		t.Fatalf("unexpected dispatch order: %v", log)
	}
}

func TestHubUnregister(t *testing.T) {
	var log []string
	h := newHub()
	remove := h.Register("a", recorder{name: "a", log: &log})
	h.Register("b", recorder{name: "b", log: &log})
	remove()
	remove()
	if h.Len() != 1 {
		t.Fatalf("expected one listener left, got %d", h.Len())
	}
	h.Clear("b")
	if h.Len() != 0 {
		t.Fatalf("expected no listeners left, got %d", h.Len())
	}
}

func TestHubWorldHandler(t *testing.T) {
	var log []string
	h := newHub()
	h.Register("a", recorder{name: "a", log: &log})

	w := world.Config{Name: "test", Log: slog.New(slog.NewTextHandler(io.Discard, nil))}.New()
	w.Handle(h.WorldHandler(h.WorldHandler(world.NopHandler{})))
	w.LoadChunk(world.ChunkPos{1, 2})

	if len(log) != 1 || log[0] != "a:(1, 2)" {
		t.Fatalf("expected one chunk load dispatch, got %v", log)
	}
}

func TestHubPanicRemovesOwner(t *testing.T) {
	var log []string
	h := newHub()
	h.Register("bad", recorder{name: "bad", log: &log, panic: true})
	h.Register("bad", recorder{name: "bad2", log: &log})
	h.Register("good", recorder{name: "good", log: &log})

	w := world.Config{Name: "test", Log: slog.New(slog.NewTextHandler(io.Discard, nil))}.New()
	w.Handle(h.WorldHandler(nil))
	w.LoadChunk(world.ChunkPos{0, 0})
	w.LoadChunk(world.ChunkPos{0, 1})

	want := []string{"bad2:(0, 0)", "good:(0, 0)", "good:(0, 1)"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if h.Len() != 1 {
		t.Fatalf("expected panicking owner to be cleared, %d listeners left", h.Len())
	}
}
