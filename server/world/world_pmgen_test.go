package world_test

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/chunk"
	"github.com/dm-vev/cleanflat/server/world/generator/pmgen"
)

type countingHandler struct {
	world.NopHandler
	loads atomic.Int64
}

func (h *countingHandler) HandleChunkLoad(*world.World, world.ChunkPos, *chunk.Chunk) {
	h.loads.Add(1)
}

// TestPMGenMassChunkGeneration loads a large batch of chunks generated by
// pmgen from many goroutines at once and checks that every chunk is generated
// exactly once and matches a sequentially generated copy.
func TestPMGenMassChunkGeneration(t *testing.T) {
	t.Parallel()

	newWorld := func() *world.World {
		w := world.Config{
			Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
			Seed:      42,
			Generator: pmgen.New(42),
		}.New()
		t.Cleanup(func() {
			if err := w.Close(); err != nil {
				t.Errorf("world close: %v", err)
			}
		})
		return w
	}
	w, sequential := newWorld(), newWorld()
	h := &countingHandler{}
	w.Handle(h)

	radius := int32(6)
	positions := make([]world.ChunkPos, 0, (radius*2+1)*(radius*2+1))
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			positions = append(positions, world.ChunkPos{x, z})
		}
	}

	errCh := make(chan error, len(positions))
	var wg sync.WaitGroup
	for _, pos := range positions {
		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if c := w.Chunk(pos); c == nil {
					errCh <- fmt.Errorf("no chunk returned at %v", pos)
				}
			}()
		}
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case err := <-errCh:
		t.Fatalf("mass chunk generation failed: %v", err)
	case <-finished:
	case <-time.After(60 * time.Second):
		t.Fatal("mass chunk generation timed out")
	}

	if got := h.loads.Load(); got != int64(len(positions)) {
		t.Fatalf("expected %v chunk loads, got %v", len(positions), got)
	}
	for _, pos := range positions {
		c, ok := w.ChunkIfLoaded(pos)
		if !ok {
			t.Fatalf("chunk %v not loaded", pos)
		}
		if c.Digest() != sequential.Chunk(pos).Digest() {
			t.Fatalf("chunk %v differs from sequentially generated chunk", pos)
		}
	}
}
