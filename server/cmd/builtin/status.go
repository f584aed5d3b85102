package builtin

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dm-vev/cleanflat/server/cmd"
	"github.com/dm-vev/cleanflat/server/flags"
)

type statusCommand struct {
	info
	srv serverAdapter
}

func newStatusCommand(srv serverAdapter) cmd.Command {
	return statusCommand{info: info{name: "status", description: "Displays server statistics and the state of chunk regeneration."}, srv: srv}
}

func (s statusCommand) Run(_ cmd.Source, _ []string, o *cmd.Output) {
	if start := s.srv.StartTime(); !start.IsZero() {
		o.Printf("Uptime: %s", time.Since(start).Round(time.Second))
	}
	if tps := s.srv.TPS(); tps > 0 {
		o.Printf("TPS (avg): %.2f", tps)
	} else {
		o.Print("TPS (avg): collecting samples...")
	}

	l := s.srv.Listener()
	for _, w := range s.srv.Worlds() {
		st := l.Status(w)
		clean := "enabled"
		if !s.srv.Flags().Enabled(flags.CleanSuperFlat, w.Name()) {
			clean = "disabled"
		}
		o.Printf("World: %s (%s) | Chunks: %d | Clean super flat: %s | %s, %d queued",
			w.Name(), w.Dimension(), w.LoadedChunkCount(), clean, title(st.State.String()), st.Queued)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	lastGC := "never"
	if mem.LastGC != 0 {
		lastGC = fmt.Sprintf("%s ago", time.Since(time.Unix(0, int64(mem.LastGC))).Round(time.Second))
	}
	o.Printf("Memory: %.2f MiB heap used / %.2f MiB reserved", bytesToMiB(mem.HeapAlloc), bytesToMiB(mem.HeapSys))
	o.Printf("Goroutines: %d | GC cycles: %d | Last GC: %s", runtime.NumGoroutine(), mem.NumGC, lastGC)
}

func bytesToMiB(v uint64) float64 {
	return float64(v) / (1024 * 1024)
}
