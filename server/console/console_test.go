package console

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dm-vev/cleanflat/server"
	_ "github.com/dm-vev/cleanflat/server/block"
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/dm-vev/cleanflat/server/gamemode"
	"github.com/dm-vev/cleanflat/server/world"
	"github.com/stretchr/testify/require"
)

type records struct {
	mu   sync.Mutex
	msgs []string
}

func (r *records) Enabled(context.Context, slog.Level) bool { return true }
func (r *records) WithAttrs([]slog.Attr) slog.Handler       { return r }
func (r *records) WithGroup(string) slog.Handler            { return r }
func (r *records) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	r.msgs = append(r.msgs, rec.Level.String()+" "+rec.Message)
	r.mu.Unlock()
	return nil
}

func (r *records) has(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.ContainsFunc(r.msgs, func(m string) bool { return strings.Contains(m, substr) })
}

func newServer(t *testing.T) *server.Server {
	t.Helper()
	reg, err := gamemode.LoadRegistry(filepath.Join(t.TempDir(), "worlds.toml"))
	require.NoError(t, err)
	_, err = reg.Add(gamemode.World{Name: "skyblock", Generator: "pmgen", Seed: 3})
	require.NoError(t, err)
	srv, err := server.Config{
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		TickRate: 100,
		Registry: reg,
	}.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func TestConsoleFlagCommands(t *testing.T) {
	srv := newServer(t)
	rec := &records{}
	input := strings.NewReader("flag skyblock off\n\nflag skyblock\nflag nowhere on\nflag skyblock maybe\nbogus\n/help queue\n")
	New(srv, slog.New(rec)).WithReader(input).Run(context.Background())

	require.False(t, srv.Flags().Enabled(flags.CleanSuperFlat, "skyblock"))
	require.True(t, rec.has("INFO CLEAN_SUPER_FLAT in skyblock set to off."))
	require.True(t, rec.has("INFO CLEAN_SUPER_FLAT in skyblock: off"))
	require.True(t, rec.has("ERROR Unknown world: nowhere."))
	require.True(t, rec.has(`ERROR Invalid flag value "maybe"`))
	require.True(t, rec.has("ERROR Unknown command: bogus."))
	require.True(t, rec.has("INFO Usage: queue <world>"))
}

func TestConsoleLoadRegeneratesChunks(t *testing.T) {
	srv := newServer(t)
	srv.Ready()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Run(ctx) }()

	rec := &records{}
	input := strings.NewReader("load skyblock 0 0 1\nload skyblock 0 x\nload skyblock 0 0 99\n")
	New(srv, slog.New(rec)).WithReader(input).Run(ctx)

	require.True(t, rec.has("INFO Loaded 9 new chunks around (0, 0) in skyblock."))
	require.True(t, rec.has(`ERROR Invalid z: "x" is not a number.`))
	require.True(t, rec.has(`ERROR Invalid radius "99"`))

	w, _ := srv.World("skyblock")
	require.Eventually(t, func() bool {
		return srv.Listener().Metrics().World("skyblock").Regenerated == 9 && srv.Listener().Status(w).Queued == 0
	}, 5*time.Second, 10*time.Millisecond)

	rec = &records{}
	New(srv, slog.New(rec)).WithReader(strings.NewReader("queue skyblock\nstatus\nstop\n")).Run(ctx)
	require.True(t, rec.has("INFO Regenerated: 9 | Failed: 0 | Dropped: 0"))
	require.True(t, rec.has("INFO World: skyblock (Overworld) | Chunks: 9 | Clean super flat: enabled"))
	require.True(t, rec.has("INFO Stopping server..."))

	done, err := srv.LoadChunk("skyblock", world.ChunkPos{5, 5})
	require.NoError(t, err)
	<-done
	_, ok := w.ChunkIfLoaded(world.ChunkPos{5, 5})
	require.False(t, ok)
}
