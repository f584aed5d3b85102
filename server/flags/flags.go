// Package flags implements per-world feature flags. Flags are stored as
// WorldFlags objects in a database and cached in memory.
package flags

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/dm-vev/cleanflat/server/database"
)

// Flag is a world setting that may be switched on or off per world.
type Flag struct {
	// ID is the unique identifier of the flag, such as "CLEAN_SUPER_FLAT".
	ID string
	// Default is the value of the flag for worlds that have no value stored.
	Default bool
}

// CleanSuperFlat controls whether chunks of a world that were generated as
// superflat are regenerated with the generator of the world.
var CleanSuperFlat = Flag{ID: "CLEAN_SUPER_FLAT", Default: true}

// flags holds all known flags by ID.
var flags = map[string]Flag{CleanSuperFlat.ID: CleanSuperFlat}

// ByID looks up a flag by its ID. IDs are matched case-insensitively.
func ByID(id string) (Flag, bool) {
	f, ok := flags[strings.ToUpper(strings.TrimSpace(id))]
	return f, ok
}

// WorldFlags holds the flag values stored for a single world.
type WorldFlags struct {
	World string           `nbt:"world"`
	Flags map[string]uint8 `nbt:"flags"`
}

// UniqueID returns the name of the world the flags belong to.
func (f WorldFlags) UniqueID() string {
	return f.World
}

// Config holds the settings of a Store.
type Config struct {
	// Log is the Logger used by the Store. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Handler is the database.Handler the flags are persisted in. If nil, an
	// in-memory handler is used.
	Handler database.Handler
}

// Store holds the values of flags per world. A Store is safe for concurrent
// use.
type Store struct {
	log *slog.Logger
	db  *database.Database[WorldFlags]

	mu     sync.Mutex
	worlds map[string]WorldFlags
}

// New creates a Store using the Config passed and loads all flags stored.
func (conf Config) New() (*Store, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Handler == nil {
		h, err := database.NewMemory()
		if err != nil {
			return nil, err
		}
		conf.Handler = h
	}
	s := &Store{
		log: conf.Log.With("subsystem", "flags"),
		db: database.New[WorldFlags](database.Config{
			Log:     conf.Log,
			Handler: conf.Handler,
			Table:   "world_flags",
		}),
		worlds: make(map[string]WorldFlags),
	}
	for _, wf := range s.db.LoadObjects() {
		s.worlds[wf.World] = wf
	}
	return s, nil
}

// Enabled reports if the flag passed is enabled for the world with the name
// passed. If no value was set for the world, the default of the flag is
// returned.
func (s *Store) Enabled(f Flag, world string) bool {
	if s == nil {
		return f.Default
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.worlds[world].Flags[f.ID]; ok {
		return v != 0
	}
	return f.Default
}

// Set sets the value of the flag passed for a world and persists it. Set
// returns false if the value could not be persisted. The in-memory value is
// updated regardless.
func (s *Store) Set(f Flag, world string, enabled bool) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	wf, ok := s.worlds[world]
	if !ok {
		wf = WorldFlags{World: world}
	}
	values := make(map[string]uint8, len(wf.Flags)+1)
	for k, v := range wf.Flags {
		values[k] = v
	}
	values[f.ID] = boolByte(enabled)
	wf.Flags = values
	s.worlds[world] = wf
	s.mu.Unlock()

	s.log.Debug("Flag changed.", "flag", f.ID, "world", world, "enabled", enabled)
	return s.db.SaveObject(wf)
}

// Reset removes all flag values stored for a world, so that every flag falls
// back to its default.
func (s *Store) Reset(world string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	delete(s.worlds, world)
	s.mu.Unlock()
	s.db.DeleteID(world)
}

// Close closes the database of the Store.
func (s *Store) Close() {
	if s == nil {
		return
	}
	s.db.Close()
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
