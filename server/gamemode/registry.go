// Package gamemode holds the registry of worlds managed by game modes. Each
// managed world names the generator its chunks should be generated with and
// whether its nether and end are generated with islands.
package gamemode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/dm-vev/cleanflat/server/world"
	"github.com/dm-vev/cleanflat/server/world/generator"
	"github.com/pelletier/go-toml"
)

var (
	// ErrUnknownWorld is returned when an operation names a world that is not
	// managed by the Registry.
	ErrUnknownWorld = errors.New("world is not managed by a game mode")
	// ErrInvalidName is returned when an empty world name is passed.
	ErrInvalidName = errors.New("invalid world name")
)

// World holds the game mode settings of a single managed world.
type World struct {
	// Name is the name of the world.
	Name string `toml:"name"`
	// Dimension is the dimension of the world: "overworld", "nether" or "end".
	Dimension string `toml:"dimension"`
	// Seed is the seed the generator of the world is created with.
	Seed int64 `toml:"seed"`
	// Generator is the name of the generator the game mode provides for the
	// world.
	Generator string `toml:"generator"`
	// UseOwnGenerator disables the generator provided by the game mode. A
	// custom generator must then be assigned through CustomGenerator.
	UseOwnGenerator bool `toml:"use-own-generator"`
	// CustomGenerator is the name of the generator used if UseOwnGenerator is
	// set.
	CustomGenerator string `toml:"custom-generator,omitempty"`
	// NetherGenerate and NetherIslands specify if the nether is generated and
	// if it holds islands.
	NetherGenerate bool `toml:"nether-generate"`
	NetherIslands  bool `toml:"nether-islands"`
	// EndGenerate and EndIslands specify if the end is generated and if it
	// holds islands.
	EndGenerate bool `toml:"end-generate"`
	EndIslands  bool `toml:"end-islands"`
}

// Dim returns the world.Dimension of the World. Unknown dimension names
// resolve to world.Overworld.
func (w World) Dim() world.Dimension {
	if d, ok := world.DimensionByName(w.Dimension); ok {
		return d
	}
	return world.Overworld
}

type registryFile struct {
	Worlds []World `toml:"world"`
}

// Registry holds the worlds managed by game modes. Entries are persisted in a
// TOML file. A nil *Registry manages no worlds.
type Registry struct {
	mu       sync.RWMutex
	worlds   map[string]World
	filePath string
}

// LoadRegistry loads the registry stored in the file at the provided path. If
// the file does not exist yet, it is created without worlds.
func LoadRegistry(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("registry path must not be empty")
	}
	r := &Registry{worlds: make(map[string]World), filePath: path}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadLocked(); err != nil {
		return nil, err
	}
	return r, nil
}

// InWorld reports if the world with the name passed is managed by a game mode.
func (r *Registry) InWorld(name string) bool {
	_, ok := r.World(name)
	return ok
}

// World returns the settings of the managed world with the name passed.
func (r *Registry) World(name string) (World, bool) {
	if r == nil {
		return World{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.worlds[normalizeName(name)]
	return w, ok
}

// Worlds returns all managed worlds sorted by name.
func (r *Registry) Worlds() []World {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked()
}

// NetherGenerate reports if the nether of the world passed is generated.
func (r *Registry) NetherGenerate(name string) bool {
	w, _ := r.World(name)
	return w.NetherGenerate
}

// NetherIslands reports if the nether of the world passed holds islands.
func (r *Registry) NetherIslands(name string) bool {
	w, _ := r.World(name)
	return w.NetherIslands
}

// EndGenerate reports if the end of the world passed is generated.
func (r *Registry) EndGenerate(name string) bool {
	w, _ := r.World(name)
	return w.EndGenerate
}

// EndIslands reports if the end of the world passed holds islands.
func (r *Registry) EndIslands(name string) bool {
	w, _ := r.World(name)
	return w.EndIslands
}

// Generator returns the default generator for the world with the name passed.
// If id is not empty, it names the generator variant to use instead of the one
// configured for the world. Generator returns nil if the world is unknown, if
// it uses its own generator without one being assigned, or if the generator
// name is unknown.
func (r *Registry) Generator(name, id string) world.Generator {
	w, ok := r.World(name)
	if !ok {
		return nil
	}
	genName := w.Generator
	if w.UseOwnGenerator {
		genName = w.CustomGenerator
	}
	if id != "" {
		genName = id
	}
	if genName == "" {
		return nil
	}
	g, ok := generator.ByName(genName, w.Seed)
	if !ok {
		return nil
	}
	return g
}

// Add inserts or replaces the settings of a managed world. The returned bool
// indicates if the world was newly added.
func (r *Registry) Add(w World) (bool, error) {
	if r == nil {
		return false, ErrUnknownWorld
	}
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		return false, ErrInvalidName
	}
	key := normalizeName(w.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	previous, exists := r.worlds[key]
	r.worlds[key] = w
	if err := r.writeLocked(); err != nil {
		if exists {
			r.worlds[key] = previous
		} else {
			delete(r.worlds, key)
		}
		return false, err
	}
	return !exists, nil
}

// Remove stops managing the world with the name passed.
func (r *Registry) Remove(name string) error {
	if r == nil {
		return ErrUnknownWorld
	}
	key := normalizeName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	original, exists := r.worlds[key]
	if !exists {
		return ErrUnknownWorld
	}
	delete(r.worlds, key)
	if err := r.writeLocked(); err != nil {
		r.worlds[key] = original
		return err
	}
	return nil
}

func (r *Registry) reloadLocked() error {
	data := registryFile{}
	contents, err := os.ReadFile(r.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.worlds = make(map[string]World)
			return r.writeLocked()
		}
		return fmt.Errorf("read world registry: %w", err)
	}
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &data); err != nil {
			return fmt.Errorf("decode world registry: %w", err)
		}
	}
	r.worlds = make(map[string]World, len(data.Worlds))
	for _, w := range data.Worlds {
		w.Name = strings.TrimSpace(w.Name)
		if w.Name == "" {
			continue
		}
		r.worlds[normalizeName(w.Name)] = w
	}
	return nil
}

func (r *Registry) writeLocked() error {
	dir := filepath.Dir(r.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create world registry directory: %w", err)
		}
	}
	encoded, err := toml.Marshal(registryFile{Worlds: r.sortedLocked()})
	if err != nil {
		return fmt.Errorf("encode world registry: %w", err)
	}
	if err := os.WriteFile(r.filePath, encoded, 0644); err != nil {
		return fmt.Errorf("write world registry: %w", err)
	}
	return nil
}

func (r *Registry) sortedLocked() []World {
	worlds := make([]World, 0, len(r.worlds))
	for _, w := range r.worlds {
		worlds = append(worlds, w)
	}
	slices.SortFunc(worlds, func(a, b World) int {
		return strings.Compare(normalizeName(a.Name), normalizeName(b.Name))
	})
	return worlds
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
