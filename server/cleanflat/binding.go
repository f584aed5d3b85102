package cleanflat

import (
	"github.com/dm-vev/cleanflat/server/flags"
	"github.com/dm-vev/cleanflat/server/world"
)

// Binding is the generator and biome grid chunks of a world are regenerated
// with.
type Binding struct {
	Generator world.Generator
	Biomes    *world.BiomeGrid
}

// resolve returns the Binding of w, looking up its generator on first use. If
// no generator is assigned to w, the CleanSuperFlat flag is disabled for it, a
// warning is logged and false is returned. Only successful lookups are
// cached.
func (l *Listener) resolve(w *world.World) (Binding, bool) {
	ct := l.container(w)
	ct.mu.Lock()
	if ct.binding != nil {
		b := *ct.binding
		ct.mu.Unlock()
		return b, true
	}
	ct.mu.Unlock()

	name := w.Name()
	g := l.conf.Generators.Generator(name, "")
	if g == nil {
		persisted := l.conf.Flags.Set(flags.CleanSuperFlat, name, false)
		l.log.Warn("Could not enable clean super flat: no world generator is assigned to the world.",
			"world", name,
			"persisted", persisted,
			"cause", "use-own-generator is set to true in the game mode configuration, but no custom generator was assigned to the world",
			"remedy", "revert use-own-generator in the game mode configuration or assign a custom generator to the world",
		)
		return Binding{}, false
	}

	b := Binding{Generator: g, Biomes: world.NewBiomeGrid(w.Dimension())}
	ct.mu.Lock()
	if ct.binding == nil {
		ct.binding = &b
	}
	b = *ct.binding
	ct.mu.Unlock()
	return b, true
}
