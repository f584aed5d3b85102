package cleanflat

import (
	"maps"
	"slices"
	"sync"
)

// Counters holds the counters of a single world.
type Counters struct {
	// Regenerated is the number of chunks regenerated.
	Regenerated uint64
	// Failed is the number of failed regeneration attempts.
	Failed uint64
	// Dropped is the number of chunks dropped after failing too often.
	Dropped uint64
	// Starts and Stops count the drain task starting and stopping.
	Starts, Stops uint64
	// Queued is the current length of the queue.
	Queued int
}

// Metrics tracks per-world counters for observability. A nil *Metrics
// discards all updates.
type Metrics struct {
	mu     sync.Mutex
	worlds map[string]*Counters
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{worlds: make(map[string]*Counters)}
}

// World returns a copy of the counters of the world passed.
func (m *Metrics) World(name string) Counters {
	if m == nil {
		return Counters{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.worlds[name]; ok {
		return *c
	}
	return Counters{}
}

// Worlds returns the names of all worlds with counters, sorted.
func (m *Metrics) Worlds() []string {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.worlds))
}

func (m *Metrics) update(name string, fn func(c *Counters)) {
	if m == nil {
		return
	}
	m.mu.Lock()
	c, ok := m.worlds[name]
	if !ok {
		c = &Counters{}
		m.worlds[name] = c
	}
	fn(c)
	m.mu.Unlock()
}

func (m *Metrics) incRegenerated(name string) { m.update(name, func(c *Counters) { c.Regenerated++ }) }
func (m *Metrics) incFailed(name string)      { m.update(name, func(c *Counters) { c.Failed++ }) }
func (m *Metrics) incDropped(name string)     { m.update(name, func(c *Counters) { c.Dropped++ }) }
func (m *Metrics) incStarts(name string)      { m.update(name, func(c *Counters) { c.Starts++ }) }
func (m *Metrics) incStops(name string)       { m.update(name, func(c *Counters) { c.Stops++ }) }

func (m *Metrics) setQueue(name string, n int) {
	m.update(name, func(c *Counters) { c.Queued = n })
}
