package topics

import (
	"sync"
	"sync/atomic"
)

// SelectionGuard hands out generation numbers for detail fetches. A fetch
// records the generation it was started with and applies its response only
// while that generation is still current, so a late response for a
// superseded selection is discarded instead of overwriting newer state.
// The underlying request is not aborted, only its effect.
type SelectionGuard struct {
	gen atomic.Uint64
}

// Begin starts a new selection and returns its generation.
func (g *SelectionGuard) Begin() uint64 {
	return g.gen.Add(1)
}

// Current reports whether gen is still the newest selection.
func (g *SelectionGuard) Current(gen uint64) bool {
	return g.gen.Load() == gen
}

// InflightGuard tracks ids with an outstanding request so a double-submit
// (e.g. closing the same topic twice) issues exactly one call.
type InflightGuard struct {
	mu     sync.Mutex
	active map[int64]struct{}
}

// TryAcquire marks id as in flight. Returns false when a request for the
// same id is already outstanding.
func (g *InflightGuard) TryAcquire(id int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active == nil {
		g.active = make(map[int64]struct{})
	}
	if _, busy := g.active[id]; busy {
		return false
	}
	g.active[id] = struct{}{}
	return true
}

// Release clears the in-flight mark for id.
func (g *InflightGuard) Release(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, id)
}
