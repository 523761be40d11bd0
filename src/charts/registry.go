package charts

import (
	"fmt"
	"sync"
)

// Instance is one live chart bound to a canvas slot. Dispose must release
// whatever the factory allocated (image buffers, widget bindings) and may be
// called at most once per instance.
type Instance interface {
	Dispose()
}

// Factory constructs a live chart for a canvas slot from a spec.
type Factory func(canvasID string, s Spec) (Instance, error)

// Registry owns the live chart instances, keyed by canvas identity. It
// guarantees at most one live instance per key: rendering over an existing
// key disposes the old instance before the new one is constructed, so
// repeated renders never leak. The registry lives for the whole process.
//
// Individually triggered phases complete on separate goroutines, so the map
// is mutex-guarded; dispose-then-create stays ordered within one Render call.
type Registry struct {
	mu      sync.Mutex
	factory Factory
	live    map[string]Instance
}

// NewRegistry returns a registry creating instances through factory.
func NewRegistry(factory Factory) *Registry {
	return &Registry{factory: factory, live: make(map[string]Instance)}
}

// Render replaces the chart under canvasID with one built from s. The
// previous instance, if any, is disposed first. On factory error the slot is
// left empty (the stale instance is already gone and must not be revived).
func (r *Registry) Render(canvasID string, s Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.live[canvasID]; ok {
		old.Dispose()
		delete(r.live, canvasID)
	}
	inst, err := r.factory(canvasID, s)
	if err != nil {
		return fmt.Errorf("chart %s: %w", canvasID, err)
	}
	r.live[canvasID] = inst
	return nil
}

// Has reports whether a live instance exists under canvasID.
func (r *Registry) Has(canvasID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.live[canvasID]
	return ok
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
