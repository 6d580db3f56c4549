package metadata

import (
	"context"
	"fmt"
	"sync"

	"rollcall/pkg/platform/sentinel"
)

// Registry maps a jurisdiction abbreviation to its metadata. Unknown
// jurisdictions return an error wrapping sentinel.ErrNotFound.
type Registry interface {
	Get(ctx context.Context, abbr string) (*Metadata, error)
}

// MemoryRegistry keeps metadata in a map. Used by tests and fixture-backed
// servers.
type MemoryRegistry struct {
	mu   sync.RWMutex
	meta map[string]*Metadata
}

// NewMemoryRegistry creates a registry holding the given metadata, keyed by
// abbreviation.
func NewMemoryRegistry(meta ...*Metadata) *MemoryRegistry {
	r := &MemoryRegistry{meta: make(map[string]*Metadata, len(meta))}
	for _, m := range meta {
		r.meta[m.Abbreviation] = m
	}
	return r
}

// Put adds or replaces the metadata for m.Abbreviation.
func (r *MemoryRegistry) Put(m *Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meta[m.Abbreviation] = m
}

func (r *MemoryRegistry) Get(_ context.Context, abbr string) (*Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meta[abbr]
	if !ok {
		return nil, fmt.Errorf("metadata %q: %w", abbr, sentinel.ErrNotFound)
	}
	return m, nil
}
