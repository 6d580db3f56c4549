package store

import (
	"context"
	"fmt"
	"sync"

	"rollcall/internal/legislators/models"
	"rollcall/pkg/platform/sentinel"
)

// MemoryCollection keeps documents in a map. Returned documents are shallow
// copies; callers must not mutate nested slices or maps.
type MemoryCollection[T Document] struct {
	mu   sync.RWMutex
	name string
	docs map[string]T
}

// NewMemoryCollection creates an empty in-memory collection.
func NewMemoryCollection[T Document](name string) *MemoryCollection[T] {
	return &MemoryCollection[T]{name: name, docs: make(map[string]T)}
}

// NewMemory creates in-memory collections for every document type.
func NewMemory() *Collections {
	return &Collections{
		Legislators: NewMemoryCollection[models.Legislator](LegislatorsCollection),
		Committees:  NewMemoryCollection[models.Committee](CommitteesCollection),
		Votes:       NewMemoryCollection[models.Vote](VotesCollection),
		Bills:       NewMemoryCollection[models.Bill](BillsCollection),
	}
}

func (c *MemoryCollection[T]) FindByID(_ context.Context, id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", c.name, id, sentinel.ErrNotFound)
	}
	return &doc, nil
}

// FindByIDs returns the known documents in the order of ids.
func (c *MemoryCollection[T]) FindByIDs(_ context.Context, ids []string) ([]*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if doc, ok := c.docs[id]; ok {
			out = append(out, &doc)
		}
	}
	return out, nil
}

// Save stores doc under its id. A nil doc is a no-op.
func (c *MemoryCollection[T]) Save(_ context.Context, doc *T) error {
	if doc == nil {
		return nil
	}
	id := (*doc).DocumentID()
	if id == "" {
		return fmt.Errorf("%s: document id is required", c.name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[id] = *doc
	return nil
}
