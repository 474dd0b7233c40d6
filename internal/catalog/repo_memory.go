package catalog

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo backed by a Catalog snapshot.
type MemoryRepo struct {
	mu      sync.RWMutex
	catalog *Catalog
}

// NewMemoryRepo constructs a MemoryRepo seeded with the given catalog.
func NewMemoryRepo(seed *Catalog) *MemoryRepo {
	if seed == nil {
		seed = NewCatalog(nil)
	}
	return &MemoryRepo{catalog: seed}
}

// List returns the plans of a category in catalog order.
func (r *MemoryRepo) List(ctx context.Context, category Category) ([]PlanRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.catalog.ByCategory(category), nil
}

// GetByID returns a plan by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (PlanRecord, error) {
	if err := ctx.Err(); err != nil {
		return PlanRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.catalog.Get(id)
	if !ok {
		return PlanRecord{}, ErrNotFound
	}
	return plan, nil
}

// Upsert replaces plans with matching IDs and appends new ones. The catalog itself stays
// immutable; a new snapshot is swapped in.
func (r *MemoryRepo) Upsert(ctx context.Context, plans []PlanRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	merged := append(r.catalog.All(), plans...)
	r.catalog = NewCatalog(merged)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
