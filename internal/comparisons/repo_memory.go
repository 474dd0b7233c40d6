package comparisons

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []Comparison
	byID  map[uuid.UUID]int
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[uuid.UUID]int)}
}

// Create stores a comparison.
func (r *MemoryRepo) Create(ctx context.Context, c Comparison) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID] = len(r.items)
	r.items = append(r.items, c)
	return nil
}

// GetByID returns a comparison by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id uuid.UUID) (Comparison, error) {
	if err := ctx.Err(); err != nil {
		return Comparison{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return Comparison{}, ErrNotFound
	}
	return r.items[idx], nil
}

// ListByUser returns a user's comparisons, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := []Comparison{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].UserID == userID {
			out = append(out, r.items[i])
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
