package comparisons

import (
	"context"

	"github.com/google/uuid"
)

// Repo defines persistence operations for comparisons.
type Repo interface {
	Create(ctx context.Context, c Comparison) error
	GetByID(ctx context.Context, id uuid.UUID) (Comparison, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Comparison, error)
}
