package catalog

import "context"

// Repo defines persistence operations for catalog plans.
type Repo interface {
	List(ctx context.Context, category Category) ([]PlanRecord, error)
	GetByID(ctx context.Context, id string) (PlanRecord, error)
	Upsert(ctx context.Context, plans []PlanRecord) error
}
