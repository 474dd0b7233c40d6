package recommend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
)

// RankBatch ranks the same plans for several profiles concurrently. Results are in
// profile order. parallelism <= 0 means unbounded.
func (e *Engine) RankBatch(ctx context.Context, plans []catalog.PlanRecord, profiles []profile.UserProfile, parallelism int) ([][]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([][]Recommendation, len(profiles))
	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i := range profiles {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Rank(plans, profiles[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
