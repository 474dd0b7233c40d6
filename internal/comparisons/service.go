package comparisons

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
	"plancompare-backend/internal/recommend"
	"plancompare-backend/internal/shared/metrics"
	"plancompare-backend/internal/shared/telemetry"
)

const (
	MaxResultLimit = 50
	MaxScenarios   = 10
	maxHistory     = 100
	// scenarioParallelism bounds concurrent rankings per scenario request.
	scenarioParallelism = 4
)

// CreateInput is a request to rank one category for a profile.
type CreateInput struct {
	UserID   string
	Category catalog.Category
	Profile  profile.UserProfile
	Limit    int
}

// Scenario is one named profile variant.
type Scenario struct {
	Name    string
	Profile profile.UserProfile
}

// ScenarioResult is the best plan for one scenario. Top is nil when the category is empty.
type ScenarioResult struct {
	Name      string
	Top       *recommend.Recommendation
	Evaluated int
}

// Service runs the recommendation engine over the catalog and keeps a per-user history.
type Service struct {
	Repo         Repo
	Plans        catalog.Repo
	Engine       *recommend.Engine
	DefaultLimit int
	Now          func() time.Time
}

// Create ranks the plans of a category, truncates to the limit and persists the result.
func (s *Service) Create(ctx context.Context, in CreateInput) (Comparison, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return Comparison{}, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if !in.Category.Valid() {
		return Comparison{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	limit, err := s.resolveLimit(in.Limit)
	if err != nil {
		return Comparison{}, err
	}

	start := time.Now()
	cat := string(in.Category)
	plans, err := s.Plans.List(ctx, in.Category)
	if err != nil {
		metrics.ObserveRecommendation(cat, "error", time.Since(start))
		return Comparison{}, fmt.Errorf("load plans: %w", err)
	}

	ranked := s.Engine.Rank(plans, in.Profile)
	metrics.AddPlansEvaluated(cat, len(ranked))

	c := Comparison{
		ID:              uuid.New(),
		UserID:          in.UserID,
		Category:        in.Category,
		Profile:         in.Profile.Normalize(),
		Recommendations: recommend.Top(ranked, limit),
		PlanCount:       len(plans),
		CreatedAt:       s.now(),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		metrics.ObserveRecommendation(cat, "error", time.Since(start))
		return Comparison{}, fmt.Errorf("save comparison: %w", err)
	}

	metrics.ObserveRecommendation(cat, "ok", time.Since(start))
	fields := map[string]any{
		"comparison_id": c.ID.String(),
		"category":      cat,
		"evaluated":     len(plans),
		"returned":      len(c.Recommendations),
	}
	if len(c.Recommendations) > 0 {
		fields["top_plan"] = c.Recommendations[0].PlanID
	}
	telemetry.Info("comparison.created", fields)
	return c, nil
}

// Get returns a comparison owned by userID. Other users' comparisons look missing.
func (s *Service) Get(ctx context.Context, userID, rawID string) (Comparison, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return Comparison{}, fmt.Errorf("%w: malformed id", ErrInvalidInput)
	}
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Comparison{}, err
	}
	if c.UserID != userID {
		return Comparison{}, ErrNotFound
	}
	return c, nil
}

// List returns the caller's comparisons, newest first.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]Comparison, error) {
	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}

// Scenarios ranks one category for several profile variants in parallel and returns the
// top pick of each. Nothing is persisted.
func (s *Service) Scenarios(ctx context.Context, category catalog.Category, scenarios []Scenario) ([]ScenarioResult, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	if len(scenarios) == 0 || len(scenarios) > MaxScenarios {
		return nil, fmt.Errorf("%w: between 1 and %d scenarios are required", ErrInvalidInput, MaxScenarios)
	}

	start := time.Now()
	cat := string(category)
	plans, err := s.Plans.List(ctx, category)
	if err != nil {
		metrics.ObserveRecommendation(cat, "error", time.Since(start))
		return nil, fmt.Errorf("load plans: %w", err)
	}

	profiles := make([]profile.UserProfile, len(scenarios))
	for i, sc := range scenarios {
		profiles[i] = sc.Profile
	}
	ranked, err := s.Engine.RankBatch(ctx, plans, profiles, scenarioParallelism)
	if err != nil {
		metrics.ObserveRecommendation(cat, "error", time.Since(start))
		return nil, err
	}
	metrics.AddPlansEvaluated(cat, len(plans)*len(profiles))

	out := make([]ScenarioResult, len(scenarios))
	for i, sc := range scenarios {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			name = fmt.Sprintf("scenario-%d", i+1)
		}
		out[i] = ScenarioResult{Name: name, Evaluated: len(ranked[i])}
		if len(ranked[i]) > 0 {
			top := ranked[i][0]
			out[i].Top = &top
		}
	}

	metrics.ObserveRecommendation(cat, "ok", time.Since(start))
	telemetry.Info("comparison.scenarios", map[string]any{"category": cat, "scenarios": len(scenarios), "evaluated": len(plans)})
	return out, nil
}

func (s *Service) resolveLimit(limit int) (int, error) {
	switch {
	case limit < 0 || limit > MaxResultLimit:
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxResultLimit)
	case limit > 0:
		return limit, nil
	case s.DefaultLimit > 0:
		return min(s.DefaultLimit, MaxResultLimit), nil
	default:
		return 5, nil
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
