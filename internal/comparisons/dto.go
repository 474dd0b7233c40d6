package comparisons

import (
	"time"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
	"plancompare-backend/internal/recommend"
)

// ProfileRequest is the user profile as accepted over HTTP.
type ProfileRequest struct {
	FamilySize           int                           `json:"familySize" validate:"gte=0,lte=20"`
	HomeType             string                        `json:"homeType" validate:"max=64"`
	Location             string                        `json:"location" validate:"max=128"`
	MonthlyBudget        float64                       `json:"monthlyBudget" validate:"gte=0"`
	CurrentMonthlySpend  float64                       `json:"currentMonthlySpend" validate:"gte=0"`
	CurrentProvider      string                        `json:"currentProvider" validate:"max=128"`
	PriceFlexibility     string                        `json:"priceFlexibility" validate:"omitempty,oneof=strict flexible very_flexible"`
	UsageLevel           string                        `json:"usageLevel" validate:"omitempty,oneof=light medium heavy extreme"`
	WorkFromHome         bool                          `json:"workFromHome"`
	StreamingHeavy       bool                          `json:"streamingHeavy"`
	GamingHeavy          bool                          `json:"gamingHeavy"`
	Priorities           map[profile.Dimension]float64 `json:"priorities" validate:"omitempty,dive,keys,oneof=price reliability speed customerService flexibility features brandTrust innovation,endkeys,gte=0,lte=5"`
	ContractFlexibility  string                        `json:"contractFlexibility" validate:"max=64"`
	TechnologyPreference string                        `json:"technologyPreference" validate:"max=64"`
	SupportImportance    string                        `json:"supportImportance" validate:"max=64"`
	CategorySpecific     *profile.CategorySpecific     `json:"categorySpecific"`
}

func (p ProfileRequest) toProfile() profile.UserProfile {
	out := profile.UserProfile{
		FamilySize:           p.FamilySize,
		HomeType:             p.HomeType,
		Location:             p.Location,
		MonthlyBudget:        p.MonthlyBudget,
		CurrentMonthlySpend:  p.CurrentMonthlySpend,
		CurrentProvider:      p.CurrentProvider,
		PriceFlexibility:     profile.PriceFlexibility(p.PriceFlexibility),
		UsageLevel:           profile.UsageLevel(p.UsageLevel),
		WorkFromHome:         p.WorkFromHome,
		StreamingHeavy:       p.StreamingHeavy,
		GamingHeavy:          p.GamingHeavy,
		ContractFlexibility:  p.ContractFlexibility,
		TechnologyPreference: p.TechnologyPreference,
		SupportImportance:    p.SupportImportance,
		CategorySpecific:     p.CategorySpecific,
	}
	if len(p.Priorities) > 0 {
		out.Priorities = profile.Priorities(p.Priorities)
	}
	return out
}

// CreateRequest asks for a ranked comparison of one category.
type CreateRequest struct {
	Category string         `json:"category" validate:"required"`
	Profile  ProfileRequest `json:"profile"`
	Limit    int            `json:"limit" validate:"gte=0,lte=50"`
}

// ScenarioRequest is one named profile variant.
type ScenarioRequest struct {
	Name    string         `json:"name" validate:"max=64"`
	Profile ProfileRequest `json:"profile"`
}

// ScenariosRequest compares several profile variants against one category.
type ScenariosRequest struct {
	Category  string            `json:"category" validate:"required"`
	Scenarios []ScenarioRequest `json:"scenarios" validate:"required,min=1,max=10,dive"`
}

// RecommendationResponse is an engine recommendation plus savings rounded for display.
type RecommendationResponse struct {
	recommend.Recommendation
	DisplaySavings recommend.RoundedSavings `json:"displaySavings"`
}

// ComparisonResponse is the full view of a comparison.
type ComparisonResponse struct {
	ID              string                   `json:"id"`
	Category        catalog.Category         `json:"category"`
	Profile         profile.UserProfile      `json:"profile"`
	PlanCount       int                      `json:"planCount"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// ComparisonSummary is the list view of a comparison.
type ComparisonSummary struct {
	ID        string           `json:"id"`
	Category  catalog.Category `json:"category"`
	PlanCount int              `json:"planCount"`
	TopPlanID string           `json:"topPlanId,omitempty"`
	TopScore  int              `json:"topScore,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ScenarioResponse is the best plan for one scenario.
type ScenarioResponse struct {
	Name      string                  `json:"name"`
	Evaluated int                     `json:"evaluated"`
	Top       *RecommendationResponse `json:"top"`
}

func toRecommendationResponse(r recommend.Recommendation) RecommendationResponse {
	r.ReasonsForRecommendation = nonNil(r.ReasonsForRecommendation)
	r.PotentialConcerns = nonNil(r.PotentialConcerns)
	r.PersonalizedInsights = nonNil(r.PersonalizedInsights)
	r.ActionRecommendations = nonNil(r.ActionRecommendations)
	return RecommendationResponse{Recommendation: r, DisplaySavings: r.ExpectedSavings.Rounded()}
}

func toComparisonResponse(c Comparison) ComparisonResponse {
	recs := make([]RecommendationResponse, 0, len(c.Recommendations))
	for _, r := range c.Recommendations {
		recs = append(recs, toRecommendationResponse(r))
	}
	return ComparisonResponse{
		ID:              c.ID.String(),
		Category:        c.Category,
		Profile:         c.Profile,
		PlanCount:       c.PlanCount,
		Recommendations: recs,
		CreatedAt:       c.CreatedAt,
	}
}

func toComparisonSummary(c Comparison) ComparisonSummary {
	out := ComparisonSummary{
		ID:        c.ID.String(),
		Category:  c.Category,
		PlanCount: c.PlanCount,
		CreatedAt: c.CreatedAt,
	}
	if len(c.Recommendations) > 0 {
		out.TopPlanID = c.Recommendations[0].PlanID
		out.TopScore = c.Recommendations[0].PersonalizedScore
	}
	return out
}

func toScenarioResponse(r ScenarioResult) ScenarioResponse {
	out := ScenarioResponse{Name: r.Name, Evaluated: r.Evaluated}
	if r.Top != nil {
		top := toRecommendationResponse(*r.Top)
		out.Top = &top
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
