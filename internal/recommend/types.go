package recommend

import (
	"math"

	"plancompare-backend/internal/catalog"
)

// RiskLevel is the qualitative risk of switching to a plan.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Savings is the projected improvement over current spend, kept at full precision.
type Savings struct {
	Monthly    float64 `json:"monthly"`
	Annual     float64 `json:"annual"`
	Percentage float64 `json:"percentage"`
}

// RoundedSavings is Savings rounded to whole currency units for display.
type RoundedSavings struct {
	Monthly    int `json:"monthly"`
	Annual     int `json:"annual"`
	Percentage int `json:"percentage"`
}

// Rounded returns display values.
func (s Savings) Rounded() RoundedSavings {
	return RoundedSavings{
		Monthly:    int(math.Round(s.Monthly)),
		Annual:     int(math.Round(s.Annual)),
		Percentage: int(math.Round(s.Percentage)),
	}
}

// Breakdown records the points each scoring axis contributed.
type Breakdown struct {
	Budget   float64 `json:"budget"`
	Usage    float64 `json:"usage"`
	Priority float64 `json:"priority"`
	Features float64 `json:"features"`
}

// Total sums the axes.
func (b Breakdown) Total() float64 {
	return b.Budget + b.Usage + b.Priority + b.Features
}

// Recommendation is the engine output for one evaluated plan.
type Recommendation struct {
	PlanID                   string           `json:"planId"`
	Company                  string           `json:"company"`
	PlanName                 string           `json:"planName"`
	Category                 catalog.Category `json:"category"`
	MatchScore               float64          `json:"matchScore"`
	PersonalizedScore        int              `json:"personalizedScore"`
	Breakdown                Breakdown        `json:"breakdown"`
	ReasonsForRecommendation []string         `json:"reasonsForRecommendation"`
	PotentialConcerns        []string         `json:"potentialConcerns"`
	PersonalizedInsights     []string         `json:"personalizedInsights"`
	ActionRecommendations    []string         `json:"actionRecommendations"`
	ExpectedSavings          Savings          `json:"expectedSavings"`
	RiskLevel                RiskLevel        `json:"riskLevel"`
	ConfidenceLevel          float64          `json:"confidenceLevel"`
}
