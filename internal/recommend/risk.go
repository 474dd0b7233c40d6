package recommend

import (
	"fmt"
	"math"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
)

type riskAssessment struct {
	score    int
	level    RiskLevel
	concerns []string
}

func (e *Engine) assessRisk(plan catalog.PlanRecord, prof profile.UserProfile) riskAssessment {
	var r riskAssessment

	if price, ok := plan.Price.Monthly(); ok && prof.MonthlyBudget > 0 && price/prof.MonthlyBudget > 1.1 {
		r.score += 30
		r.concerns = append(r.concerns, "⚠️ Price is more than 10% above your budget")
	}
	if reliability := e.providers.Reliability(plan.Company); reliability < 70 {
		r.score += 20
		r.concerns = append(r.concerns, fmt.Sprintf("⚠️ %s has a below-average reliability rating (%d/100)", plan.Company, int(math.Round(reliability))))
	}
	if prof.WantsNoCommitment() && !e.keywords.Matches(plan.Features, CapabilityNoCommitment) {
		r.score += 15
		r.concerns = append(r.concerns, "⚠️ May require a commitment, which you wanted to avoid")
	}

	switch {
	case r.score > 50:
		r.level = RiskHigh
	case r.score > 25:
		r.level = RiskMedium
	default:
		r.level = RiskLow
	}
	return r
}

// planConfidence estimates how much one recommendation can be trusted from the inputs
// that fed it.
func planConfidence(prof profile.UserProfile) float64 {
	points := 80
	if prof.CurrentMonthlySpend > 0 {
		points += 10
	}
	if prof.CurrentProvider != "" {
		points += 5
	}
	if prof.CategorySpecific.Populated() {
		points += 5
	}
	return clampUnit(float64(points) / 100)
}

// ProfileCompleteness is the per-request confidence multiplier. It rises as more of the
// profile is filled in.
func ProfileCompleteness(prof profile.UserProfile) float64 {
	points := 70
	if prof.CurrentMonthlySpend > 0 {
		points += 10
	}
	if prof.CategorySpecific.Populated() {
		points += 10
	}
	if prof.Location != "" {
		points += 5
	}
	if prof.Priorities.AnySet() {
		points += 5
	}
	return clampUnit(float64(points) / 100)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
