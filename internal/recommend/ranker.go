package recommend

import (
	"math"
	"sort"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
)

// Rank evaluates every plan against the profile and returns them best first.
// Plans are compared only with peers of their own category. Nothing is dropped:
// weak matches are returned last.
func (e *Engine) Rank(plans []catalog.PlanRecord, prof profile.UserProfile) []Recommendation {
	out := make([]Recommendation, 0, len(plans))
	if len(plans) == 0 {
		return out
	}

	p := prof.Normalize()
	peers := make(map[catalog.Category][]catalog.PlanRecord)
	for _, plan := range plans {
		peers[plan.Category] = append(peers[plan.Category], plan)
	}

	completeness := ProfileCompleteness(p)
	for _, plan := range plans {
		rec := e.evaluate(plan, p, peers[plan.Category])
		rec.ConfidenceLevel = clampUnit(rec.ConfidenceLevel * completeness)
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PersonalizedScore != out[j].PersonalizedScore {
			return out[i].PersonalizedScore > out[j].PersonalizedScore
		}
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

// Evaluate scores one plan against its same-category peers. The confidence it reports is
// the per-plan estimate only; Rank additionally scales it by ProfileCompleteness.
func (e *Engine) Evaluate(plan catalog.PlanRecord, prof profile.UserProfile, peers []catalog.PlanRecord) Recommendation {
	return e.evaluate(plan, prof.Normalize(), peers)
}

func (e *Engine) evaluate(plan catalog.PlanRecord, prof profile.UserProfile, peers []catalog.PlanRecord) Recommendation {
	budget := e.scoreBudget(plan, prof)
	usage := e.scoreUsage(plan, prof)
	priority := e.scorePriority(plan, prof, peers)
	features := e.scoreFeatures(plan, prof)

	breakdown := Breakdown{
		Budget:   budget.score,
		Usage:    usage.score,
		Priority: priority.score,
		Features: features.score,
	}
	match := breakdown.Total()

	reasons := []string{}
	concerns := []string{}
	for _, a := range []axis{budget, usage, priority, features} {
		reasons = append(reasons, a.reasons...)
		concerns = append(concerns, a.concerns...)
	}

	risk := e.assessRisk(plan, prof)
	concerns = append(concerns, risk.concerns...)

	savings := CalculateSavings(plan, prof)

	return Recommendation{
		PlanID:                   plan.ID,
		Company:                  plan.Company,
		PlanName:                 plan.PlanName,
		Category:                 plan.Category,
		MatchScore:               match,
		PersonalizedScore:        personalize(match),
		Breakdown:                breakdown,
		ReasonsForRecommendation: reasons,
		PotentialConcerns:        concerns,
		PersonalizedInsights:     e.insights(plan, prof, savings),
		ActionRecommendations:    e.actions(plan, savings, risk.level),
		ExpectedSavings:          savings,
		RiskLevel:                risk.level,
		ConfidenceLevel:          planConfidence(prof),
	}
}

func personalize(match float64) int {
	if math.IsNaN(match) {
		return 0
	}
	return int(math.Max(0, math.Min(100, math.Round(match))))
}

// Top returns at most n recommendations. n <= 0 returns all of them.
func Top(recs []Recommendation, n int) []Recommendation {
	if n <= 0 || n >= len(recs) {
		return append([]Recommendation{}, recs...)
	}
	return append([]Recommendation{}, recs[:n]...)
}
