package recommend

import (
	"fmt"
	"math"
	"strings"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
)

// axis accumulates the points and explanation strings of one scoring axis.
type axis struct {
	score    float64
	reasons  []string
	concerns []string
}

func (a *axis) award(points float64, reason string) {
	a.score += points
	if reason != "" {
		a.reasons = append(a.reasons, reason)
	}
}

func (a *axis) concern(msg string) {
	a.concerns = append(a.concerns, msg)
}

// scoreBudget rates how the plan's price sits against the user's budget and current bill.
// A missing budget contributes nothing, not even explanations.
func (e *Engine) scoreBudget(plan catalog.PlanRecord, prof profile.UserProfile) axis {
	var a axis
	if prof.MonthlyBudget <= 0 {
		return a
	}

	switch plan.Price.Kind() {
	case catalog.PriceDiscountPercent:
		discount, _ := plan.Price.Discount()
		estimated := prof.CurrentMonthlySpend * discount / 100
		if estimated > 50 {
			a.award(25, fmt.Sprintf("💰 Estimated savings of %s per month on your electricity bill", shekels(estimated)))
		}

	case catalog.PriceAbsolute:
		price, _ := plan.Price.Monthly()
		ratio := price / prof.MonthlyBudget
		switch {
		case ratio <= 0.7:
			a.award(30, fmt.Sprintf("💰 Well within your budget: %s of your %s", shekels(price), shekels(prof.MonthlyBudget)))
		case ratio <= 0.9:
			a.award(20, "💰 Fits comfortably within your budget")
		case ratio <= 1.1:
			if prof.PriceFlexibility != profile.FlexibilityStrict {
				a.award(10, "💰 Close to your budget")
			} else {
				a.concern("⚠️ Slightly above your strict budget")
			}
		default:
			a.concern(fmt.Sprintf("⚠️ Exceeds your monthly budget of %s", shekels(prof.MonthlyBudget)))
		}

		if prof.CurrentMonthlySpend > 0 {
			diff := prof.CurrentMonthlySpend - price
			switch {
			case diff > 0:
				a.award(math.Min(20, diff/10), fmt.Sprintf("💵 Saves %s per month compared to your current bill", shekels(diff)))
			case -diff > 50:
				a.concern(fmt.Sprintf("⚠️ Costs %s more per month than you pay today", shekels(-diff)))
			}
		}
	}
	return a
}

// scoreUsage rates how well the plan fits the household and usage pattern.
func (e *Engine) scoreUsage(plan catalog.PlanRecord, prof profile.UserProfile) axis {
	var a axis

	if prof.FamilySize >= 4 && e.keywords.Matches(plan.Features, CapabilityFamily) {
		a.award(15, fmt.Sprintf("👨‍👩‍👧‍👦 Built for families, a good fit for your household of %d", prof.FamilySize))
	}

	if prof.WorkFromHome {
		if plan.Category == catalog.CategoryInternet {
			if speed := catalog.ParseLeadingNumber(plan.DownloadSpeed); speed >= 100 {
				a.award(20, fmt.Sprintf("📶 %s Mbps is plenty for working from home", formatNumber(speed)))
			}
		}
		if e.keywords.Matches(plan.Features, CapabilityReliability) {
			a.award(10, "🛡️ Reliable service for remote work")
		}
	}

	if len(plan.Features) >= requiredFeatureCount(prof.UsageLevel) {
		a.award(15, fmt.Sprintf("✅ Feature set covers %s usage", usageLabel(prof.UsageLevel)))
	}
	return a
}

// scorePriority applies the user's own weights. Only dimensions weighted above 3 count,
// and the axis is the weighted mean of their raw scores.
func (e *Engine) scorePriority(plan catalog.PlanRecord, prof profile.UserProfile, peers []catalog.PlanRecord) axis {
	var (
		a           axis
		totalScore  float64
		totalWeight float64
	)
	consider := func(d profile.Dimension, score float64, reason string) {
		w := prof.Priorities.Weight(d)
		if w <= 3 {
			return
		}
		totalScore += score * w
		totalWeight += w
		if reason != "" {
			a.reasons = append(a.reasons, reason)
		}
	}

	// An unpriced plan has no price rank, so the dimension drops out of the mean.
	if plan.Price.Kind() != catalog.PriceUnknown {
		rank := priceRank(plan, peers)
		reason := ""
		if rank == 1 && len(peers) > 1 {
			reason = "⭐ Lowest price in its category"
			if plan.Price.Kind() == catalog.PriceDiscountPercent {
				reason = "⭐ Biggest discount in its category"
			}
		}
		consider(profile.DimensionPrice, math.Max(0, 20-3*float64(rank)), reason)
	}

	reliability := e.providers.Reliability(plan.Company)
	reason := ""
	if reliability >= 85 {
		reason = fmt.Sprintf("⭐ Top-rated reliability (%d/100)", int(math.Round(reliability)))
	}
	consider(profile.DimensionReliability, reliability*0.2, reason)

	rank := featureRank(plan, peers)
	reason = ""
	if rank == 1 && len(peers) > 1 {
		reason = "⭐ Most features in its category"
	}
	consider(profile.DimensionFeatures, math.Max(0, 20-2*float64(rank)), reason)

	trust := e.providers.BrandTrust(plan.Company)
	reason = ""
	if trust >= 85 {
		reason = fmt.Sprintf("⭐ %s is a highly trusted brand", plan.Company)
	}
	consider(profile.DimensionBrandTrust, trust*0.15, reason)

	if e.extended {
		e.considerExtended(plan, peers, consider)
	}

	if totalWeight == 0 {
		return axis{}
	}
	a.score = math.Round(totalScore / totalWeight)
	return a
}

// considerExtended scores the dimensions that are collected on the profile but only
// weighed when ExtendedPriorities is enabled.
func (e *Engine) considerExtended(plan catalog.PlanRecord, peers []catalog.PlanRecord, consider func(profile.Dimension, float64, string)) {
	speedScore := 0.0
	reason := ""
	if catalog.ParseLeadingNumber(plan.DownloadSpeed) > 0 {
		rank := speedRank(plan, peers)
		speedScore = math.Max(0, 20-3*float64(rank))
		if rank == 1 && len(peers) > 1 {
			reason = "⭐ Fastest plan in its category"
		}
	}
	consider(profile.DimensionSpeed, speedScore, reason)

	service := e.providers.CustomerService(plan.Company)
	reason = ""
	if service >= 80 {
		reason = fmt.Sprintf("⭐ Well-reviewed customer service (%d/100)", int(math.Round(service)))
	}
	consider(profile.DimensionCustomerService, service*0.2, reason)

	flexibility := 0.0
	switch {
	case e.keywords.Matches(plan.Features, CapabilityNoCommitment):
		flexibility = 20
	case plan.CommitmentMonths() == 0:
		flexibility = 10
	}
	consider(profile.DimensionFlexibility, flexibility, "")

	innovation := math.Min(20, 5*float64(len(e.keywords.Matched(plan.Features, CapabilityLatestTech))))
	consider(profile.DimensionInnovation, innovation, "")
}

// scoreFeatures rewards concrete feature matches against declared preferences.
func (e *Engine) scoreFeatures(plan catalog.PlanRecord, prof profile.UserProfile) axis {
	var a axis

	if prof.WantsNoCommitment() && e.keywords.Matches(plan.Features, CapabilityNoCommitment) {
		a.award(15, "🔓 No long-term commitment")
	}
	if prof.TechnologyPreference == profile.TechnologyLatest {
		if matched := e.keywords.Matched(plan.Features, CapabilityLatestTech); len(matched) > 0 {
			a.award(15, "🚀 Latest technology: "+strings.Join(matched, ", "))
		}
	}

	cs := prof.CategorySpecific
	if cs == nil {
		return a
	}
	switch plan.Category {
	case catalog.CategoryElectricity:
		if cs.HasSmartMeter && e.keywords.Matches(plan.Features, CapabilitySmartMeter) {
			a.award(10, "⚡ Works with your smart meter")
		}
		if cs.TimeOfUse && e.keywords.Matches(plan.Features, CapabilityTimeOfUse) {
			a.award(10, "🌙 Time-of-use pricing fits your schedule")
		}
	case catalog.CategoryInternet:
		if cs.RequiredSpeed > 0 {
			speed := catalog.ParseLeadingNumber(plan.DownloadSpeed)
			switch {
			case speed >= cs.RequiredSpeed:
				a.award(10, fmt.Sprintf("📶 Meets your required speed of %s Mbps", formatNumber(cs.RequiredSpeed)))
			case speed > 0:
				a.concern(fmt.Sprintf("⚠️ Slower than your required %s Mbps", formatNumber(cs.RequiredSpeed)))
			}
		}
	}
	return a
}

// priceRank is the 1-based competition rank of the plan's price among same-category peers.
// A larger discount counts as a lower price.
func priceRank(plan catalog.PlanRecord, peers []catalog.PlanRecord) int {
	rank := 1
	switch plan.Price.Kind() {
	case catalog.PriceAbsolute:
		price, _ := plan.Price.Monthly()
		for _, peer := range peers {
			if other, ok := peer.Price.Monthly(); ok && other < price {
				rank++
			}
		}
	case catalog.PriceDiscountPercent:
		discount, _ := plan.Price.Discount()
		for _, peer := range peers {
			if other, ok := peer.Price.Discount(); ok && other > discount {
				rank++
			}
		}
	}
	return rank
}

// featureRank is the 1-based competition rank by feature count, most features first.
func featureRank(plan catalog.PlanRecord, peers []catalog.PlanRecord) int {
	rank := 1
	for _, peer := range peers {
		if len(peer.Features) > len(plan.Features) {
			rank++
		}
	}
	return rank
}

func speedRank(plan catalog.PlanRecord, peers []catalog.PlanRecord) int {
	speed := catalog.ParseLeadingNumber(plan.DownloadSpeed)
	rank := 1
	for _, peer := range peers {
		if catalog.ParseLeadingNumber(peer.DownloadSpeed) > speed {
			rank++
		}
	}
	return rank
}

func requiredFeatureCount(level profile.UsageLevel) int {
	return int(math.Ceil(5*level.Threshold() - 1e-9))
}

func usageLabel(level profile.UsageLevel) string {
	switch level {
	case profile.UsageLight, profile.UsageMedium, profile.UsageHeavy, profile.UsageExtreme:
		return string(level)
	default:
		return string(profile.UsageMedium)
	}
}

func shekels(v float64) string {
	return fmt.Sprintf("₪%d", int(math.Round(v)))
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
