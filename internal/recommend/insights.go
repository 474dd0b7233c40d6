package recommend

import (
	"fmt"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
)

const gamingSpeed = 500

func (e *Engine) insights(plan catalog.PlanRecord, prof profile.UserProfile, savings Savings) []string {
	out := []string{}

	if savings.Annual >= 1 {
		out = append(out, fmt.Sprintf("💡 Switching could save you about %s a year", shekels(savings.Annual)))
	}
	if plan.HasIntroOffer() {
		regular, _ := plan.Price.Monthly()
		out = append(out, fmt.Sprintf("🎁 Intro price of %s for the first %d months, then %s", shekels(*plan.IntroPrice), plan.IntroMonths, shekels(regular)))
	}
	if prof.CurrentProvider != "" && companyKey(prof.CurrentProvider) == companyKey(plan.Company) {
		out = append(out, fmt.Sprintf("🔄 You are already with %s, so changing plans needs no provider switch", plan.Company))
	}
	if prof.StreamingHeavy && e.keywords.Matches(plan.Features, CapabilityStreaming) {
		out = append(out, "📺 Well suited to heavy streaming")
	}
	if prof.GamingHeavy && (plan.Category == catalog.CategoryInternet || plan.Category == catalog.CategoryTriple) {
		if speed := catalog.ParseLeadingNumber(plan.DownloadSpeed); speed >= gamingSpeed {
			out = append(out, fmt.Sprintf("🎮 %s Mbps keeps online gaming smooth", formatNumber(speed)))
		}
	}

	cs := prof.CategorySpecific
	if cs != nil {
		if plan.Category == catalog.CategoryElectricity && cs.HasSolarPanels {
			out = append(out, fmt.Sprintf("☀️ Ask %s how exported solar power is credited on this plan", plan.Company))
		}
		if plan.Category == catalog.CategoryCellular && cs.Lines > 1 && plan.DataAmount != "" {
			note := fmt.Sprintf("📱 %s of data on each of your %d lines", plan.DataAmount, cs.Lines)
			if e.keywords.Matches([]string{plan.DataAmount}, CapabilityUnlimited) {
				note = fmt.Sprintf("📱 Unlimited data across all %d lines", cs.Lines)
			}
			out = append(out, note)
		}
	}
	return out
}

func (e *Engine) actions(plan catalog.PlanRecord, savings Savings, risk RiskLevel) []string {
	out := []string{}

	if risk == RiskHigh {
		out = append(out, "👉 Compare a few alternatives before committing")
	}
	if savings.Monthly > 0 {
		out = append(out, fmt.Sprintf("👉 Contact %s to switch to %s", plan.Company, plan.PlanName))
	} else {
		out = append(out, fmt.Sprintf("👉 Confirm the final monthly price with %s", plan.Company))
	}
	if months := plan.CommitmentMonths(); months > 0 {
		out = append(out, fmt.Sprintf("👉 Review the %d-month commitment terms before signing", months))
	}
	if plan.HasIntroOffer() {
		out = append(out, fmt.Sprintf("👉 Set a reminder for when the promotion ends after %d months", plan.IntroMonths))
	}
	return out
}
