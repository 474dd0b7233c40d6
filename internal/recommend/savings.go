package recommend

import (
	"math"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
)

// CalculateSavings projects the savings of switching to plan from the user's current spend.
// Absolute prices use the regular price; an intro promotion does not change the projection.
func CalculateSavings(plan catalog.PlanRecord, prof profile.UserProfile) Savings {
	spend := prof.CurrentMonthlySpend
	if math.IsNaN(spend) || spend < 0 {
		spend = 0
	}

	switch plan.Price.Kind() {
	case catalog.PriceDiscountPercent:
		discount, _ := plan.Price.Discount()
		monthly := spend * discount / 100
		return Savings{Monthly: monthly, Annual: monthly * 12, Percentage: discount}

	case catalog.PriceAbsolute:
		price, _ := plan.Price.Monthly()
		monthly := math.Max(0, spend-price)
		pct := 0.0
		if spend > 0 {
			pct = math.Round(monthly / spend * 100)
		}
		return Savings{Monthly: monthly, Annual: monthly * 12, Percentage: pct}
	}
	return Savings{}
}
