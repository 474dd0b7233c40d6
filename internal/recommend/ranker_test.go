package recommend

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sort"
	"strings"
	"testing"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
)

func internetPlan(id, company string, price float64, speed string, features ...string) catalog.PlanRecord {
	return catalog.PlanRecord{
		ID:            id,
		Company:       company,
		PlanName:      id,
		Category:      catalog.CategoryInternet,
		Price:         catalog.AbsolutePrice(price),
		DownloadSpeed: speed,
		Features:      features,
	}
}

func electricityPlan(id, company string, discount float64, features ...string) catalog.PlanRecord {
	return catalog.PlanRecord{
		ID:       id,
		Company:  company,
		PlanName: id,
		Category: catalog.CategoryElectricity,
		Price:    catalog.DiscountPercent(discount),
		Features: features,
	}
}

func hasPrefix(list []string, prefix string) bool {
	for _, s := range list {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func TestRankInternetExample(t *testing.T) {
	engine := New(DefaultConfig())
	plan := internetPlan("net-1", "Bezeq", 100, "500 Mbps")
	prof := profile.UserProfile{MonthlyBudget: 150, CurrentMonthlySpend: 150}

	recs := engine.Rank([]catalog.PlanRecord{plan}, prof)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	rec := recs[0]
	// 30 for the budget band plus 5 for the ₪50 monthly difference.
	if rec.Breakdown.Budget != 35 {
		t.Fatalf("expected budget axis 35, got %v", rec.Breakdown.Budget)
	}
	if !hasPrefix(rec.ReasonsForRecommendation, "💰 Well within your budget") {
		t.Fatalf("expected well-within-budget reason, got %v", rec.ReasonsForRecommendation)
	}
	got := rec.ExpectedSavings.Rounded()
	want := RoundedSavings{Monthly: 50, Annual: 600, Percentage: 33}
	if got != want {
		t.Fatalf("expected savings %+v, got %+v", want, got)
	}
}

func TestRankElectricityExample(t *testing.T) {
	engine := New(DefaultConfig())
	plan := electricityPlan("elec-1", "Electra Power", 20)
	prof := profile.UserProfile{MonthlyBudget: 500, CurrentMonthlySpend: 400}

	recs := engine.Rank([]catalog.PlanRecord{plan}, prof)
	rec := recs[0]
	if rec.ExpectedSavings != (Savings{Monthly: 80, Annual: 960, Percentage: 20}) {
		t.Fatalf("unexpected savings %+v", rec.ExpectedSavings)
	}
	if rec.Breakdown.Budget != 25 {
		t.Fatalf("expected electricity budget points 25, got %v", rec.Breakdown.Budget)
	}
}

func TestRankEmptyCategory(t *testing.T) {
	engine := New(DefaultConfig())
	plans := catalog.NewCatalog(nil).ByCategory(catalog.CategoryTV)

	recs := engine.Rank(plans, profile.UserProfile{MonthlyBudget: 100})
	if recs == nil {
		t.Fatalf("expected empty non-nil slice")
	}
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(recs))
	}
}

func TestRankZeroBudgetSkipsBudgetAxis(t *testing.T) {
	engine := New(DefaultConfig())
	plans := []catalog.PlanRecord{
		internetPlan("net-1", "Bezeq", 100, "500 Mbps"),
		electricityPlan("elec-1", "Electra Power", 20),
	}
	for _, budget := range []float64{0, -50, math.NaN()} {
		recs := engine.Rank(plans, profile.UserProfile{MonthlyBudget: budget, CurrentMonthlySpend: 400})
		for _, rec := range recs {
			if rec.Breakdown.Budget != 0 {
				t.Fatalf("budget %v: expected no budget points for %s, got %v", budget, rec.PlanID, rec.Breakdown.Budget)
			}
			if hasPrefix(rec.ReasonsForRecommendation, "💰") || hasPrefix(rec.ReasonsForRecommendation, "💵") {
				t.Fatalf("budget %v: unexpected budget reason %v", budget, rec.ReasonsForRecommendation)
			}
			if hasPrefix(rec.PotentialConcerns, "⚠️ Exceeds") || hasPrefix(rec.PotentialConcerns, "⚠️ Price is more") {
				t.Fatalf("budget %v: unexpected budget concern %v", budget, rec.PotentialConcerns)
			}
		}
	}
}

func TestBudgetBands(t *testing.T) {
	engine := New(DefaultConfig())
	cases := []struct {
		name        string
		price       float64
		flexibility profile.PriceFlexibility
		want        float64
		concern     string
	}{
		{name: "well_within", price: 70, want: 30},
		{name: "comfortable", price: 90, want: 20},
		{name: "close_flexible", price: 105, flexibility: profile.FlexibilityFlexible, want: 10},
		{name: "close_strict", price: 105, flexibility: profile.FlexibilityStrict, want: 0, concern: "⚠️ Slightly above your strict budget"},
		{name: "over", price: 150, want: 0, concern: "⚠️ Exceeds your monthly budget of ₪100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := internetPlan("p", "Bezeq", tc.price, "")
			prof := profile.UserProfile{MonthlyBudget: 100, PriceFlexibility: tc.flexibility}
			got := engine.scoreBudget(plan, prof)
			if got.score != tc.want {
				t.Fatalf("expected %v points, got %v", tc.want, got.score)
			}
			if tc.concern != "" && (len(got.concerns) == 0 || got.concerns[0] != tc.concern) {
				t.Fatalf("expected concern %q, got %v", tc.concern, got.concerns)
			}
		})
	}
}

func TestBudgetSpendDifference(t *testing.T) {
	engine := New(DefaultConfig())
	plan := internetPlan("p", "Bezeq", 100, "")

	cheaper := engine.scoreBudget(plan, profile.UserProfile{MonthlyBudget: 1000, CurrentMonthlySpend: 400})
	if cheaper.score != 50 {
		t.Fatalf("expected 30 band points plus capped 20, got %v", cheaper.score)
	}

	pricier := engine.scoreBudget(plan, profile.UserProfile{MonthlyBudget: 1000, CurrentMonthlySpend: 40})
	if !hasPrefix(pricier.concerns, "⚠️ Costs ₪60 more") {
		t.Fatalf("expected extra-cost concern, got %v", pricier.concerns)
	}

	huge := engine.scoreBudget(internetPlan("huge", "Bezeq", 1e300, ""), profile.UserProfile{MonthlyBudget: 100, CurrentMonthlySpend: 1})
	if !hasPrefix(huge.concerns, "⚠️ Costs ₪999999999999 more") {
		t.Fatalf("expected capped extra-cost concern, got %v", huge.concerns)
	}
}

func TestScoreBoundsAndSortOrder(t *testing.T) {
	engine := New(Config{ExtendedPriorities: true})
	plans := catalog.DefaultCatalog().All()
	profiles := []profile.UserProfile{
		{},
		{MonthlyBudget: 1, CurrentMonthlySpend: 100000},
		{
			FamilySize:           6,
			MonthlyBudget:        500,
			CurrentMonthlySpend:  450,
			CurrentProvider:      "HOT",
			Location:             "Haifa",
			UsageLevel:           profile.UsageExtreme,
			WorkFromHome:         true,
			StreamingHeavy:       true,
			GamingHeavy:          true,
			ContractFlexibility:  profile.ContractNoCommitment,
			TechnologyPreference: profile.TechnologyLatest,
			Priorities: profile.Priorities{
				profile.DimensionPrice:       5,
				profile.DimensionReliability: 5,
				profile.DimensionFeatures:    9,
				profile.DimensionBrandTrust:  4,
				profile.DimensionSpeed:       5,
			},
			CategorySpecific: &profile.CategorySpecific{RequiredSpeed: 300, HasSmartMeter: true, TimeOfUse: true, HasSolarPanels: true, Lines: 3},
		},
	}

	for i, prof := range profiles {
		recs := engine.Rank(plans, prof)
		if len(recs) != len(plans) {
			t.Fatalf("profile %d: expected %d recommendations, got %d", i, len(plans), len(recs))
		}
		for j, rec := range recs {
			if rec.PersonalizedScore < 0 || rec.PersonalizedScore > 100 {
				t.Fatalf("profile %d: score out of range %d", i, rec.PersonalizedScore)
			}
			if rec.ConfidenceLevel < 0 || rec.ConfidenceLevel > 1 {
				t.Fatalf("profile %d: confidence out of range %v", i, rec.ConfidenceLevel)
			}
			if j > 0 && recs[j-1].PersonalizedScore < rec.PersonalizedScore {
				t.Fatalf("profile %d: not sorted at %d", i, j)
			}
		}
	}
}

func TestRankTieBreaksByInputOrder(t *testing.T) {
	engine := New(DefaultConfig())
	plans := []catalog.PlanRecord{
		internetPlan("b", "Unknown One", 80, ""),
		internetPlan("a", "Unknown Two", 80, ""),
	}
	recs := engine.Rank(plans, profile.UserProfile{})
	if recs[0].PlanID != "b" || recs[1].PlanID != "a" {
		t.Fatalf("expected input order on ties, got %s,%s", recs[0].PlanID, recs[1].PlanID)
	}
}

func TestRankIdempotent(t *testing.T) {
	engine := New(DefaultConfig())
	plans := catalog.DefaultCatalog().All()
	prof := profile.UserProfile{
		MonthlyBudget:       200,
		CurrentMonthlySpend: 180,
		Priorities:          profile.Priorities{profile.DimensionPrice: 5, profile.DimensionFeatures: 4},
	}

	first := engine.Rank(plans, prof)
	second := engine.Rank(plans, prof)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic ranking")
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	engine := New(DefaultConfig())
	plans := catalog.DefaultCatalog().ByCategory(catalog.CategoryInternet)
	before := catalog.DefaultCatalog().ByCategory(catalog.CategoryInternet)

	engine.Rank(plans, profile.UserProfile{MonthlyBudget: 100})
	if !reflect.DeepEqual(plans, before) {
		t.Fatalf("expected input plans untouched")
	}
}

func TestSavingsMonotonic(t *testing.T) {
	plans := catalog.DefaultCatalog().ByCategory(catalog.CategoryInternet)
	sort.Slice(plans, func(i, j int) bool {
		a, _ := plans[i].Price.Monthly()
		b, _ := plans[j].Price.Monthly()
		return a < b
	})
	prof := profile.UserProfile{CurrentMonthlySpend: 110}
	for i := 1; i < len(plans); i++ {
		cheaper := CalculateSavings(plans[i-1], prof)
		pricier := CalculateSavings(plans[i], prof)
		if cheaper.Monthly < pricier.Monthly {
			t.Fatalf("savings of %s below %s", plans[i-1].ID, plans[i].ID)
		}
	}
}

func TestSavingsNoSpend(t *testing.T) {
	got := CalculateSavings(internetPlan("p", "Bezeq", 100, ""), profile.UserProfile{})
	if got != (Savings{}) {
		t.Fatalf("expected zero savings, got %+v", got)
	}
	if got := CalculateSavings(catalog.PlanRecord{ID: "unpriced"}, profile.UserProfile{CurrentMonthlySpend: 100}); got != (Savings{}) {
		t.Fatalf("expected zero savings for unpriced plan, got %+v", got)
	}
}

func TestSavingsIgnoresIntroPrice(t *testing.T) {
	intro := 50.0
	plan := internetPlan("p", "Bezeq", 100, "")
	plan.IntroPrice = &intro
	plan.IntroMonths = 6

	got := CalculateSavings(plan, profile.UserProfile{CurrentMonthlySpend: 120})
	if got.Monthly != 20 {
		t.Fatalf("expected savings on the regular price, got %v", got.Monthly)
	}
}

func TestPriorityAxis(t *testing.T) {
	engine := New(Config{Providers: NewProviderTable(map[string]ProviderScores{
		"Acme": {Reliability: ptr(90), BrandTrust: ptr(60)},
	})})
	peers := []catalog.PlanRecord{
		internetPlan("cheap", "Acme", 50, "", "a", "b", "c"),
		internetPlan("mid", "Acme", 80, "", "a"),
		internetPlan("mid2", "Acme", 80, "", "a"),
	}

	cases := []struct {
		name       string
		plan       int
		priorities profile.Priorities
		want       float64
	}{
		{name: "price_rank_1", plan: 0, priorities: profile.Priorities{profile.DimensionPrice: 5}, want: 17},
		{name: "price_rank_tied", plan: 1, priorities: profile.Priorities{profile.DimensionPrice: 5}, want: 14},
		{name: "weight_three_ignored", plan: 0, priorities: profile.Priorities{profile.DimensionPrice: 3}, want: 0},
		{name: "reliability", plan: 1, priorities: profile.Priorities{profile.DimensionReliability: 4}, want: 18},
		{name: "brand_trust", plan: 1, priorities: profile.Priorities{profile.DimensionBrandTrust: 4}, want: 9},
		{name: "features_rank_2", plan: 2, priorities: profile.Priorities{profile.DimensionFeatures: 5}, want: 16},
		// (17*5 + 18*4) / 9 = 17.44
		{name: "weighted_mean", plan: 0, priorities: profile.Priorities{profile.DimensionPrice: 5, profile.DimensionReliability: 4}, want: 17},
		{name: "speed_needs_extended", plan: 0, priorities: profile.Priorities{profile.DimensionSpeed: 5}, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := engine.Evaluate(peers[tc.plan], profile.UserProfile{Priorities: tc.priorities}, peers)
			if rec.Breakdown.Priority != tc.want {
				t.Fatalf("expected priority %v, got %v", tc.want, rec.Breakdown.Priority)
			}
		})
	}
}

func TestPriorityAxisSkipsUnpricedPlan(t *testing.T) {
	engine := New(Config{Providers: NewProviderTable(map[string]ProviderScores{
		"Acme": {Reliability: ptr(90)},
	})})
	unpriced := catalog.PlanRecord{ID: "z", Company: "Acme", PlanName: "z", Category: catalog.CategoryInternet}
	peers := []catalog.PlanRecord{unpriced, internetPlan("cheap", "Acme", 50, "")}

	priceOnly := engine.scorePriority(unpriced, profile.UserProfile{Priorities: profile.Priorities{profile.DimensionPrice: 5}}, peers)
	if priceOnly.score != 0 || len(priceOnly.reasons) != 0 {
		t.Fatalf("expected no price points for an unpriced plan, got %v %v", priceOnly.score, priceOnly.reasons)
	}

	mixed := engine.scorePriority(unpriced, profile.UserProfile{Priorities: profile.Priorities{
		profile.DimensionPrice:       5,
		profile.DimensionReliability: 4,
	}}, peers)
	if mixed.score != 18 {
		t.Fatalf("expected reliability alone to set the mean, got %v", mixed.score)
	}
	if hasPrefix(mixed.reasons, "⭐ Lowest price") {
		t.Fatalf("unpriced plan must not claim the lowest price, got %v", mixed.reasons)
	}
}

func TestElectricityPriceRankUsesDiscount(t *testing.T) {
	peers := []catalog.PlanRecord{
		electricityPlan("small", "Acme", 5),
		electricityPlan("big", "Acme", 20),
	}
	if got := priceRank(peers[1], peers); got != 1 {
		t.Fatalf("expected biggest discount to rank first, got %d", got)
	}
	if got := priceRank(peers[0], peers); got != 2 {
		t.Fatalf("expected smaller discount to rank second, got %d", got)
	}
}

func TestExtendedPriorities(t *testing.T) {
	engine := New(Config{ExtendedPriorities: true})
	peers := []catalog.PlanRecord{
		internetPlan("fast", "Bezeq", 120, "1000 Mbps", "Fiber", "WiFi 6", "no commitment"),
		internetPlan("slow", "Bezeq", 60, "100 Mbps"),
	}

	speed := engine.Evaluate(peers[0], profile.UserProfile{Priorities: profile.Priorities{profile.DimensionSpeed: 5}}, peers)
	if speed.Breakdown.Priority != 17 {
		t.Fatalf("expected fastest plan speed score 17, got %v", speed.Breakdown.Priority)
	}
	flex := engine.Evaluate(peers[0], profile.UserProfile{Priorities: profile.Priorities{profile.DimensionFlexibility: 5}}, peers)
	if flex.Breakdown.Priority != 20 {
		t.Fatalf("expected flexibility score 20, got %v", flex.Breakdown.Priority)
	}
	innovation := engine.Evaluate(peers[0], profile.UserProfile{Priorities: profile.Priorities{profile.DimensionInnovation: 5}}, peers)
	if innovation.Breakdown.Priority != 10 {
		t.Fatalf("expected innovation score 10, got %v", innovation.Breakdown.Priority)
	}
}

func TestUsageAxis(t *testing.T) {
	engine := New(DefaultConfig())
	plan := internetPlan("p", "Bezeq", 100, "500 Mbps", "Family pack", "Reliable uptime")

	prof := profile.UserProfile{FamilySize: 4, WorkFromHome: true, UsageLevel: profile.UsageLight}
	got := engine.scoreUsage(plan, prof)
	// family 15, work from home speed 20, reliability 10, two features cover light usage 15.
	if got.score != 60 {
		t.Fatalf("expected usage 60, got %v (%v)", got.score, got.reasons)
	}

	prof.UsageLevel = profile.UsageHeavy
	if got := engine.scoreUsage(plan, prof); got.score != 45 {
		t.Fatalf("expected heavy usage to miss the feature bonus, got %v", got.score)
	}
}

func TestFeatureAxis(t *testing.T) {
	engine := New(DefaultConfig())
	plan := internetPlan("p", "Bezeq", 100, "300 Mbps", "Fiber optic", "No commitment")
	prof := profile.UserProfile{
		ContractFlexibility:  profile.ContractNoCommitment,
		TechnologyPreference: profile.TechnologyLatest,
		CategorySpecific:     &profile.CategorySpecific{RequiredSpeed: 500},
	}

	got := engine.scoreFeatures(plan, prof)
	if got.score != 30 {
		t.Fatalf("expected 30 feature points, got %v", got.score)
	}
	if !hasPrefix(got.concerns, "⚠️ Slower than your required 500 Mbps") {
		t.Fatalf("expected speed concern, got %v", got.concerns)
	}

	elec := electricityPlan("e", "Pazgas", 10, "Smart meter discount", "Night time of use")
	prof.TechnologyPreference = ""
	prof.CategorySpecific = &profile.CategorySpecific{HasSmartMeter: true, TimeOfUse: true}
	if got := engine.scoreFeatures(elec, prof); got.score != 20 {
		t.Fatalf("expected 20 electricity feature points, got %v", got.score)
	}
}

func TestRiskLevels(t *testing.T) {
	engine := New(Config{Providers: NewProviderTable(map[string]ProviderScores{
		"Shaky": {Reliability: ptr(50)},
	})})
	cases := []struct {
		name    string
		plan    catalog.PlanRecord
		prof    profile.UserProfile
		want    RiskLevel
		reasons int
	}{
		{name: "low", plan: internetPlan("p", "Solid", 80, ""), prof: profile.UserProfile{MonthlyBudget: 100}, want: RiskLow},
		{name: "unreliable_only", plan: internetPlan("p", "Shaky", 80, ""), prof: profile.UserProfile{MonthlyBudget: 100}, want: RiskLow, reasons: 1},
		{name: "over_budget_and_unreliable", plan: internetPlan("p", "Shaky", 200, ""), prof: profile.UserProfile{MonthlyBudget: 100}, want: RiskMedium, reasons: 2},
		{
			name:    "all_three",
			plan:    internetPlan("p", "Shaky", 200, ""),
			prof:    profile.UserProfile{MonthlyBudget: 100, ContractFlexibility: profile.ContractNoCommitment},
			want:    RiskHigh,
			reasons: 3,
		},
		{name: "electricity_skips_budget", plan: electricityPlan("e", "Shaky", 10), prof: profile.UserProfile{MonthlyBudget: 1}, want: RiskLow, reasons: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.assessRisk(tc.plan, tc.prof.Normalize())
			if got.level != tc.want {
				t.Fatalf("expected %s, got %s (score %d)", tc.want, got.level, got.score)
			}
			if len(got.concerns) != tc.reasons {
				t.Fatalf("expected %d concerns, got %v", tc.reasons, got.concerns)
			}
		})
	}
}

func TestConfidence(t *testing.T) {
	engine := New(DefaultConfig())
	plan := internetPlan("p", "Bezeq", 100, "")

	bare := engine.Rank([]catalog.PlanRecord{plan}, profile.UserProfile{})[0]
	if math.Abs(bare.ConfidenceLevel-0.56) > 1e-9 {
		t.Fatalf("expected 0.8*0.7, got %v", bare.ConfidenceLevel)
	}

	full := profile.UserProfile{
		CurrentMonthlySpend: 100,
		CurrentProvider:     "HOT",
		Location:            "Tel Aviv",
		Priorities:          profile.Priorities{profile.DimensionPrice: 1},
		CategorySpecific:    &profile.CategorySpecific{RequiredSpeed: 100},
	}
	rec := engine.Rank([]catalog.PlanRecord{plan}, full)[0]
	if rec.ConfidenceLevel != 1 {
		t.Fatalf("expected full confidence, got %v", rec.ConfidenceLevel)
	}

	single := engine.Evaluate(plan, profile.UserProfile{CurrentMonthlySpend: 100}, nil)
	if math.Abs(single.ConfidenceLevel-0.9) > 1e-9 {
		t.Fatalf("expected per-plan confidence 0.9, got %v", single.ConfidenceLevel)
	}
}

func TestInsightsAndActions(t *testing.T) {
	engine := New(DefaultConfig())
	intro := 89.0
	plan := internetPlan("p", "Bezeq", 119, "1000 Mbps", "Fiber")
	plan.IntroPrice = &intro
	plan.IntroMonths = 6
	plan.Commitment = "12 months"

	rec := engine.Evaluate(plan, profile.UserProfile{CurrentMonthlySpend: 200, CurrentProvider: "bezeq", GamingHeavy: true}, nil)
	for _, prefix := range []string{"💡", "🎁", "🔄", "🎮"} {
		if !hasPrefix(rec.PersonalizedInsights, prefix) {
			t.Fatalf("expected %s insight, got %v", prefix, rec.PersonalizedInsights)
		}
	}
	for _, want := range []string{"👉 Contact Bezeq", "👉 Review the 12-month", "👉 Set a reminder"} {
		if !hasPrefix(rec.ActionRecommendations, want) {
			t.Fatalf("expected action %q, got %v", want, rec.ActionRecommendations)
		}
	}

	noOp := 150.0
	plan.IntroPrice = &noOp
	rec = engine.Evaluate(plan, profile.UserProfile{}, nil)
	if hasPrefix(rec.PersonalizedInsights, "🎁") {
		t.Fatalf("intro price above regular should not be advertised")
	}
	if !hasPrefix(rec.ActionRecommendations, "👉 Confirm the final monthly price") {
		t.Fatalf("expected confirm-price action, got %v", rec.ActionRecommendations)
	}
}

func TestTop(t *testing.T) {
	recs := []Recommendation{{PlanID: "a"}, {PlanID: "b"}, {PlanID: "c"}}
	if got := Top(recs, 2); len(got) != 2 || got[1].PlanID != "b" {
		t.Fatalf("unexpected top 2: %+v", got)
	}
	if got := Top(recs, 0); len(got) != 3 {
		t.Fatalf("expected all for n=0, got %d", len(got))
	}
	if got := Top(recs, 10); len(got) != 3 {
		t.Fatalf("expected all for large n, got %d", len(got))
	}
}

func TestRankBatch(t *testing.T) {
	engine := New(DefaultConfig())
	plans := catalog.DefaultCatalog().ByCategory(catalog.CategoryCellular)
	profiles := []profile.UserProfile{
		{MonthlyBudget: 50},
		{MonthlyBudget: 200, FamilySize: 5},
		{MonthlyBudget: 30, ContractFlexibility: profile.ContractNoCommitment},
	}

	got, err := engine.RankBatch(context.Background(), plans, profiles, 2)
	if err != nil {
		t.Fatalf("RankBatch: %v", err)
	}
	if len(got) != len(profiles) {
		t.Fatalf("expected %d result sets, got %d", len(profiles), len(got))
	}
	for i, prof := range profiles {
		if !reflect.DeepEqual(got[i], engine.Rank(plans, prof)) {
			t.Fatalf("result %d differs from sequential ranking", i)
		}
	}
}

func TestRankBatchCancelled(t *testing.T) {
	engine := New(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.RankBatch(ctx, nil, []profile.UserProfile{{}}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func ptr(v float64) *float64 { return &v }
