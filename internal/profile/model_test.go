package profile

import (
	"math"
	"testing"
)

func TestUsageLevelThreshold(t *testing.T) {
	cases := []struct {
		level UsageLevel
		want  float64
	}{
		{UsageLight, 0.3},
		{UsageMedium, 0.6},
		{UsageHeavy, 0.8},
		{UsageExtreme, 1.0},
		{UsageLevel("unknown"), 0.6},
		{UsageLevel(""), 0.6},
	}
	for _, tc := range cases {
		if got := tc.level.Threshold(); got != tc.want {
			t.Fatalf("Threshold(%q) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestPrioritiesWeightClamps(t *testing.T) {
	p := Priorities{
		DimensionPrice:       7,
		DimensionReliability: -2,
		DimensionFeatures:    math.NaN(),
		DimensionBrandTrust:  4,
	}
	if got := p.Weight(DimensionPrice); got != 5 {
		t.Fatalf("expected price weight clamped to 5, got %v", got)
	}
	if got := p.Weight(DimensionReliability); got != 0 {
		t.Fatalf("expected negative weight clamped to 0, got %v", got)
	}
	if got := p.Weight(DimensionFeatures); got != 0 {
		t.Fatalf("expected NaN weight to be 0, got %v", got)
	}
	if got := p.Weight(DimensionSpeed); got != 0 {
		t.Fatalf("expected missing weight to be 0, got %v", got)
	}
	if !p.AnySet() {
		t.Fatalf("expected AnySet to be true")
	}
	var empty Priorities
	if empty.AnySet() {
		t.Fatalf("expected nil priorities to report none set")
	}
}

func TestNormalizeClampsAndLowercases(t *testing.T) {
	in := UserProfile{
		FamilySize:          -1,
		MonthlyBudget:       -50,
		CurrentMonthlySpend: math.NaN(),
		PriceFlexibility:    "Very Flexible",
		UsageLevel:          " HEAVY ",
		ContractFlexibility: "No-Commitment",
		Priorities:          Priorities{DimensionPrice: 9},
		CategorySpecific:    &CategorySpecific{RequiredSpeed: -10, Lines: -3},
	}
	out := in.Normalize()

	if out.FamilySize != 0 || out.MonthlyBudget != 0 || out.CurrentMonthlySpend != 0 {
		t.Fatalf("expected numeric fields clamped to zero, got %+v", out)
	}
	if out.PriceFlexibility != FlexibilityVeryFlexible {
		t.Fatalf("expected very_flexible, got %q", out.PriceFlexibility)
	}
	if out.UsageLevel != UsageHeavy {
		t.Fatalf("expected heavy, got %q", out.UsageLevel)
	}
	if !out.WantsNoCommitment() {
		t.Fatalf("expected no_commitment after normalization, got %q", out.ContractFlexibility)
	}
	if out.Priorities[DimensionPrice] != 5 {
		t.Fatalf("expected clamped priority, got %v", out.Priorities[DimensionPrice])
	}
	if out.CategorySpecific.RequiredSpeed != 0 || out.CategorySpecific.Lines != 0 {
		t.Fatalf("expected category specific clamped, got %+v", out.CategorySpecific)
	}
	if in.CategorySpecific.RequiredSpeed != -10 {
		t.Fatalf("normalize must not mutate the input profile")
	}
}

func TestCategorySpecificPopulated(t *testing.T) {
	var nilCS *CategorySpecific
	if nilCS.Populated() {
		t.Fatalf("nil category specific must not be populated")
	}
	if (&CategorySpecific{}).Populated() {
		t.Fatalf("empty category specific must not be populated")
	}
	if !(&CategorySpecific{HasSmartMeter: true}).Populated() {
		t.Fatalf("expected populated with smart meter flag")
	}
}
