package profile

import (
	"math"
	"strings"
)

// PriceFlexibility describes how far over budget a user is willing to go.
type PriceFlexibility string

const (
	FlexibilityStrict       PriceFlexibility = "strict"
	FlexibilityFlexible     PriceFlexibility = "flexible"
	FlexibilityVeryFlexible PriceFlexibility = "very_flexible"
)

// UsageLevel is the declared intensity of service usage.
type UsageLevel string

const (
	UsageLight   UsageLevel = "light"
	UsageMedium  UsageLevel = "medium"
	UsageHeavy   UsageLevel = "heavy"
	UsageExtreme UsageLevel = "extreme"
)

// Threshold maps the usage level to the share of a five-feature plan the user needs.
// Unknown levels behave like medium.
func (u UsageLevel) Threshold() float64 {
	switch u {
	case UsageLight:
		return 0.3
	case UsageHeavy:
		return 0.8
	case UsageExtreme:
		return 1.0
	default:
		return 0.6
	}
}

// maxAmount caps monetary inputs so derived annual figures stay finite.
const maxAmount = 1e12

const (
	ContractNoCommitment = "no_commitment"
	TechnologyLatest     = "latest"
)

// UserProfile is one user's circumstances, budget, usage and priorities.
type UserProfile struct {
	FamilySize           int               `json:"familySize"`
	HomeType             string            `json:"homeType,omitempty"`
	Location             string            `json:"location,omitempty"`
	MonthlyBudget        float64           `json:"monthlyBudget"`
	CurrentMonthlySpend  float64           `json:"currentMonthlySpend"`
	CurrentProvider      string            `json:"currentProvider,omitempty"`
	PriceFlexibility     PriceFlexibility  `json:"priceFlexibility,omitempty"`
	UsageLevel           UsageLevel        `json:"usageLevel,omitempty"`
	WorkFromHome         bool              `json:"workFromHome"`
	StreamingHeavy       bool              `json:"streamingHeavy"`
	GamingHeavy          bool              `json:"gamingHeavy"`
	Priorities           Priorities        `json:"priorities,omitempty"`
	ContractFlexibility  string            `json:"contractFlexibility,omitempty"`
	TechnologyPreference string            `json:"technologyPreference,omitempty"`
	SupportImportance    string            `json:"supportImportance,omitempty"`
	CategorySpecific     *CategorySpecific `json:"categorySpecific,omitempty"`
}

// CategorySpecific holds optional requirements that only make sense for one category.
type CategorySpecific struct {
	RequiredSpeed  float64 `json:"requiredSpeed,omitempty"`
	HasSolarPanels bool    `json:"hasSolarPanels,omitempty"`
	HasSmartMeter  bool    `json:"hasSmartMeter,omitempty"`
	TimeOfUse      bool    `json:"timeOfUse,omitempty"`
	Lines          int     `json:"lines,omitempty"`
}

// Populated reports whether any category requirement was supplied.
func (c *CategorySpecific) Populated() bool {
	if c == nil {
		return false
	}
	return c.RequiredSpeed > 0 || c.HasSolarPanels || c.HasSmartMeter || c.TimeOfUse || c.Lines > 0
}

// WantsNoCommitment reports whether the user asked for plans without a contract.
func (p UserProfile) WantsNoCommitment() bool {
	return p.ContractFlexibility == ContractNoCommitment
}

// Normalize returns a copy with numeric fields clamped and enum-like fields lower-cased.
// It never fails: scoring is advisory and out-of-range input is clamped, not rejected.
func (p UserProfile) Normalize() UserProfile {
	out := p
	out.FamilySize = max(0, p.FamilySize)
	out.MonthlyBudget = nonNegative(p.MonthlyBudget)
	out.CurrentMonthlySpend = nonNegative(p.CurrentMonthlySpend)
	out.HomeType = strings.TrimSpace(p.HomeType)
	out.Location = strings.TrimSpace(p.Location)
	out.CurrentProvider = strings.TrimSpace(p.CurrentProvider)
	out.PriceFlexibility = PriceFlexibility(normalizeEnum(string(p.PriceFlexibility)))
	out.UsageLevel = UsageLevel(normalizeEnum(string(p.UsageLevel)))
	out.ContractFlexibility = normalizeEnum(p.ContractFlexibility)
	out.TechnologyPreference = normalizeEnum(p.TechnologyPreference)
	out.SupportImportance = normalizeEnum(p.SupportImportance)
	out.Priorities = p.Priorities.clamped()
	if p.CategorySpecific != nil {
		cs := *p.CategorySpecific
		cs.RequiredSpeed = nonNegative(cs.RequiredSpeed)
		cs.Lines = max(0, cs.Lines)
		out.CategorySpecific = &cs
	}
	return out
}

func normalizeEnum(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, maxAmount)
}
