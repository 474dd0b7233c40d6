package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Category partitions the catalog. A plan belongs to exactly one.
type Category string

const (
	CategoryElectricity Category = "electricity"
	CategoryCellular    Category = "cellular"
	CategoryInternet    Category = "internet"
	CategoryTV          Category = "tv"
	CategoryTriple      Category = "triple"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryElectricity,
	CategoryCellular,
	CategoryInternet,
	CategoryTV,
	CategoryTriple,
}

// ParseCategory normalizes raw input into a known category.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	return c, c.Valid()
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// PlanRecord is one immutable catalog entry.
type PlanRecord struct {
	ID            string
	Company       string
	PlanName      string
	Category      Category
	Price         PriceModel
	IntroPrice    *float64
	IntroMonths   int
	Features      []string
	DownloadSpeed string
	UploadSpeed   string
	DataAmount    string
	Commitment    string
	Channels      int
}

// HasIntroOffer reports whether the promotion actually lowers the price.
// An intro price at or above the regular price is treated as no promotion.
func (p PlanRecord) HasIntroOffer() bool {
	if p.IntroPrice == nil || p.IntroMonths <= 0 {
		return false
	}
	regular, ok := p.Price.Monthly()
	if !ok {
		return false
	}
	return *p.IntroPrice >= 0 && *p.IntroPrice < regular
}

// CommitmentMonths parses the leading number of the commitment text, 0 when absent.
func (p PlanRecord) CommitmentMonths() int {
	return int(ParseLeadingNumber(p.Commitment))
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseLeadingNumber returns the first decimal number in s, or 0 when there is none.
// Used for free-text technical attributes such as "1000 Mbps" or "12 months".
func ParseLeadingNumber(s string) float64 {
	match := numberPattern.FindString(strings.ReplaceAll(s, ",", ""))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}
