package catalog

import (
	"fmt"
	"math"
)

// PriceKind tags which variant a PriceModel holds.
type PriceKind int

const (
	PriceUnknown PriceKind = iota
	// PriceAbsolute is a monthly price in local currency.
	PriceAbsolute
	// PriceDiscountPercent is a percentage off the regulated grid tariff.
	PriceDiscountPercent
)

func (k PriceKind) String() string {
	switch k {
	case PriceAbsolute:
		return "absolute"
	case PriceDiscountPercent:
		return "discount_percent"
	default:
		return "unknown"
	}
}

// ParsePriceKind is the inverse of PriceKind.String.
func ParsePriceKind(raw string) (PriceKind, error) {
	switch raw {
	case "absolute":
		return PriceAbsolute, nil
	case "discount_percent":
		return PriceDiscountPercent, nil
	default:
		return PriceUnknown, fmt.Errorf("unknown price kind %q", raw)
	}
}

// MaxMonthlyPrice caps absolute prices to the same bound profiles apply to money inputs.
const MaxMonthlyPrice = 1e12

// PriceModel is either an absolute monthly price or a discount percentage.
// Callers must branch on Kind; the zero value is neither.
type PriceModel struct {
	kind  PriceKind
	value float64
}

// AbsolutePrice builds a monthly price clamped to [0,MaxMonthlyPrice].
func AbsolutePrice(v float64) PriceModel {
	return PriceModel{kind: PriceAbsolute, value: clamp(v, 0, MaxMonthlyPrice)}
}

// DiscountPercent builds a discount off the grid tariff, clamped to [0,100].
func DiscountPercent(v float64) PriceModel {
	return PriceModel{kind: PriceDiscountPercent, value: clamp(v, 0, 100)}
}

// Kind reports the variant.
func (p PriceModel) Kind() PriceKind { return p.kind }

// Value returns the raw number regardless of variant. Used for storage only.
func (p PriceModel) Value() float64 { return p.value }

// Monthly returns the absolute monthly price when the model is PriceAbsolute.
func (p PriceModel) Monthly() (float64, bool) {
	if p.kind != PriceAbsolute {
		return 0, false
	}
	return p.value, true
}

// Discount returns the discount percentage when the model is PriceDiscountPercent.
func (p PriceModel) Discount() (float64, bool) {
	if p.kind != PriceDiscountPercent {
		return 0, false
	}
	return p.value, true
}

func (p PriceModel) String() string {
	switch p.kind {
	case PriceAbsolute:
		return fmt.Sprintf("₪%g/month", p.value)
	case PriceDiscountPercent:
		return fmt.Sprintf("%g%% off tariff", p.value)
	default:
		return "unpriced"
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
