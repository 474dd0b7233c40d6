package profile

import "math"

// Dimension names one weighted priority a user can declare.
type Dimension string

const (
	DimensionPrice           Dimension = "price"
	DimensionReliability     Dimension = "reliability"
	DimensionSpeed           Dimension = "speed"
	DimensionCustomerService Dimension = "customerService"
	DimensionFlexibility     Dimension = "flexibility"
	DimensionFeatures        Dimension = "features"
	DimensionBrandTrust      Dimension = "brandTrust"
	DimensionInnovation      Dimension = "innovation"
)

// AllDimensions lists every declared dimension in a stable order.
var AllDimensions = []Dimension{
	DimensionPrice,
	DimensionReliability,
	DimensionSpeed,
	DimensionCustomerService,
	DimensionFlexibility,
	DimensionFeatures,
	DimensionBrandTrust,
	DimensionInnovation,
}

// MaxWeight is the upper bound of a priority weight.
const MaxWeight = 5.0

// Priorities maps a dimension to a weight in [0,5]. Weights do not need to sum to anything;
// zero means the dimension is ignored.
type Priorities map[Dimension]float64

// Weight returns the clamped weight for d.
func (p Priorities) Weight(d Dimension) float64 {
	if p == nil {
		return 0
	}
	return clampWeight(p[d])
}

// AnySet reports whether at least one weight is non-zero.
func (p Priorities) AnySet() bool {
	for _, d := range AllDimensions {
		if p.Weight(d) > 0 {
			return true
		}
	}
	return false
}

func (p Priorities) clamped() Priorities {
	if p == nil {
		return nil
	}
	out := make(Priorities, len(p))
	for d, w := range p {
		out[d] = clampWeight(w)
	}
	return out
}

func clampWeight(w float64) float64 {
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}
