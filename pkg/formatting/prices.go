package formatting

import "math"

// priceTier pairs an upper bound with the rounding granularity applied to
// estimates below that bound.
type priceTier struct {
	below float64
	unit  float64
}

var priceTiers = []priceTier{
	{below: 100, unit: 10},
	{below: 1_000, unit: 50},
	{below: 10_000, unit: 100},
	{below: 100_000, unit: 500},
}

// HumanizePrice rounds a raw value estimate to a precision a human appraiser
// would actually quote, so surfaced figures never suggest false precision.
// The rounding unit scales with the price tier: nearest 10 under 100, nearest
// 50 under 1,000, nearest 100 under 10,000, nearest 500 under 100,000, and
// nearest 1,000 above that. Idempotent for all non-negative inputs.
func HumanizePrice(value float64) float64 {
	if value <= 0 {
		return 0
	}

	unit := 1_000.0
	for _, tier := range priceTiers {
		if value < tier.below {
			unit = tier.unit
			break
		}
	}

	return math.Round(value/unit) * unit
}

// HumanizePricePtr applies HumanizePrice through an optional value,
// preserving nil as "no estimate".
func HumanizePricePtr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := HumanizePrice(*value)
	return &rounded
}
