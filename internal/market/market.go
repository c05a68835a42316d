// Package market queries external auction and marketplace sources for
// comparable sales and computes aggregate price statistics. The orchestrator
// treats this package as a black box behind the System interface; lookup
// failures are enrichment losses, never analysis failures.
package market

import (
	"context"
	"time"
)

// ComparableSale is one sold listing returned by a marketplace source.
type ComparableSale struct {
	Title       string    `json:"title"`
	Marketplace string    `json:"marketplace"`
	SoldPrice   float64   `json:"sold_price"`
	SoldAt      time.Time `json:"sold_at"`
	Similarity  float64   `json:"similarity"`
	URL         string    `json:"url"`
}

// Query describes a comparable-sales search across all configured sources.
type Query struct {
	Terms    string
	Category string
	MinPrice float64
	MaxPrice float64
	Limit    int
}

// PriceRange summarizes the sold prices of a comparable set.
type PriceRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// System defines the public contract for market data lookups.
type System interface {
	SearchComparables(ctx context.Context, q Query) ([]ComparableSale, error)
}

// CalculatePriceRange computes the min/max sold price over a comparable set.
// An empty set yields a zero range with Count 0.
func CalculatePriceRange(results []ComparableSale) PriceRange {
	if len(results) == 0 {
		return PriceRange{}
	}

	pr := PriceRange{
		Min:   results[0].SoldPrice,
		Max:   results[0].SoldPrice,
		Count: len(results),
	}

	for _, r := range results[1:] {
		if r.SoldPrice < pr.Min {
			pr.Min = r.SoldPrice
		}
		if r.SoldPrice > pr.Max {
			pr.Max = r.SoldPrice
		}
	}

	return pr
}
