package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/curiolabs/curio/internal/market"
	"github.com/curiolabs/curio/pkg/formatting"
)

// Market blend policy. The AI estimate dominates; comparables temper it.
const (
	blendAIWeight     = 0.6
	blendMarketWeight = 0.4
	blendMaxClamp     = 1.2
	blendMinResults   = 3

	marketQueryLimit    = 10
	marketWindowMinMult = 0.3
	marketWindowMaxMult = 3.0
)

// MarketNode returns a state node performing the comparable-sales
// enrichment pass. Market data is enrichment, not a dependency: any lookup
// failure is logged at warn level and absorbed, never propagated.
func MarketNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		as, err := extractAppraisalState(s)
		if err != nil {
			return s, fmt.Errorf("market: %w", err)
		}

		progress := extractProgress(s)
		emitProgress(progress, StageMarket, "started", percentMarketStart, "searching comparable sales")

		if rt.Market != nil {
			enrichWithMarket(ctx, rt, as)
		}

		emitProgress(progress, StageMarket, "complete", percentMarketComplete, "market pass complete")

		s = s.Set(KeyAppraisalState, *as)
		return s, nil
	})
}

func enrichWithMarket(ctx context.Context, rt *Runtime, as *AppraisalState) {
	query, ok := buildMarketQuery(as.Result)
	if !ok {
		return
	}

	comparables, err := rt.Market.SearchComparables(ctx, query)
	if err != nil {
		rt.Logger.WarnContext(
			ctx, "market lookup failed, proceeding with AI-only estimate",
			"error", err,
		)
		return
	}

	priceRange := market.CalculatePriceRange(comparables)
	data := &MarketData{
		Comparables: comparables,
		PriceRange:  priceRange,
	}

	if priceRange.Count >= blendMinResults {
		blendEstimate(&as.Result, priceRange)
		data.Blended = true
	}

	as.Result.Market = data

	rt.Logger.InfoContext(
		ctx, "market enrichment complete",
		"comparables", priceRange.Count,
		"blended", data.Blended,
	)
}

// buildMarketQuery derives search terms from maker and name, bounding the
// price window around the AI estimate. Without an estimate there is nothing
// to bound or blend, so the pass is skipped.
func buildMarketQuery(result AnalysisResult) (market.Query, bool) {
	if result.EstimatedValueMin == nil || result.EstimatedValueMax == nil {
		return market.Query{}, false
	}

	terms := result.Name
	if result.Maker != nil {
		terms = *result.Maker + " " + terms
	}
	terms = strings.TrimSpace(terms)
	if terms == "" {
		return market.Query{}, false
	}

	return market.Query{
		Terms:    terms,
		Category: string(result.Category),
		MinPrice: marketWindowMinMult * *result.EstimatedValueMin,
		MaxPrice: marketWindowMaxMult * *result.EstimatedValueMax,
		Limit:    marketQueryLimit,
	}, true
}

// blendEstimate mixes each AI bound with the market midpoint at fixed
// weights, clamping the blended maximum so the estimate never runs far past
// observed sales.
func blendEstimate(result *AnalysisResult, pr market.PriceRange) {
	midpoint := (pr.Min + pr.Max) / 2

	blendedMin := blendAIWeight**result.EstimatedValueMin + blendMarketWeight*midpoint
	blendedMax := blendAIWeight**result.EstimatedValueMax + blendMarketWeight*midpoint

	ceiling := blendMaxClamp * pr.Max
	if blendedMax > ceiling {
		blendedMax = ceiling
	}
	if blendedMin > blendedMax {
		blendedMin = blendedMax
	}

	blendedMin = formatting.HumanizePrice(blendedMin)
	blendedMax = formatting.HumanizePrice(blendedMax)

	// Rounding to the tier granularity can push the max back over the
	// ceiling; the bound wins over round-number aesthetics.
	if blendedMax > ceiling {
		blendedMax = ceiling
	}
	if blendedMin > blendedMax {
		blendedMin = blendedMax
	}

	result.EstimatedValueMin = &blendedMin
	result.EstimatedValueMax = &blendedMax
}
