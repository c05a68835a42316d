package workflow

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/curiolabs/curio/internal/knowledge"
	"github.com/curiolabs/curio/internal/learning"
	"github.com/curiolabs/curio/internal/market"
)

// scriptedVision returns canned responses in call order.
type scriptedVision struct {
	responses []string
	calls     int
}

func (v *scriptedVision) Complete(_ context.Context, _ string, _ []string, _ StageOptions) (string, error) {
	if v.calls >= len(v.responses) {
		return "", errors.New("no scripted response left")
	}
	resp := v.responses[v.calls]
	v.calls++
	return resp, nil
}

type stubMarket struct {
	results []market.ComparableSale
	err     error
	queries []market.Query
}

func (m *stubMarket) SearchComparables(_ context.Context, q market.Query) ([]market.ComparableSale, error) {
	m.queries = append(m.queries, q)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func comparables(prices ...float64) []market.ComparableSale {
	out := make([]market.ComparableSale, len(prices))
	for i, p := range prices {
		out[i] = market.ComparableSale{
			Title:       "comparable",
			Marketplace: "test",
			SoldPrice:   p,
			Similarity:  0.9,
		}
	}
	return out
}

const rosevilleTriage = `{
  "category": "vintage",
  "domain": "ceramics",
  "item_type": "art pottery vase",
  "era": "1930s",
  "quality_tier": "high",
  "confidence": 0.9,
  "reasoning": "embossed pinecone motif on matte glaze",
  "brand": "Roseville",
  "detected_text": ["Roseville", "USA", "112-7"]
}`

const rosevilleAnalysis = `{
  "name": "Roseville Pinecone Vase 112-7",
  "maker": "Roseville Pottery",
  "era": "1935-1940",
  "origin": "Zanesville, Ohio, USA",
  "description": "Matte glazed art pottery vase with embossed pinecone and needle motif",
  "history": "Pinecone was Roseville's best-selling line of the 1930s",
  "estimated_value_min": 180,
  "estimated_value_max": 420,
  "retail_value": 350,
  "knowledge": {
    "confirmed": ["Roseville shape 112-7"],
    "probable": ["blue colorway"],
    "needs_verification": ["base condition"],
    "completeness": 0.8
  },
  "confidence": 0.88,
  "identification_confidence": 0.9,
  "maker_confidence": 0.92,
  "evidence": ["raised Roseville USA mark", "shape number matches catalog"],
  "authentication": {
    "verdict": "likely_authentic",
    "confidence": 0.85,
    "checks": [{"name": "mark style", "status": "pass", "finding": "period-correct raised mark"}],
    "concerns": []
  }
}`

func testRuntime(vision VisionClient, mkt market.System) *Runtime {
	logger := slog.New(slog.DiscardHandler)
	return &Runtime{
		Vision:   vision,
		Market:   mkt,
		Learning: learning.New(learning.NewMemoryStore(), logger),
		Logger:   logger,
	}
}

func testImages() []CapturedImage {
	return []CapturedImage{
		{ID: uuid.New(), Role: RoleOverview, DataURI: "data:image/jpeg;base64,AA==", Label: "front"},
		{ID: uuid.New(), Role: RoleMarks, DataURI: "data:image/jpeg;base64,BB==", Label: "base mark"},
	}
}

func TestExecuteHappyPath(t *testing.T) {
	ctx := context.Background()
	vision := &scriptedVision{responses: []string{rosevilleTriage, rosevilleAnalysis}}
	mkt := &stubMarket{results: comparables(200, 250, 300, 380)}
	rt := testRuntime(vision, mkt)

	result, err := Execute(ctx, rt, Request{Images: testImages()})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if result.Triage.Category != knowledge.CategoryVintage {
		t.Errorf("expected vintage, got %s", result.Triage.Category)
	}
	if result.Triage.Domain != knowledge.DomainCeramics {
		t.Errorf("expected ceramics, got %s", result.Triage.Domain)
	}

	a := result.Analysis
	if a.Name != "Roseville Pinecone Vase 112-7" {
		t.Errorf("unexpected name %q", a.Name)
	}
	if a.Maker == nil {
		t.Fatal("expected non-null maker")
	}
	if a.EstimatedValueMin == nil || a.EstimatedValueMax == nil {
		t.Fatal("expected value range")
	}

	// Both bounds land in the <1000 tier: multiples of 50.
	for _, v := range []float64{*a.EstimatedValueMin, *a.EstimatedValueMax} {
		if v >= 1000 {
			t.Fatalf("bound %v left the expected tier", v)
		}
		if int(v)%50 != 0 {
			t.Errorf("bound %v is not a multiple of the tier unit", v)
		}
	}

	if a.Market == nil || !a.Market.Blended {
		t.Error("expected blended market data with 4 comparables")
	}

	// Query terms include maker and name; window bounds the AI estimate.
	if len(mkt.queries) != 1 {
		t.Fatalf("expected 1 market query, got %d", len(mkt.queries))
	}
	// The window bounds the humanized AI estimate (180→200, 420→400).
	q := mkt.queries[0]
	if q.MinPrice != 0.3*200 || q.MaxPrice != 3*400 {
		t.Errorf("unexpected price window [%v, %v]", q.MinPrice, q.MaxPrice)
	}
	if q.Limit != marketQueryLimit {
		t.Errorf("expected limit %d, got %d", marketQueryLimit, q.Limit)
	}
}

func TestExecuteMarketFailureIsFailSoft(t *testing.T) {
	ctx := context.Background()
	vision := &scriptedVision{responses: []string{rosevilleTriage, rosevilleAnalysis}}
	mkt := &stubMarket{err: errors.New("all sources down")}
	rt := testRuntime(vision, mkt)

	result, err := Execute(ctx, rt, Request{Images: testImages()})
	if err != nil {
		t.Fatalf("market failure must not propagate: %v", err)
	}

	a := result.Analysis
	if a.Market != nil {
		t.Error("expected no market data after lookup failure")
	}

	// AI-only estimates survive unchanged (180 and 420 already humanized:
	// both in the <1000 tier, multiples of 50: 200 and 400).
	if *a.EstimatedValueMin != 200 || *a.EstimatedValueMax != 400 {
		t.Errorf("AI-only range changed: [%v, %v]", *a.EstimatedValueMin, *a.EstimatedValueMax)
	}
}

func TestExecuteBlendSkippedBelowMinimum(t *testing.T) {
	ctx := context.Background()
	vision := &scriptedVision{responses: []string{rosevilleTriage, rosevilleAnalysis}}
	mkt := &stubMarket{results: comparables(200, 250)}
	rt := testRuntime(vision, mkt)

	result, err := Execute(ctx, rt, Request{Images: testImages()})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	a := result.Analysis
	if a.Market == nil {
		t.Fatal("expected comparables recorded even when not blending")
	}
	if a.Market.Blended {
		t.Error("expected no blend with fewer than 3 comparables")
	}
	if *a.EstimatedValueMin != 200 || *a.EstimatedValueMax != 400 {
		t.Errorf("unblended range changed: [%v, %v]", *a.EstimatedValueMin, *a.EstimatedValueMax)
	}
}

func TestExecuteBlendBoundedByMarketMax(t *testing.T) {
	ctx := context.Background()
	vision := &scriptedVision{responses: []string{rosevilleTriage, rosevilleAnalysis}}
	// Market prices far below the AI estimate force the clamp.
	mkt := &stubMarket{results: comparables(50, 60, 70)}
	rt := testRuntime(vision, mkt)

	result, err := Execute(ctx, rt, Request{Images: testImages()})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	a := result.Analysis
	if !a.Market.Blended {
		t.Fatal("expected blend with 3 comparables")
	}
	if marketMax := a.Market.PriceRange.Max; *a.EstimatedValueMax > blendMaxClamp*marketMax {
		t.Errorf("max %v exceeds %v × market max %v",
			*a.EstimatedValueMax, blendMaxClamp, marketMax)
	}
	if *a.EstimatedValueMin > *a.EstimatedValueMax {
		t.Errorf("inverted range [%v, %v]", *a.EstimatedValueMin, *a.EstimatedValueMax)
	}
}

func TestBlendEstimateUsesMarketMidpoint(t *testing.T) {
	aiMin, aiMax := 200.0, 400.0
	result := AnalysisResult{EstimatedValueMin: &aiMin, EstimatedValueMax: &aiMax}
	pr := market.PriceRange{Min: 100, Max: 300, Count: 4}

	blendEstimate(&result, pr)

	// Both bounds blend against the midpoint (200), not the raw range ends:
	// min 0.6*200 + 0.4*200 = 200, max 0.6*400 + 0.4*200 = 320,
	// humanized to the nearest 50 = 300. Blending against pr.Max instead
	// would land at 350.
	if *result.EstimatedValueMin != 200 {
		t.Errorf("min = %v, want 200", *result.EstimatedValueMin)
	}
	if *result.EstimatedValueMax != 300 {
		t.Errorf("max = %v, want 300", *result.EstimatedValueMax)
	}
}

func TestExecuteTriageSchemaFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	vision := &scriptedVision{responses: []string{
		`category: "unknown_value" this is not json at all {{{`,
		rosevilleAnalysis,
	}}
	rt := testRuntime(vision, &stubMarket{})

	result, err := Execute(ctx, rt, Request{Images: testImages()})
	if err != nil {
		t.Fatalf("triage schema failure must not propagate: %v", err)
	}

	if result.Triage.Confidence > fallbackConfidence {
		t.Errorf("expected fallback confidence <= %v, got %v",
			fallbackConfidence, result.Triage.Confidence)
	}
	if result.Triage.Category != knowledge.CategoryVintage || result.Triage.Domain != knowledge.DomainGeneral {
		t.Errorf("expected default category/domain, got %s/%s",
			result.Triage.Category, result.Triage.Domain)
	}
}

func TestExecuteProgressOrdering(t *testing.T) {
	ctx := context.Background()
	vision := &scriptedVision{responses: []string{rosevilleTriage, rosevilleAnalysis}}
	rt := testRuntime(vision, &stubMarket{})

	var events []ProgressEvent
	req := Request{
		Images:   testImages(),
		Progress: func(e ProgressEvent) { events = append(events, e) },
	}

	if _, err := Execute(ctx, rt, req); err != nil {
		t.Fatalf("execute: %v", err)
	}

	wantStages := []Stage{
		StageTriage, StageTriage,
		StageAnalysis, StageAnalysis,
		StageMarket, StageMarket,
		StageComplete,
	}
	if len(events) != len(wantStages) {
		t.Fatalf("expected %d events, got %d", len(wantStages), len(events))
	}

	last := -1
	for i, e := range events {
		if e.Stage != wantStages[i] {
			t.Errorf("event %d: expected stage %s, got %s", i, wantStages[i], e.Stage)
		}
		if e.Percent < last {
			t.Errorf("event %d: percent %d regressed below %d", i, e.Percent, last)
		}
		last = e.Percent
	}
	if events[len(events)-1].Percent != 100 {
		t.Errorf("final percent %d, want 100", events[len(events)-1].Percent)
	}
}

func TestExecuteRequiresImages(t *testing.T) {
	rt := testRuntime(&scriptedVision{}, &stubMarket{})
	if _, err := Execute(context.Background(), rt, Request{}); !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}
}
