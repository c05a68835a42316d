package learning

import (
	"context"
	"log/slog"
	"slices"
	"testing"
	"time"
)

func testService(t *testing.T) (*service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	sys := New(store, slog.New(slog.DiscardHandler))
	return sys.(*service), store
}

func ptr(v float64) *float64 { return &v }

func prediction() Prediction {
	return Prediction{
		Name:         "Pinecone Vase",
		Maker:        "Roseville",
		Category:     "antique",
		Era:          "1930s",
		EstimatedMin: ptr(200),
		EstimatedMax: ptr(400),
	}
}

func TestRecordUserCorrection(t *testing.T) {
	ctx := context.Background()
	svc, store := testService(t)

	cmd := CorrectionCommand{
		Prediction: prediction(),
		Field:      "Maker",
		Corrected:  "Weller",
	}
	if err := svc.RecordUserCorrection(ctx, cmd); err != nil {
		t.Fatalf("record user correction: %v", err)
	}

	entries, _ := store.Feedback(ctx)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Source != SourceUser {
		t.Errorf("expected user source, got %s", e.Source)
	}
	if e.Confidence != ConfidenceUser {
		t.Errorf("expected confidence %v, got %v", ConfidenceUser, e.Confidence)
	}
	if e.Field != "maker" {
		t.Errorf("expected normalized field maker, got %q", e.Field)
	}
	if e.Original != "Roseville" {
		t.Errorf("expected original from prediction, got %q", e.Original)
	}

	t.Run("missing field rejected", func(t *testing.T) {
		err := svc.RecordUserCorrection(ctx, CorrectionCommand{Prediction: prediction()})
		if err != ErrInvalidField {
			t.Errorf("expected ErrInvalidField, got %v", err)
		}
	})
}

func TestRecordExpertCorrectionSynthesizesInsight(t *testing.T) {
	ctx := context.Background()
	svc, store := testService(t)

	cmd := CorrectionCommand{
		Prediction: prediction(),
		Field:      "maker",
		Corrected:  "Weller",
		VerifiedBy: "appraiser-7",
	}
	if err := svc.RecordExpertCorrection(ctx, cmd); err != nil {
		t.Fatalf("record expert correction: %v", err)
	}

	insights, _ := store.Insights(ctx)
	if len(insights) != 1 {
		t.Fatalf("expected immediate insight, got %d", len(insights))
	}
	if insights[0].Type != InsightPattern {
		t.Errorf("expected pattern insight, got %s", insights[0].Type)
	}

	// Repeating the same correction merges rather than duplicating.
	if err := svc.RecordExpertCorrection(ctx, cmd); err != nil {
		t.Fatalf("second expert correction: %v", err)
	}

	insights, _ = store.Insights(ctx)
	if len(insights) != 1 {
		t.Fatalf("expected merged insight, got %d", len(insights))
	}
	if insights[0].Frequency != 2 {
		t.Errorf("expected frequency 2 after merge, got %d", insights[0].Frequency)
	}
	if len(insights[0].Evidence) != 1 {
		t.Errorf("expected single evidence line after duplicate merge, got %v", insights[0].Evidence)
	}

	// A different verifier contributes a new evidence line to the same insight.
	cmd.VerifiedBy = "appraiser-9"
	if err := svc.RecordExpertCorrection(ctx, cmd); err != nil {
		t.Fatalf("third expert correction: %v", err)
	}

	insights, _ = store.Insights(ctx)
	if len(insights) != 1 {
		t.Fatalf("expected merged insight, got %d", len(insights))
	}
	want := []string{"corrected by appraiser-7", "corrected by appraiser-9"}
	if !slices.Equal(insights[0].Evidence, want) {
		t.Errorf("expected evidence %v, got %v", want, insights[0].Evidence)
	}
}

func TestRecordSaleOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("deviation above threshold recorded", func(t *testing.T) {
		svc, store := testService(t)

		// midpoint 300, sold 450: 50% deviation
		err := svc.RecordSaleOutcome(ctx, SaleOutcomeCommand{
			Prediction:  prediction(),
			SoldPrice:   450,
			Marketplace: "ebay",
		})
		if err != nil {
			t.Fatalf("record sale outcome: %v", err)
		}

		entries, _ := store.Feedback(ctx)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Source != SourceAuction {
			t.Errorf("expected auction source, got %s", entries[0].Source)
		}
		if entries[0].Confidence != ConfidenceAuction {
			t.Errorf("expected confidence %v, got %v", ConfidenceAuction, entries[0].Confidence)
		}
		if entries[0].NumericValue == nil || *entries[0].NumericValue != 450 {
			t.Errorf("expected numeric value 450, got %v", entries[0].NumericValue)
		}
	})

	t.Run("deviation within threshold skipped", func(t *testing.T) {
		svc, store := testService(t)

		// midpoint 300, sold 330: 10% deviation
		err := svc.RecordSaleOutcome(ctx, SaleOutcomeCommand{
			Prediction: prediction(),
			SoldPrice:  330,
		})
		if err != nil {
			t.Fatalf("record sale outcome: %v", err)
		}

		if entries, _ := store.Feedback(ctx); len(entries) != 0 {
			t.Errorf("expected no entries within threshold, got %d", len(entries))
		}
	})

	t.Run("no predicted range skipped", func(t *testing.T) {
		svc, store := testService(t)

		err := svc.RecordSaleOutcome(ctx, SaleOutcomeCommand{
			Prediction: Prediction{Category: "antique"},
			SoldPrice:  450,
		})
		if err != nil {
			t.Fatalf("record sale outcome: %v", err)
		}

		if entries, _ := store.Feedback(ctx); len(entries) != 0 {
			t.Errorf("expected no entries without range, got %d", len(entries))
		}
	})
}

func TestRecordGroundTruth(t *testing.T) {
	ctx := context.Background()

	t.Run("low-scored field recorded", func(t *testing.T) {
		svc, store := testService(t)

		err := svc.RecordGroundTruth(ctx, GroundTruthCommand{
			Prediction: prediction(),
			Field:      "era",
			Corrected:  "1940s",
			FieldScore: 0.4,
		})
		if err != nil {
			t.Fatalf("record ground truth: %v", err)
		}

		entries, _ := store.Feedback(ctx)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Confidence != ConfidenceGroundTruth {
			t.Errorf("expected confidence %v, got %v", ConfidenceGroundTruth, entries[0].Confidence)
		}
	})

	t.Run("high-scored field skipped", func(t *testing.T) {
		svc, store := testService(t)

		err := svc.RecordGroundTruth(ctx, GroundTruthCommand{
			Prediction: prediction(),
			Field:      "era",
			Corrected:  "1930s",
			FieldScore: 0.9,
		})
		if err != nil {
			t.Fatalf("record ground truth: %v", err)
		}

		if entries, _ := store.Feedback(ctx); len(entries) != 0 {
			t.Errorf("expected no entries above score ceiling, got %d", len(entries))
		}
	})
}

func TestAnalysisThreshold(t *testing.T) {
	ctx := context.Background()
	svc, store := testService(t)

	cmd := CorrectionCommand{
		Prediction: prediction(),
		Field:      "maker",
		Corrected:  "Weller",
	}

	// Below the minimum there is no derivation despite a clear pattern.
	for range AnalysisMinFeedback - 1 {
		if err := svc.RecordUserCorrection(ctx, cmd); err != nil {
			t.Fatalf("record correction: %v", err)
		}
	}
	if insights, _ := store.Insights(ctx); len(insights) != 0 {
		t.Fatalf("expected no insights below threshold, got %d", len(insights))
	}

	if err := svc.RecordUserCorrection(ctx, cmd); err != nil {
		t.Fatalf("record correction: %v", err)
	}

	insights, _ := store.Insights(ctx)
	if len(insights) == 0 {
		t.Fatal("expected insights once threshold reached")
	}
	if in := findInsight(t, insights, InsightConfusion); in == nil {
		t.Error("expected a confusion insight for the repeated pairing")
	}
}

func TestAdjustmentLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := testService(t)

	adj, err := svc.CreateAdjustment(ctx, AdjustmentCommand{
		Name:       "vintage value caution",
		Condition:  "vintage",
		Adjustment: "be conservative with vintage value estimates",
	})
	if err != nil {
		t.Fatalf("create adjustment: %v", err)
	}
	if adj.Effectiveness != EffectivenessInitial {
		t.Errorf("expected initial effectiveness %v, got %v", EffectivenessInitial, adj.Effectiveness)
	}
	if !adj.Active {
		t.Error("expected new adjustment active")
	}

	t.Run("delta clamps to bounds", func(t *testing.T) {
		updated, err := svc.UpdateAdjustmentEffectiveness(ctx, adj.ID, 2.0)
		if err != nil {
			t.Fatalf("update effectiveness: %v", err)
		}
		if updated.Effectiveness != 1.0 {
			t.Errorf("expected clamp to 1.0, got %v", updated.Effectiveness)
		}
	})

	t.Run("drop below floor deactivates permanently", func(t *testing.T) {
		updated, err := svc.UpdateAdjustmentEffectiveness(ctx, adj.ID, -0.9)
		if err != nil {
			t.Fatalf("update effectiveness: %v", err)
		}
		if updated.Active {
			t.Error("expected deactivation below floor")
		}

		// No reactivation path: further updates are rejected.
		if _, err := svc.UpdateAdjustmentEffectiveness(ctx, adj.ID, 0.5); err != ErrAdjustmentInactive {
			t.Errorf("expected ErrAdjustmentInactive, got %v", err)
		}
	})
}

func TestPromptEnhancements(t *testing.T) {
	ctx := context.Background()
	svc, store := testService(t)

	if _, err := svc.CreateAdjustment(ctx, AdjustmentCommand{
		Name:       "antique maker caution",
		Condition:  "antique",
		Adjustment: "verify maker marks against known reproductions",
	}); err != nil {
		t.Fatalf("create adjustment: %v", err)
	}
	if _, err := svc.CreateAdjustment(ctx, AdjustmentCommand{
		Name:       "general rule",
		Adjustment: "always state uncertainty explicitly",
	}); err != nil {
		t.Fatalf("create adjustment: %v", err)
	}

	now := time.Now()
	seed := []Insight{
		{
			Type:            InsightConfusion,
			Description:     `maker confusion: "roseville" corrected to "weller"`,
			Severity:        SeverityMedium,
			SuggestedAction: `when evidence suggests "roseville", verify it is not actually "weller"`,
			Frequency:       1,
			LastSeen:        now,
		},
		{
			Type:            InsightGap,
			Description:     `recurring maker corrections in category "vintage"`,
			Severity:        SeverityHigh,
			SuggestedAction: "be more thorough when analyzing vintage items",
			Frequency:       1,
			LastSeen:        now,
		},
		{
			Type:            InsightGap,
			Description:     `recurring era corrections in category "antique"`,
			Severity:        SeverityLow,
			SuggestedAction: "low severity should not surface",
			Frequency:       1,
			LastSeen:        now,
		},
	}
	for _, in := range seed {
		if err := store.MergeInsight(ctx, in); err != nil {
			t.Fatalf("seed insight: %v", err)
		}
	}

	enhancements, err := svc.PromptEnhancements(ctx, "antique")
	if err != nil {
		t.Fatalf("prompt enhancements: %v", err)
	}

	want := map[string]bool{
		"verify maker marks against known reproductions":                    true,
		"always state uncertainty explicitly":                               true,
		`when evidence suggests "roseville", verify it is not actually "weller"`: true,
	}
	got := make(map[string]bool, len(enhancements))
	for _, e := range enhancements {
		got[e] = true
	}

	for text := range want {
		if !got[text] {
			t.Errorf("missing enhancement %q", text)
		}
	}
	if got["be more thorough when analyzing vintage items"] {
		t.Error("gap insight for another category should not surface")
	}
	if got["low severity should not surface"] {
		t.Error("low-severity insight should not surface")
	}
}

func TestConfusionWarnings(t *testing.T) {
	ctx := context.Background()
	svc, store := testService(t)

	for range 3 {
		if err := store.AppendFeedback(ctx, feedbackCorrection("maker", "Roseville", "Weller", "antique")); err != nil {
			t.Fatalf("seed feedback: %v", err)
		}
	}

	warnings, err := svc.ConfusionWarnings(ctx, []string{"Roseville Pottery", "McCoy"})
	if err != nil {
		t.Fatalf("confusion warnings: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}

	if warnings2, _ := svc.ConfusionWarnings(ctx, nil); warnings2 != nil {
		t.Errorf("expected nil warnings for no terms, got %v", warnings2)
	}
}
