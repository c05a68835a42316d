package learning

import (
	"strings"
	"testing"
	"time"
)

func feedbackValue(predictedMin, predictedMax, actual float64) FeedbackEntry {
	return FeedbackEntry{
		Source:       SourceAuction,
		Field:        "value",
		Confidence:   ConfidenceAuction,
		PredictedMin: &predictedMin,
		PredictedMax: &predictedMax,
		NumericValue: &actual,
	}
}

func feedbackCorrection(field, original, corrected, category string) FeedbackEntry {
	return FeedbackEntry{
		Source:     SourceUser,
		Field:      field,
		Original:   original,
		Corrected:  corrected,
		Category:   category,
		Confidence: ConfidenceUser,
	}
}

func findInsight(t *testing.T, insights []Insight, typ InsightType) *Insight {
	t.Helper()
	for i := range insights {
		if insights[i].Type == typ {
			return &insights[i]
		}
	}
	return nil
}

func TestDetectValueBias(t *testing.T) {
	now := time.Now()

	t.Run("systematic under-estimation", func(t *testing.T) {
		var entries []FeedbackEntry
		for range 5 {
			// midpoint 150, actual 225: +50% bias
			entries = append(entries, feedbackValue(100, 200, 225))
		}

		insights := detectValueBias(entries, now)
		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}

		in := insights[0]
		if in.Type != InsightCalibration {
			t.Errorf("expected calibration, got %s", in.Type)
		}
		if !strings.Contains(in.Description, "under-estimation") {
			t.Errorf("expected under-estimation, got %q", in.Description)
		}
		if in.Severity != SeverityHigh {
			t.Errorf("expected high severity for 50%% bias, got %s", in.Severity)
		}
		if len(in.Evidence) != 5 {
			t.Errorf("expected 5 evidence lines, got %d", len(in.Evidence))
		}
	})

	t.Run("over-estimation direction", func(t *testing.T) {
		var entries []FeedbackEntry
		for range 5 {
			// midpoint 150, actual 120: -20% bias
			entries = append(entries, feedbackValue(100, 200, 120))
		}

		insights := detectValueBias(entries, now)
		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}
		if !strings.Contains(insights[0].Description, "over-estimation") {
			t.Errorf("expected over-estimation, got %q", insights[0].Description)
		}
		if insights[0].Severity != SeverityMedium {
			t.Errorf("expected medium severity for 20%% bias, got %s", insights[0].Severity)
		}
	})

	t.Run("below minimum entries", func(t *testing.T) {
		entries := []FeedbackEntry{
			feedbackValue(100, 200, 300),
			feedbackValue(100, 200, 300),
		}
		if insights := detectValueBias(entries, now); len(insights) != 0 {
			t.Errorf("expected no insights below minimum, got %d", len(insights))
		}
	})

	t.Run("bias within threshold", func(t *testing.T) {
		var entries []FeedbackEntry
		for range 5 {
			// midpoint 150, actual 160: ~7% bias
			entries = append(entries, feedbackValue(100, 200, 160))
		}
		if insights := detectValueBias(entries, now); len(insights) != 0 {
			t.Errorf("expected no insights within threshold, got %d", len(insights))
		}
	})
}

func TestDetectConfusions(t *testing.T) {
	now := time.Now()

	t.Run("recurring pairing", func(t *testing.T) {
		entries := []FeedbackEntry{
			feedbackCorrection("maker", "Roseville", "Weller", "antique"),
			feedbackCorrection("maker", "roseville", "weller", "antique"),
			feedbackCorrection("maker", "McCoy", "Hull", "antique"),
		}

		insights := detectConfusions("maker", entries, now)
		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}

		in := insights[0]
		if in.Type != InsightConfusion {
			t.Errorf("expected confusion, got %s", in.Type)
		}
		if !strings.Contains(in.Description, `"roseville" corrected to "weller"`) {
			t.Errorf("unexpected description %q", in.Description)
		}
	})

	t.Run("below field minimum", func(t *testing.T) {
		entries := []FeedbackEntry{
			feedbackCorrection("maker", "Roseville", "Weller", "antique"),
			feedbackCorrection("maker", "Roseville", "Weller", "antique"),
		}
		if insights := detectConfusions("maker", entries, now); len(insights) != 0 {
			t.Errorf("expected no insights below field minimum, got %d", len(insights))
		}
	})

	t.Run("one-off corrections ignored", func(t *testing.T) {
		entries := []FeedbackEntry{
			feedbackCorrection("era", "1920s", "1930s", "antique"),
			feedbackCorrection("era", "1890s", "1900s", "antique"),
			feedbackCorrection("era", "1950s", "1960s", "vintage"),
		}
		if insights := detectConfusions("era", entries, now); len(insights) != 0 {
			t.Errorf("expected no insights for one-off pairings, got %d", len(insights))
		}
	})

	t.Run("severity scales with count", func(t *testing.T) {
		var entries []FeedbackEntry
		for range 5 {
			entries = append(entries, feedbackCorrection("style", "art deco", "art nouveau", "antique"))
		}

		insights := detectConfusions("style", entries, now)
		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}
		if insights[0].Severity != SeverityHigh {
			t.Errorf("expected high severity at 5 occurrences, got %s", insights[0].Severity)
		}
	})
}

func TestDetectCategoryGaps(t *testing.T) {
	now := time.Now()

	entries := []FeedbackEntry{
		feedbackCorrection("maker", "a", "b", "vintage"),
		feedbackCorrection("maker", "c", "d", "vintage"),
		feedbackCorrection("maker", "e", "f", "vintage"),
		feedbackCorrection("maker", "g", "h", "antique"),
	}

	insights := detectCategoryGaps("maker", entries, now)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}

	in := insights[0]
	if in.Type != InsightGap {
		t.Errorf("expected gap, got %s", in.Type)
	}
	if !strings.Contains(in.Description, `category "vintage"`) {
		t.Errorf("unexpected description %q", in.Description)
	}
	if in.Severity != SeverityLow {
		t.Errorf("expected low severity at 3 corrections, got %s", in.Severity)
	}
}

func TestDeriveInsightsStableDescriptions(t *testing.T) {
	now := time.Now()

	entries := []FeedbackEntry{
		feedbackCorrection("maker", "Roseville", "Weller", "antique"),
		feedbackCorrection("maker", "Roseville", "Weller", "antique"),
		feedbackCorrection("maker", "Roseville", "Weller", "antique"),
	}

	first := deriveInsights(entries, now)
	second := deriveInsights(entries, now.Add(time.Hour))

	if len(first) != len(second) {
		t.Fatalf("derivation count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Description != second[i].Description || first[i].Type != second[i].Type {
			t.Errorf("descriptions not stable across runs: %q vs %q",
				first[i].Description, second[i].Description)
		}
	}
}
