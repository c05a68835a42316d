package workflow

import (
	"testing"

	"github.com/google/uuid"

	"github.com/curiolabs/curio/internal/knowledge"
)

func TestDeriveAuthRisk(t *testing.T) {
	tests := []struct {
		name string
		auth ItemAuthentication
		want AuthRisk
	}{
		{
			name: "likely fake is very high regardless of checks",
			auth: ItemAuthentication{Verdict: "likely_fake", Confidence: 0.9, PassedChecks: 5},
			want: RiskVeryHigh,
		},
		{
			name: "likely authentic with high confidence is low",
			auth: ItemAuthentication{Verdict: "likely_authentic", Confidence: 0.85, FailedChecks: 1},
			want: RiskLow,
		},
		{
			name: "likely authentic with low confidence falls through to failed checks",
			auth: ItemAuthentication{Verdict: "likely_authentic", Confidence: 0.7, FailedChecks: 1},
			want: RiskHigh,
		},
		{
			name: "failed checks is high",
			auth: ItemAuthentication{Verdict: "inconclusive", FailedChecks: 2, PassedChecks: 3},
			want: RiskHigh,
		},
		{
			name: "more inconclusive than passed is medium",
			auth: ItemAuthentication{Verdict: "inconclusive", InconclusiveChecks: 3, PassedChecks: 1},
			want: RiskMedium,
		},
		{
			name: "clean checklist is low",
			auth: ItemAuthentication{Verdict: "inconclusive", PassedChecks: 4, InconclusiveChecks: 1},
			want: RiskLow,
		},
		{
			name: "empty block is low",
			auth: ItemAuthentication{Verdict: "inconclusive"},
			want: RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveAuthRisk(tt.auth); got != tt.want {
				t.Errorf("deriveAuthRisk() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNormalizeTriage(t *testing.T) {
	t.Run("synonym domain maps deterministically", func(t *testing.T) {
		result := normalizeTriage(triageResponse{
			Category: "vintage",
			Domain:   "architecture",
			ItemType: "blueprint",
		})
		if result.Domain != knowledge.DomainArt {
			t.Errorf("expected art for architecture synonym, got %s", result.Domain)
		}
	})

	t.Run("invalid enums coerce to defaults", func(t *testing.T) {
		result := normalizeTriage(triageResponse{
			Category:    "unknown_value",
			Domain:      "nonsense",
			QualityTier: "amazing",
			ItemType:    "thing",
		})
		if result.Category != knowledge.CategoryVintage {
			t.Errorf("expected vintage default, got %s", result.Category)
		}
		if result.Domain != knowledge.DomainGeneral {
			t.Errorf("expected general default, got %s", result.Domain)
		}
		if result.QualityTier != knowledge.QualityMid {
			t.Errorf("expected mid default, got %s", result.QualityTier)
		}
	})

	t.Run("confidence clamps to unit interval", func(t *testing.T) {
		result := normalizeTriage(triageResponse{Confidence: 1.7, ItemType: "thing"})
		if result.Confidence != 1 {
			t.Errorf("expected clamp to 1, got %v", result.Confidence)
		}
	})

	t.Run("empty item type gets placeholder", func(t *testing.T) {
		result := normalizeTriage(triageResponse{})
		if result.ItemType == "" {
			t.Error("expected non-empty item type placeholder")
		}
	})
}

func TestNormalizeAnalysisDefaults(t *testing.T) {
	triage := TriageResult{
		Category:    knowledge.CategoryVintage,
		Domain:      knowledge.DomainCeramics,
		ItemType:    "art pottery vase",
		QualityTier: knowledge.QualityMid,
		Confidence:  0.8,
	}

	t.Run("empty response gets explicit defaults everywhere", func(t *testing.T) {
		result := normalizeAnalysis(rawAnalysis{}, triage, nil)

		if result.Name != triage.ItemType {
			t.Errorf("expected name fallback to item type, got %q", result.Name)
		}
		if result.Evidence == nil || result.VisualMarkers == nil || result.Alternatives == nil {
			t.Error("expected empty slices, not nil")
		}
		if result.Knowledge.Confirmed == nil || result.Knowledge.NeedsVerification == nil {
			t.Error("expected knowledge state slices, not nil")
		}
		if result.Authentication.Verdict != "inconclusive" {
			t.Errorf("expected inconclusive verdict default, got %q", result.Authentication.Verdict)
		}
		if result.Authentication.RiskLevel != RiskLow {
			t.Errorf("expected low risk for empty block, got %s", result.Authentication.RiskLevel)
		}
		if result.Flip != nil {
			t.Error("expected nil flip without asking price block")
		}
		if result.Confidence != triage.Confidence {
			t.Errorf("expected confidence fallback to triage, got %v", result.Confidence)
		}
	})

	t.Run("values pass through humanizer", func(t *testing.T) {
		vmin, vmax := 123.0, 1234.0
		result := normalizeAnalysis(rawAnalysis{
			EstimatedValueMin: &vmin,
			EstimatedValueMax: &vmax,
		}, triage, nil)

		if *result.EstimatedValueMin != 100 {
			t.Errorf("expected 123 humanized to 100, got %v", *result.EstimatedValueMin)
		}
		if *result.EstimatedValueMax != 1200 {
			t.Errorf("expected 1234 humanized to 1200, got %v", *result.EstimatedValueMax)
		}
	})

	t.Run("auth checks tally by status", func(t *testing.T) {
		result := normalizeAnalysis(rawAnalysis{
			Authentication: &rawAuthentication{
				Verdict: "Likely_Authentic",
				Checks: []rawAuthCheck{
					{Name: "a", Status: "pass"},
					{Name: "b", Status: "PASS"},
					{Name: "c", Status: "fail"},
					{Name: "d", Status: "unsure"},
				},
			},
		}, triage, nil)

		auth := result.Authentication
		if auth.PassedChecks != 2 || auth.FailedChecks != 1 || auth.InconclusiveChecks != 1 {
			t.Errorf("unexpected tally: %d/%d/%d",
				auth.PassedChecks, auth.FailedChecks, auth.InconclusiveChecks)
		}
		if auth.Verdict != "likely_authentic" {
			t.Errorf("expected lowered verdict, got %q", auth.Verdict)
		}
		if auth.RiskLevel != RiskHigh {
			t.Errorf("expected high risk with a failed check at low confidence, got %s", auth.RiskLevel)
		}
	})

	t.Run("markers resolve image index to id", func(t *testing.T) {
		images := []CapturedImage{
			{ID: uuid.New(), Role: RoleOverview},
			{ID: uuid.New(), Role: RoleMarks},
		}
		idx0, idx9 := 0, 9
		result := normalizeAnalysis(rawAnalysis{
			VisualMarkers: []rawVisualMarker{
				{ImageIndex: &idx0, Label: "mark"},
				{ImageIndex: &idx9, Label: "out of range"},
				{Label: "no index"},
			},
		}, triage, images)

		if len(result.VisualMarkers) != 1 {
			t.Fatalf("expected 1 valid marker, got %d", len(result.VisualMarkers))
		}
		if result.VisualMarkers[0].ImageID != images[0].ID {
			t.Error("marker not resolved to first image")
		}
	})
}
