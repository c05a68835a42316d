package workflow

import (
	"strings"

	"github.com/curiolabs/curio/pkg/formatting"
)

// rawAnalysis mirrors the untrusted JSON shape the model produces. Every
// field is optional at the wire level; normalizeAnalysis supplies the
// defaults in one place rather than scattering per-field coercion.
type rawAnalysis struct {
	Name        *string  `json:"name"`
	Maker       *string  `json:"maker"`
	Model       *string  `json:"model"`
	Brand       *string  `json:"brand"`
	Era         *string  `json:"era"`
	Origin      *string  `json:"origin"`
	Description *string  `json:"description"`
	History     *string  `json:"history"`

	EstimatedValueMin *float64 `json:"estimated_value_min"`
	EstimatedValueMax *float64 `json:"estimated_value_max"`
	RetailValue       *float64 `json:"retail_value"`

	Knowledge *rawKnowledgeState `json:"knowledge"`

	Confidence               *float64 `json:"confidence"`
	IdentificationConfidence *float64 `json:"identification_confidence"`
	MakerConfidence          *float64 `json:"maker_confidence"`

	Evidence          []string          `json:"evidence"`
	VisualMarkers     []rawVisualMarker `json:"visual_markers"`
	Alternatives      []rawAlternative  `json:"alternatives"`
	VerificationTips  []string          `json:"verification_tips"`
	RedFlags          []string          `json:"red_flags"`
	SuggestedCaptures []string          `json:"suggested_captures"`

	Authentication *rawAuthentication `json:"authentication"`
	Flip           *rawFlip           `json:"flip"`
}

type rawKnowledgeState struct {
	Confirmed         []string `json:"confirmed"`
	Probable          []string `json:"probable"`
	NeedsVerification []string `json:"needs_verification"`
	Completeness      *float64 `json:"completeness"`
}

type rawVisualMarker struct {
	ImageIndex  *int    `json:"image_index"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

type rawAlternative struct {
	Name       string   `json:"name"`
	Maker      *string  `json:"maker"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

type rawAuthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Finding string `json:"finding"`
}

type rawAuthentication struct {
	Verdict    string         `json:"verdict"`
	Confidence *float64       `json:"confidence"`
	Checks     []rawAuthCheck `json:"checks"`
	Concerns   []string       `json:"concerns"`
}

type rawFlip struct {
	DealRating      string   `json:"deal_rating"`
	ProfitPotential *float64 `json:"profit_potential"`
	ResaleVenues    []string `json:"resale_venues"`
	Notes           string   `json:"notes"`
}

// normalizeAnalysis converts the untrusted parsed response into an
// AnalysisResult with an explicit default for every field. Surfaced
// valuation figures pass through the price humanizer.
func normalizeAnalysis(raw rawAnalysis, triage TriageResult, images []CapturedImage) AnalysisResult {
	result := AnalysisResult{
		Name:        stringOr(raw.Name, triage.ItemType),
		Maker:       emptyToNil(raw.Maker),
		Model:       emptyToNil(raw.Model),
		Brand:       emptyToNil(raw.Brand),
		Category:    triage.Category,
		Domain:      triage.Domain,
		ItemType:    triage.ItemType,
		QualityTier: triage.QualityTier,
		Era:         coalesce(emptyToNil(raw.Era), triage.Era),
		Origin:      emptyToNil(raw.Origin),
		Description: stringOr(raw.Description, ""),
		History:     stringOr(raw.History, ""),

		EstimatedValueMin: formatting.HumanizePricePtr(raw.EstimatedValueMin),
		EstimatedValueMax: formatting.HumanizePricePtr(raw.EstimatedValueMax),
		RetailValue:       formatting.HumanizePricePtr(raw.RetailValue),

		Knowledge: normalizeKnowledge(raw.Knowledge),

		Confidence:               clamp01(floatOr(raw.Confidence, triage.Confidence)),
		IdentificationConfidence: clamp01(floatOr(raw.IdentificationConfidence, 0)),
		MakerConfidence:          clamp01(floatOr(raw.MakerConfidence, 0)),

		Evidence:          sliceOr(raw.Evidence),
		VisualMarkers:     normalizeMarkers(raw.VisualMarkers, images),
		Alternatives:      normalizeAlternatives(raw.Alternatives),
		VerificationTips:  sliceOr(raw.VerificationTips),
		RedFlags:          sliceOr(raw.RedFlags),
		SuggestedCaptures: sliceOr(raw.SuggestedCaptures),

		Authentication: normalizeAuthentication(raw.Authentication),
		Flip:           normalizeFlip(raw.Flip),
	}

	return result
}

func normalizeKnowledge(raw *rawKnowledgeState) KnowledgeState {
	if raw == nil {
		return KnowledgeState{
			Confirmed:         []string{},
			Probable:          []string{},
			NeedsVerification: []string{},
		}
	}

	return KnowledgeState{
		Confirmed:         sliceOr(raw.Confirmed),
		Probable:          sliceOr(raw.Probable),
		NeedsVerification: sliceOr(raw.NeedsVerification),
		Completeness:      clamp01(floatOr(raw.Completeness, 0)),
	}
}

// normalizeMarkers resolves model-reported image indexes to image IDs.
// Markers referencing an out-of-range index are dropped rather than
// attributed to the wrong photo.
func normalizeMarkers(raw []rawVisualMarker, images []CapturedImage) []VisualMarker {
	markers := []VisualMarker{}
	for _, m := range raw {
		if m.ImageIndex == nil || *m.ImageIndex < 0 || *m.ImageIndex >= len(images) {
			continue
		}
		markers = append(markers, VisualMarker{
			ImageID:     images[*m.ImageIndex].ID,
			Label:       m.Label,
			Description: m.Description,
			X:           m.X,
			Y:           m.Y,
			Width:       m.Width,
			Height:      m.Height,
		})
	}
	return markers
}

func normalizeAlternatives(raw []rawAlternative) []Alternative {
	alts := []Alternative{}
	for _, a := range raw {
		if strings.TrimSpace(a.Name) == "" {
			continue
		}
		alts = append(alts, Alternative{
			Name:       a.Name,
			Maker:      emptyToNil(a.Maker),
			Confidence: clamp01(floatOr(a.Confidence, 0)),
			Reasoning:  a.Reasoning,
		})
	}
	return alts
}

func normalizeAuthentication(raw *rawAuthentication) ItemAuthentication {
	auth := ItemAuthentication{
		Verdict:  "inconclusive",
		Checks:   []AuthCheckResult{},
		Concerns: []string{},
	}

	if raw != nil {
		if raw.Verdict != "" {
			auth.Verdict = strings.ToLower(strings.TrimSpace(raw.Verdict))
		}
		auth.Confidence = clamp01(floatOr(raw.Confidence, 0))
		auth.Concerns = sliceOr(raw.Concerns)

		for _, c := range raw.Checks {
			status := strings.ToLower(strings.TrimSpace(c.Status))
			switch status {
			case "pass":
				auth.PassedChecks++
			case "fail":
				auth.FailedChecks++
			default:
				status = "inconclusive"
				auth.InconclusiveChecks++
			}
			auth.Checks = append(auth.Checks, AuthCheckResult{
				Name:    c.Name,
				Status:  status,
				Finding: c.Finding,
			})
		}
	}

	auth.RiskLevel = deriveAuthRisk(auth)
	return auth
}

// deriveAuthRisk maps the structured authentication block to a risk level.
// Rules are evaluated in order; first match wins.
func deriveAuthRisk(auth ItemAuthentication) AuthRisk {
	switch {
	case auth.Verdict == "likely_fake":
		return RiskVeryHigh
	case auth.Verdict == "likely_authentic" && auth.Confidence > 0.8:
		return RiskLow
	case auth.FailedChecks > 0:
		return RiskHigh
	case auth.InconclusiveChecks > auth.PassedChecks:
		return RiskMedium
	default:
		return RiskLow
	}
}

func normalizeFlip(raw *rawFlip) *FlipAssessment {
	if raw == nil {
		return nil
	}

	rating := strings.ToLower(strings.TrimSpace(raw.DealRating))
	if rating == "" {
		rating = "unknown"
	}

	return &FlipAssessment{
		DealRating:      rating,
		ProfitPotential: formatting.HumanizePricePtr(raw.ProfitPotential),
		ResaleVenues:    sliceOr(raw.ResaleVenues),
		Notes:           raw.Notes,
	}
}

func stringOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}

func emptyToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

func coalesce(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func sliceOr(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
