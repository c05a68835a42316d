package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/curiolabs/curio/internal/knowledge"
	"github.com/curiolabs/curio/internal/market"
)

// ImageRole tags the semantic purpose of one captured photo.
type ImageRole string

// Valid image roles.
const (
	RoleOverview   ImageRole = "overview"
	RoleDetail     ImageRole = "detail"
	RoleMarks      ImageRole = "marks"
	RoleUnderside  ImageRole = "underside"
	RoleDamage     ImageRole = "damage"
	RoleContext    ImageRole = "context"
	RoleAdditional ImageRole = "additional"
)

var imageRoles = map[ImageRole]bool{
	RoleOverview:   true,
	RoleDetail:     true,
	RoleMarks:      true,
	RoleUnderside:  true,
	RoleDamage:     true,
	RoleContext:    true,
	RoleAdditional: true,
}

// ValidRole reports whether r is a recognized image role.
func ValidRole(r ImageRole) bool {
	return imageRoles[r]
}

// CapturedImage is one photo submitted for appraisal: a semantic role, a
// data-URI encoded payload, and a display label. Immutable once created.
type CapturedImage struct {
	ID      uuid.UUID `json:"id"`
	Role    ImageRole `json:"role"`
	DataURI string    `json:"data_uri"`
	Label   string    `json:"label"`
}

// Request is the orchestrator entry point payload: role-tagged images plus
// an optional asking price in minor currency units.
type Request struct {
	Images      []CapturedImage
	AskingPrice *int
	Progress    ProgressFunc
}

// TriageResult is the first-pass classification that steers deep analysis.
// Produced once per appraisal; immutable; consumed by the analyze stage only.
type TriageResult struct {
	Category     knowledge.Category    `json:"category"`
	Domain       knowledge.Domain      `json:"domain"`
	ItemType     string                `json:"item_type"`
	Era          *string               `json:"era"`
	QualityTier  knowledge.QualityTier `json:"quality_tier"`
	Confidence   float64               `json:"confidence"`
	Reasoning    string                `json:"reasoning"`
	Brand        *string               `json:"brand"`
	DetectedText []string              `json:"detected_text"`
}

// KnowledgeState expresses epistemic honesty about an identification: what
// is confirmed, what is probable, and what still needs verification.
type KnowledgeState struct {
	Confirmed         []string `json:"confirmed"`
	Probable          []string `json:"probable"`
	NeedsVerification []string `json:"needs_verification"`
	Completeness      float64  `json:"completeness"`
}

// VisualMarker anchors a finding to a region of a specific image.
type VisualMarker struct {
	ImageID     uuid.UUID `json:"image_id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
}

// AuthRisk grades the likelihood an item is not what it appears to be.
type AuthRisk string

// Valid authentication risk levels.
const (
	RiskLow      AuthRisk = "low"
	RiskMedium   AuthRisk = "medium"
	RiskHigh     AuthRisk = "high"
	RiskVeryHigh AuthRisk = "very_high"
)

// AuthCheckResult is one authentication checkpoint outcome.
type AuthCheckResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Finding string `json:"finding"`
}

// ItemAuthentication is the structured authenticity assessment.
type ItemAuthentication struct {
	Verdict            string            `json:"verdict"`
	Confidence         float64           `json:"confidence"`
	Checks             []AuthCheckResult `json:"checks"`
	PassedChecks       int               `json:"passed_checks"`
	FailedChecks       int               `json:"failed_checks"`
	InconclusiveChecks int               `json:"inconclusive_checks"`
	RiskLevel          AuthRisk          `json:"risk_level"`
	Concerns           []string          `json:"concerns"`
}

// Alternative is a candidate identification the item could plausibly be
// instead of the primary identification.
type Alternative struct {
	Name       string  `json:"name"`
	Maker      *string `json:"maker"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// FlipAssessment estimates resale potential for an item bought at the
// asking price.
type FlipAssessment struct {
	DealRating      string   `json:"deal_rating"`
	ProfitPotential *float64 `json:"profit_potential"`
	ResaleVenues    []string `json:"resale_venues"`
	Notes           string   `json:"notes"`
}

// MarketData summarizes the comparable-sales enrichment applied to a result.
type MarketData struct {
	Comparables []market.ComparableSale `json:"comparables"`
	PriceRange  market.PriceRange       `json:"price_range"`
	Blended     bool                    `json:"blended"`
}

// AnalysisResult is the full appraisal output. Every optional field carries
// an explicit default after normalization; no field is ever absent.
type AnalysisResult struct {
	Name        string                `json:"name"`
	Maker       *string               `json:"maker"`
	Model       *string               `json:"model"`
	Brand       *string               `json:"brand"`
	Category    knowledge.Category    `json:"category"`
	Domain      knowledge.Domain      `json:"domain"`
	ItemType    string                `json:"item_type"`
	QualityTier knowledge.QualityTier `json:"quality_tier"`
	Era         *string               `json:"era"`
	Origin      *string               `json:"origin"`
	Description string                `json:"description"`
	History     string                `json:"history"`

	EstimatedValueMin *float64 `json:"estimated_value_min"`
	EstimatedValueMax *float64 `json:"estimated_value_max"`
	RetailValue       *float64 `json:"retail_value"`

	Knowledge KnowledgeState `json:"knowledge"`

	Confidence               float64 `json:"confidence"`
	IdentificationConfidence float64 `json:"identification_confidence"`
	MakerConfidence          float64 `json:"maker_confidence"`

	Evidence          []string       `json:"evidence"`
	VisualMarkers     []VisualMarker `json:"visual_markers"`
	Alternatives      []Alternative  `json:"alternatives"`
	VerificationTips  []string       `json:"verification_tips"`
	RedFlags          []string       `json:"red_flags"`
	SuggestedCaptures []string       `json:"suggested_captures"`

	Authentication ItemAuthentication `json:"authentication"`
	Flip           *FlipAssessment    `json:"flip"`
	Market         *MarketData        `json:"market"`
}

// AppraisalState is the mutable state threaded through the pipeline graph.
type AppraisalState struct {
	Images      []CapturedImage
	AskingPrice *int
	Triage      TriageResult
	Result      AnalysisResult
}

// Result is the final pipeline output.
type Result struct {
	Triage      TriageResult
	Analysis    AnalysisResult
	CompletedAt time.Time
}
