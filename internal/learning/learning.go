// Package learning implements the self-learning domain: it accumulates
// correction feedback from users, experts, auction outcomes, and ground
// truth, derives recurring-error insights from it, and exposes dynamic
// prompt adjustments that shape future analysis prompts.
package learning

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies who or what produced a feedback entry. Each source
// carries a different trust weighting (see policy.go).
type Source string

// Valid feedback sources.
const (
	SourceExpert      Source = "expert"
	SourceUser        Source = "user"
	SourceAuction     Source = "auction"
	SourceGroundTruth Source = "ground_truth"
	SourceSystem      Source = "system"
)

// FeedbackEntry is one correction event. Entries are append-only: they
// accumulate for the lifetime of the store and are never retracted.
type FeedbackEntry struct {
	ID           uuid.UUID `json:"id"`
	Source       Source    `json:"source"`
	Field        string    `json:"field"`
	Original     string    `json:"original"`
	Corrected    string    `json:"corrected"`
	Confidence   float64   `json:"confidence"`
	Category     string    `json:"category"`
	PredictedMin *float64  `json:"predicted_min"`
	PredictedMax *float64  `json:"predicted_max"`
	NumericValue *float64  `json:"numeric_value"`
	VerifiedBy   string    `json:"verified_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// InsightType classifies a derived learning insight.
type InsightType string

// Valid insight types.
const (
	InsightPattern     InsightType = "pattern"
	InsightConfusion   InsightType = "confusion"
	InsightCalibration InsightType = "calibration"
	InsightGap         InsightType = "gap"
)

// Severity grades how urgently an insight should influence future prompts.
type Severity string

// Valid severities, ordered low to high.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns a numeric ordering for sorting insights by severity.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// Insight is a derived pattern in the accumulated feedback. Insights with
// the same (Type, Description) are a single logical insight: re-derivation
// increments Frequency and unions Evidence rather than inserting a duplicate.
type Insight struct {
	ID              uuid.UUID   `json:"id"`
	Type            InsightType `json:"type"`
	Description     string      `json:"description"`
	Severity        Severity    `json:"severity"`
	Evidence        []string    `json:"evidence"`
	SuggestedAction string      `json:"suggested_action"`
	Frequency       int         `json:"frequency"`
	LastSeen        time.Time   `json:"last_seen"`
}

// Adjustment is a named prompt-adaptation rule. Condition names the item
// category it applies to; Adjustment is the text injected into matching
// prompts. Effectiveness moves within [0,1] on external test feedback and
// the rule deactivates permanently once it drops below the floor.
type Adjustment struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Condition     string    `json:"condition"`
	Adjustment    string    `json:"adjustment"`
	Effectiveness float64   `json:"effectiveness"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Prediction carries the originally predicted values a correction refers to.
type Prediction struct {
	Name         string             `json:"name"`
	Maker        string             `json:"maker"`
	Category     string             `json:"category"`
	Era          string             `json:"era"`
	EstimatedMin *float64           `json:"estimated_min"`
	EstimatedMax *float64           `json:"estimated_max"`
	FieldScores  map[string]float64 `json:"field_scores"`
}

// Midpoint returns the midpoint of the predicted value range, or 0 when no
// range was predicted.
func (p Prediction) Midpoint() float64 {
	if p.EstimatedMin == nil || p.EstimatedMax == nil {
		return 0
	}
	return (*p.EstimatedMin + *p.EstimatedMax) / 2
}

// CorrectionCommand carries a user or expert correction of one field.
type CorrectionCommand struct {
	Prediction Prediction `json:"prediction"`
	Field      string     `json:"field"`
	Corrected  string     `json:"corrected"`
	VerifiedBy string     `json:"verified_by"`
}

// SaleOutcomeCommand carries an actual auction/sale result for a predicted item.
type SaleOutcomeCommand struct {
	Prediction  Prediction `json:"prediction"`
	SoldPrice   float64    `json:"sold_price"`
	Marketplace string     `json:"marketplace"`
}

// GroundTruthCommand carries a verified-truth result for one field with the
// score the system had assigned to that field.
type GroundTruthCommand struct {
	Prediction Prediction `json:"prediction"`
	Field      string     `json:"field"`
	Corrected  string     `json:"corrected"`
	FieldScore float64    `json:"field_score"`
}

// AdjustmentCommand carries the data needed to create a prompt adjustment.
type AdjustmentCommand struct {
	Name       string `json:"name"`
	Condition  string `json:"condition"`
	Adjustment string `json:"adjustment"`
}
