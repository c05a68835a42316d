// Package appraisals implements the appraisal domain: it validates inbound
// photo submissions, runs the identification pipeline, and persists every
// result with its triage output and model attribution.
package appraisals

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/curiolabs/curio/internal/workflow"
)

// Appraisal is a stored appraisal result. Searchable identification fields
// are flattened into columns; the full triage and analysis payloads are
// stored as JSON documents.
type Appraisal struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Maker       *string   `json:"maker"`
	Category    string    `json:"category"`
	Domain      string    `json:"domain"`
	ItemType    string    `json:"item_type"`
	QualityTier string    `json:"quality_tier"`
	Confidence  float64   `json:"confidence"`
	RiskLevel   string    `json:"risk_level"`

	EstimatedValueMin *float64 `json:"estimated_value_min"`
	EstimatedValueMax *float64 `json:"estimated_value_max"`
	AskingPrice       *int     `json:"asking_price"`

	Triage workflow.TriageResult   `json:"triage"`
	Result workflow.AnalysisResult `json:"result"`

	ImageCount   int       `json:"image_count"`
	ModelName    string    `json:"model_name"`
	ProviderName string    `json:"provider_name"`
	AppraisedAt  time.Time `json:"appraised_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ImageInput is one inbound photo: a role tag, a data-URI payload, and an
// optional display label.
type ImageInput struct {
	Role    string `json:"role"`
	DataURI string `json:"data_uri"`
	Label   string `json:"label"`
}

// UnmarshalJSON accepts either the object form or a bare data-URI string.
// The string shorthand carries no role, so the image defaults to additional.
func (in *ImageInput) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &in.DataURI)
	}

	type plain ImageInput
	return json.Unmarshal(data, (*plain)(in))
}

// AppraiseCommand carries the data needed to run a new appraisal.
type AppraiseCommand struct {
	Images      []ImageInput `json:"images"`
	AskingPrice *int         `json:"asking_price"`
}

// AdditionalCommand carries one supplementary photo for an existing appraisal.
type AdditionalCommand struct {
	Image ImageInput `json:"image"`
}
