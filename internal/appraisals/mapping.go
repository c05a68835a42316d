package appraisals

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/curiolabs/curio/pkg/query"
	"github.com/curiolabs/curio/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "appraisals", "a").
	Project("id", "ID").
	Project("name", "Name").
	Project("maker", "Maker").
	Project("category", "Category").
	Project("domain", "Domain").
	Project("item_type", "ItemType").
	Project("quality_tier", "QualityTier").
	Project("confidence", "Confidence").
	Project("risk_level", "RiskLevel").
	Project("estimated_value_min", "EstimatedValueMin").
	Project("estimated_value_max", "EstimatedValueMax").
	Project("asking_price", "AskingPrice").
	Project("triage", "Triage").
	Project("result", "Result").
	Project("image_count", "ImageCount").
	Project("model_name", "ModelName").
	Project("provider_name", "ProviderName").
	Project("appraised_at", "AppraisedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "AppraisedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for appraisal queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Category    *string `json:"category,omitempty"`
	Domain      *string `json:"domain,omitempty"`
	QualityTier *string `json:"quality_tier,omitempty"`
	RiskLevel   *string `json:"risk_level,omitempty"`
	Maker       *string `json:"maker,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Category", f.Category).
		WhereEquals("Domain", f.Domain).
		WhereEquals("QualityTier", f.QualityTier).
		WhereEquals("RiskLevel", f.RiskLevel).
		WhereEquals("Maker", f.Maker)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("category"); v != "" {
		f.Category = &v
	}

	if v := values.Get("domain"); v != "" {
		f.Domain = &v
	}

	if v := values.Get("quality_tier"); v != "" {
		f.QualityTier = &v
	}

	if v := values.Get("risk_level"); v != "" {
		f.RiskLevel = &v
	}

	if v := values.Get("maker"); v != "" {
		f.Maker = &v
	}

	return f
}

func scanAppraisal(s repository.Scanner) (Appraisal, error) {
	var (
		a         Appraisal
		triageRaw []byte
		resultRaw []byte
	)

	err := s.Scan(
		&a.ID,
		&a.Name,
		&a.Maker,
		&a.Category,
		&a.Domain,
		&a.ItemType,
		&a.QualityTier,
		&a.Confidence,
		&a.RiskLevel,
		&a.EstimatedValueMin,
		&a.EstimatedValueMax,
		&a.AskingPrice,
		&triageRaw,
		&resultRaw,
		&a.ImageCount,
		&a.ModelName,
		&a.ProviderName,
		&a.AppraisedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		return a, err
	}

	if len(triageRaw) > 0 {
		if err := json.Unmarshal(triageRaw, &a.Triage); err != nil {
			return a, fmt.Errorf("unmarshal triage: %w", err)
		}
	}

	if len(resultRaw) > 0 {
		if err := json.Unmarshal(resultRaw, &a.Result); err != nil {
			return a, fmt.Errorf("unmarshal result: %w", err)
		}
	}

	return a, nil
}
