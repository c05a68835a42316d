package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/curiolabs/curio/internal/knowledge"
	"github.com/curiolabs/curio/pkg/formatting"
)

// triageResponse mirrors the raw JSON the model is asked to produce. Every
// enum field arrives as an untrusted string and is normalized before use.
type triageResponse struct {
	Category     string   `json:"category"`
	Domain       string   `json:"domain"`
	ItemType     string   `json:"item_type"`
	Era          *string  `json:"era"`
	QualityTier  string   `json:"quality_tier"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
	Brand        *string  `json:"brand"`
	DetectedText []string `json:"detected_text"`
}

// fallbackConfidence is assigned when the triage response fails schema
// validation. Deep analysis still runs, just without a trusted first pass.
const fallbackConfidence = 0.3

// TriageNode returns a state node performing the fast first-pass
// classification. Schema failures downgrade to a low-confidence fallback
// rather than aborting; only transport failures propagate.
func TriageNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		as, err := extractAppraisalState(s)
		if err != nil {
			return s, fmt.Errorf("triage: %w", err)
		}

		progress := extractProgress(s)
		emitProgress(progress, StageTriage, "started", percentTriageStart, "classifying item")

		content, err := rt.Vision.Complete(ctx, triagePrompt(), imageURIs(as.Images), triageOptions)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrTriageFailed, err)
		}

		as.Triage = triageFromContent(rt, ctx, content)

		rt.Logger.InfoContext(
			ctx, "triage node complete",
			"category", as.Triage.Category,
			"domain", as.Triage.Domain,
			"confidence", as.Triage.Confidence,
		)
		emitProgress(progress, StageTriage, "complete", percentTriageComplete, "item classified")

		s = s.Set(KeyAppraisalState, *as)
		return s, nil
	})
}

func triageFromContent(rt *Runtime, ctx context.Context, content string) TriageResult {
	parsed, err := formatting.Parse[triageResponse](content)
	if err != nil {
		rt.Logger.WarnContext(
			ctx, "triage response failed schema validation, using fallback",
			"error", err,
		)
		return fallbackTriage()
	}

	return normalizeTriage(parsed)
}

// normalizeTriage coerces model output into the fixed enumerations. Raw
// passthrough of an unrecognized value never escapes this function.
func normalizeTriage(raw triageResponse) TriageResult {
	itemType := strings.TrimSpace(raw.ItemType)
	if itemType == "" {
		itemType = "unidentified item"
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return TriageResult{
		Category:     knowledge.NormalizeCategory(raw.Category),
		Domain:       knowledge.NormalizeDomain(raw.Domain),
		ItemType:     itemType,
		Era:          raw.Era,
		QualityTier:  knowledge.NormalizeQualityTier(raw.QualityTier),
		Confidence:   confidence,
		Reasoning:    raw.Reasoning,
		Brand:        raw.Brand,
		DetectedText: raw.DetectedText,
	}
}

// fallbackTriage is the minimal valid result used when the response cannot
// be parsed at all.
func fallbackTriage() TriageResult {
	return TriageResult{
		Category:    knowledge.CategoryVintage,
		Domain:      knowledge.DomainGeneral,
		ItemType:    "unidentified item",
		QualityTier: knowledge.QualityMid,
		Confidence:  fallbackConfidence,
		Reasoning:   "initial classification could not be validated; proceeding with defaults",
	}
}

func triagePrompt() string {
	var b strings.Builder

	b.WriteString("You are performing rapid first-pass triage of an antique or collectible item from photographs.\n\n")
	b.WriteString("Tasks:\n")
	b.WriteString("1. Transcribe ALL visible text, marks, labels, and signatures exactly as they appear.\n")
	b.WriteString("2. Classify the item into exactly one category: ")
	b.WriteString(joinCategories())
	b.WriteString(".\n")
	b.WriteString("3. Classify the item into exactly one expert domain: ")
	b.WriteString(joinDomains())
	b.WriteString(".\n")
	b.WriteString("4. Assess quality tier: ")
	b.WriteString(joinTiers())
	b.WriteString(".\n")
	b.WriteString("5. Estimate the era of manufacture if determinable.\n")
	b.WriteString("6. Report any detected branding and your raw confidence from 0 to 1.\n\n")
	b.WriteString("Respond with ONLY a JSON object in this exact shape:\n")
	b.WriteString(`{
  "category": "vintage",
  "domain": "ceramics",
  "item_type": "art pottery vase",
  "era": "1930s",
  "quality_tier": "mid",
  "confidence": 0.85,
  "reasoning": "brief explanation",
  "brand": "maker name or null",
  "detected_text": ["text fragment"]
}`)

	return b.String()
}

func joinCategories() string {
	var names []string
	for _, c := range knowledge.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func joinDomains() string {
	var names []string
	for _, d := range knowledge.Domains() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}

func joinTiers() string {
	var names []string
	for _, t := range knowledge.QualityTiers() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
