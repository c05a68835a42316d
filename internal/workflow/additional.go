package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/curiolabs/curio/pkg/formatting"
)

// AnalyzeAdditional runs a single supplementary vision pass over one new
// photo of an already-appraised item. The model sees the prior result and
// returns only the fields the new photo changes; unchanged fields keep
// their prior values. This call is independent of the pipeline graph.
func AnalyzeAdditional(ctx context.Context, rt *Runtime, prior AnalysisResult, image CapturedImage) (*AnalysisResult, error) {
	prompt, err := buildAdditionalPrompt(prior, image)
	if err != nil {
		return nil, fmt.Errorf("analyze additional: %w", err)
	}

	content, err := rt.Vision.Complete(ctx, prompt, []string{image.DataURI}, analyzeOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	parsed, err := formatting.Parse[rawAnalysis](content)
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrAnalysisFailed, err)
	}

	merged := mergeAnalysis(prior, parsed)

	rt.Logger.InfoContext(
		ctx, "additional photo analyzed",
		"image_role", image.Role,
		"confidence", merged.Confidence,
	)

	return &merged, nil
}

func buildAdditionalPrompt(prior AnalysisResult, image CapturedImage) (string, error) {
	priorJSON, err := json.MarshalIndent(prior, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal prior result: %w", err)
	}

	var b strings.Builder
	b.WriteString("An item was previously appraised with this result:\n\n")
	b.Write(priorJSON)
	b.WriteString("\n\n")
	fmt.Fprintf(&b,
		"A new photograph (role: %s) of the SAME item is attached. Examine it for information the prior appraisal lacked: marks, signatures, damage, construction details.\n\n",
		image.Role,
	)
	b.WriteString("Respond with ONLY a JSON object containing JUST the fields this new photo changes, using the same field names and shapes as the prior result. Omit every field the photo does not affect. Return an empty object {} if nothing changes.\n")

	return b.String(), nil
}

// mergeAnalysis overlays the changed fields from a supplementary analysis
// onto the prior result. Only fields the model actually returned overwrite;
// valuation figures are re-humanized.
func mergeAnalysis(prior AnalysisResult, delta rawAnalysis) AnalysisResult {
	merged := prior

	if delta.Name != nil && strings.TrimSpace(*delta.Name) != "" {
		merged.Name = *delta.Name
	}
	if v := emptyToNil(delta.Maker); v != nil {
		merged.Maker = v
	}
	if v := emptyToNil(delta.Model); v != nil {
		merged.Model = v
	}
	if v := emptyToNil(delta.Brand); v != nil {
		merged.Brand = v
	}
	if v := emptyToNil(delta.Era); v != nil {
		merged.Era = v
	}
	if v := emptyToNil(delta.Origin); v != nil {
		merged.Origin = v
	}
	if delta.Description != nil {
		merged.Description = *delta.Description
	}
	if delta.History != nil {
		merged.History = *delta.History
	}

	if delta.EstimatedValueMin != nil {
		merged.EstimatedValueMin = formatting.HumanizePricePtr(delta.EstimatedValueMin)
	}
	if delta.EstimatedValueMax != nil {
		merged.EstimatedValueMax = formatting.HumanizePricePtr(delta.EstimatedValueMax)
	}
	if delta.RetailValue != nil {
		merged.RetailValue = formatting.HumanizePricePtr(delta.RetailValue)
	}

	if delta.Knowledge != nil {
		merged.Knowledge = normalizeKnowledge(delta.Knowledge)
	}

	if delta.Confidence != nil {
		merged.Confidence = clamp01(*delta.Confidence)
	}
	if delta.IdentificationConfidence != nil {
		merged.IdentificationConfidence = clamp01(*delta.IdentificationConfidence)
	}
	if delta.MakerConfidence != nil {
		merged.MakerConfidence = clamp01(*delta.MakerConfidence)
	}

	if delta.Evidence != nil {
		merged.Evidence = append(merged.Evidence, delta.Evidence...)
	}
	if delta.VerificationTips != nil {
		merged.VerificationTips = delta.VerificationTips
	}
	if delta.RedFlags != nil {
		merged.RedFlags = delta.RedFlags
	}
	if delta.SuggestedCaptures != nil {
		merged.SuggestedCaptures = delta.SuggestedCaptures
	}
	if delta.Alternatives != nil {
		merged.Alternatives = normalizeAlternatives(delta.Alternatives)
	}

	if delta.Authentication != nil {
		merged.Authentication = normalizeAuthentication(delta.Authentication)
	}
	if delta.Flip != nil {
		merged.Flip = normalizeFlip(delta.Flip)
	}

	reconcileValueRange(&merged)
	return merged
}
