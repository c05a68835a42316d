package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/curiolabs/curio/internal/knowledge"
	"github.com/curiolabs/curio/pkg/formatting"
)

const (
	maxPromptMarks    = 10
	maxPromptPatterns = 3
)

// AnalyzeNode returns a state node performing the deep identification pass.
// The prompt combines domain expertise, knowledge-base context, and learned
// adjustments; the response is repair-parsed and normalized with explicit
// defaults for every field.
func AnalyzeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		as, err := extractAppraisalState(s)
		if err != nil {
			return s, fmt.Errorf("analyze: %w", err)
		}

		progress := extractProgress(s)
		emitProgress(progress, StageAnalysis, "started", percentAnalysisStart, "running deep analysis")

		prompt, err := buildAnalysisPrompt(ctx, rt, as)
		if err != nil {
			return s, fmt.Errorf("analyze: %w", err)
		}

		content, err := rt.Vision.Complete(ctx, prompt, imageURIs(as.Images), analyzeOptions)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
		}

		parsed, err := formatting.Parse[rawAnalysis](content)
		if err != nil {
			return s, fmt.Errorf("%w: parse response: %w", ErrAnalysisFailed, err)
		}

		as.Result = normalizeAnalysis(parsed, as.Triage, as.Images)

		rt.Logger.InfoContext(
			ctx, "analyze node complete",
			"name", as.Result.Name,
			"confidence", as.Result.Confidence,
		)
		emitProgress(progress, StageAnalysis, "complete", percentAnalysisComplete, "deep analysis complete")

		s = s.Set(KeyAppraisalState, *as)
		return s, nil
	})
}

// buildAnalysisPrompt assembles the stage-two system prompt: domain
// expertise, knowledge-base context, learned adjustments, confusion
// warnings, identification instructions, and the target JSON schema.
func buildAnalysisPrompt(ctx context.Context, rt *Runtime, as *AppraisalState) (string, error) {
	var b strings.Builder

	b.WriteString(knowledge.ExpertPrompt(as.Triage.Domain))
	b.WriteString("\n\n")

	writeKnowledgeContext(&b, as.Triage)

	if rt.Learning != nil {
		if err := writeLearningContext(ctx, &b, rt, as.Triage); err != nil {
			return "", err
		}
	}

	writeInstructions(&b, as)
	writeSchema(&b)

	return b.String(), nil
}

func writeKnowledgeContext(b *strings.Builder, triage TriageResult) {
	if triage.Brand != nil {
		if mark, ok := knowledge.MakerByName(*triage.Brand); ok {
			fmt.Fprintf(b,
				"The detected brand matches a documented maker: %s (%s). Mark: %s, found %s.\n\n",
				mark.Maker, mark.Era, mark.Description, mark.Location,
			)
		}
	}

	if vr, ok := knowledge.ValueRangeFor(triage.Domain, triage.ItemType); ok {
		fmt.Fprintf(b,
			"Typical value band for %s: $%.0f to $%.0f. %s\n\n",
			vr.ItemType, vr.Low, vr.High, vr.Notes,
		)
	}

	marks := knowledge.MarksForDomain(triage.Domain, maxPromptMarks)
	if len(marks) > 0 {
		b.WriteString("Known maker marks in this domain:\n")
		for _, m := range marks {
			fmt.Fprintf(b, "- %s: %s (%s, found %s)\n", m.Maker, m.Description, m.Era, m.Location)
		}
		b.WriteString("\n")
	}

	patterns := knowledge.PatternsForDomain(triage.Domain, maxPromptPatterns)
	if len(patterns) > 0 {
		b.WriteString("Identification patterns to check:\n")
		for _, p := range patterns {
			fmt.Fprintf(b, "- %s (%s): %s", p.ItemType, p.Era, strings.Join(p.KeyFeatures, "; "))
			if p.CommonConfusion != "" {
				fmt.Fprintf(b, " (often confused with %s)", p.CommonConfusion)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if criteria, ok := knowledge.CriteriaFor(triage.Domain); ok {
		b.WriteString("Authentication checkpoints to evaluate:\n")
		for _, cp := range criteria.Checkpoints {
			fmt.Fprintf(b, "- %s: %s\n", cp.Name, cp.Description)
		}
		b.WriteString("\n")
	}
}

func writeLearningContext(ctx context.Context, b *strings.Builder, rt *Runtime, triage TriageResult) error {
	enhancements, err := rt.Learning.PromptEnhancements(ctx, string(triage.Category))
	if err != nil {
		return fmt.Errorf("prompt enhancements: %w", err)
	}
	if len(enhancements) > 0 {
		b.WriteString("Guidance learned from past corrections:\n")
		for _, e := range enhancements {
			fmt.Fprintf(b, "- %s\n", e)
		}
		b.WriteString("\n")
	}

	terms := detectedTerms(triage)
	warnings, err := rt.Learning.ConfusionWarnings(ctx, terms)
	if err != nil {
		return fmt.Errorf("confusion warnings: %w", err)
	}
	if len(warnings) > 0 {
		b.WriteString("Known identification confusions to double-check:\n")
		for _, w := range warnings {
			fmt.Fprintf(b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	return nil
}

// detectedTerms collects the triage text fragments, brand, and item type
// for confusion cross-referencing.
func detectedTerms(triage TriageResult) []string {
	terms := append([]string{}, triage.DetectedText...)
	if triage.Brand != nil && *triage.Brand != "" {
		terms = append(terms, *triage.Brand)
	}
	if triage.ItemType != "" {
		terms = append(terms, triage.ItemType)
	}
	return terms
}

func writeInstructions(b *strings.Builder, as *AppraisalState) {
	fmt.Fprintf(b,
		"First-pass triage classified this item as: category %s, domain %s, type %q, quality tier %s",
		as.Triage.Category, as.Triage.Domain, as.Triage.ItemType, as.Triage.QualityTier,
	)
	if as.Triage.Era != nil {
		fmt.Fprintf(b, ", era %s", *as.Triage.Era)
	}
	b.WriteString(".\n\n")

	b.WriteString("Perform a complete identification following these steps in order:\n")
	b.WriteString("1. Identify the primary object in the photographs.\n")
	b.WriteString("2. Read ALL visible text, marks, signatures, and labels.\n")
	b.WriteString("3. Assign a full item name including maker, pattern, and variant where determinable.\n")
	b.WriteString("4. Fill every field of the response schema. State what is confirmed versus probable versus needing verification.\n")
	b.WriteString("5. Evaluate each authentication checkpoint and report pass/fail/inconclusive per check.\n")
	b.WriteString("6. Estimate a realistic value range based on comparable items.\n")

	if as.AskingPrice != nil {
		fmt.Fprintf(b,
			"7. The asking price is %d (minor currency units). Rate the deal and estimate profit potential on resale.\n",
			*as.AskingPrice,
		)
	}
	b.WriteString("\n")
}

func writeSchema(b *strings.Builder) {
	b.WriteString("Respond with ONLY a JSON object in this exact shape:\n")
	b.WriteString(`{
  "name": "full item name",
  "maker": "maker or null",
  "model": "model/pattern or null",
  "brand": "brand or null",
  "era": "era or null",
  "origin": "country/region or null",
  "description": "physical description",
  "history": "historical context",
  "estimated_value_min": 100,
  "estimated_value_max": 300,
  "retail_value": 250,
  "knowledge": {
    "confirmed": ["fact"],
    "probable": ["fact"],
    "needs_verification": ["question"],
    "completeness": 0.7
  },
  "confidence": 0.8,
  "identification_confidence": 0.85,
  "maker_confidence": 0.75,
  "evidence": ["observation"],
  "visual_markers": [
    {"image_index": 0, "label": "mark", "description": "what it shows", "x": 0.1, "y": 0.2, "width": 0.15, "height": 0.1}
  ],
  "alternatives": [
    {"name": "alternative identification", "maker": "maker or null", "confidence": 0.3, "reasoning": "why"}
  ],
  "verification_tips": ["how to verify"],
  "red_flags": ["warning sign"],
  "suggested_captures": ["photo to take next"],
  "authentication": {
    "verdict": "likely_authentic",
    "confidence": 0.8,
    "checks": [{"name": "checkpoint", "status": "pass", "finding": "what was observed"}],
    "concerns": ["concern"]
  },
  "flip": {
    "deal_rating": "good",
    "profit_potential": 150,
    "resale_venues": ["venue"],
    "notes": "resale notes"
  }
}`)
}
