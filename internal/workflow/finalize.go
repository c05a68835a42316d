package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// FinalizeNode returns a state node performing the closing synthesis pass:
// it reconciles the value range, fills suggested captures when the analysis
// left open questions, and records the finished result in the state bag.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		as, err := extractAppraisalState(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		reconcileValueRange(&as.Result)
		suggestCaptures(as)

		rt.Logger.InfoContext(
			ctx, "finalize node complete",
			"name", as.Result.Name,
			"risk_level", as.Result.Authentication.RiskLevel,
		)

		s = s.Set(KeyAppraisalState, *as)
		return s, nil
	})
}

// reconcileValueRange enforces min <= max and drops a half-open range down
// to a single point rather than surfacing an inverted estimate.
func reconcileValueRange(result *AnalysisResult) {
	if result.EstimatedValueMin == nil || result.EstimatedValueMax == nil {
		return
	}
	if *result.EstimatedValueMin > *result.EstimatedValueMax {
		result.EstimatedValueMin, result.EstimatedValueMax = result.EstimatedValueMax, result.EstimatedValueMin
	}
}

// suggestCaptures recommends follow-up photos when the analysis flagged
// verification needs and the submitted set lacks the angles that would
// resolve them.
func suggestCaptures(as *AppraisalState) {
	if len(as.Result.Knowledge.NeedsVerification) == 0 {
		return
	}

	have := make(map[ImageRole]bool, len(as.Images))
	for _, img := range as.Images {
		have[img.Role] = true
	}

	recommend := func(role ImageRole, text string) {
		if !have[role] {
			as.Result.SuggestedCaptures = append(as.Result.SuggestedCaptures, text)
		}
	}

	recommend(RoleMarks, "close-up of any maker marks, stamps, or signatures")
	recommend(RoleUnderside, "underside or base showing construction and wear")
	recommend(RoleDetail, "detail shot of joinery, glaze, or surface texture")
}
