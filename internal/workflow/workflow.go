package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// State bag keys threaded through the pipeline graph.
const (
	KeyAppraisalState = "appraisal_state"
	KeyProgress       = "progress"
)

// Execute runs the appraisal pipeline for one request. It builds the state
// graph (triage → analyze → market → finalize), executes it, and extracts
// the Result from the final state. The market node is fail-soft internally;
// only triage/analysis transport failures abort execution.
func Execute(ctx context.Context, rt *Runtime, req Request) (*Result, error) {
	if len(req.Images) == 0 {
		return nil, ErrNoImages
	}

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyAppraisalState, AppraisalState{
		Images:      req.Images,
		AskingPrice: req.AskingPrice,
	})
	initialState = initialState.Set(KeyProgress, req.Progress)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	result, err := extractResult(finalState)
	if err != nil {
		return nil, err
	}

	emitProgress(req.Progress, StageComplete, "complete", percentComplete, "appraisal complete")
	return result, nil
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("curio-appraise")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("triage", TriageNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("analyze", AnalyzeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("market", MarketNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// triage → analyze (unconditional; triage never hard-fails on schema)
	if err := graph.AddEdge("triage", "analyze", nil); err != nil {
		return nil, err
	}

	// analyze → market (unconditional; the market node absorbs its own failures)
	if err := graph.AddEdge("analyze", "market", nil); err != nil {
		return nil, err
	}

	// market → finalize (unconditional)
	if err := graph.AddEdge("market", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("triage"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	as, err := extractAppraisalState(s)
	if err != nil {
		return nil, err
	}

	return &Result{
		Triage:      as.Triage,
		Analysis:    as.Result,
		CompletedAt: time.Now(),
	}, nil
}

func extractAppraisalState(s state.State) (*AppraisalState, error) {
	val, ok := s.Get(KeyAppraisalState)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyAppraisalState)
	}

	as, ok := val.(AppraisalState)
	if !ok {
		return nil, fmt.Errorf("%s is not AppraisalState", KeyAppraisalState)
	}

	return &as, nil
}

func extractProgress(s state.State) ProgressFunc {
	val, ok := s.Get(KeyProgress)
	if !ok {
		return nil
	}

	p, ok := val.(ProgressFunc)
	if !ok {
		return nil
	}

	return p
}

func imageURIs(images []CapturedImage) []string {
	uris := make([]string, len(images))
	for i, img := range images {
		uris[i] = img.DataURI
	}
	return uris
}
