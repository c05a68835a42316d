package workflow

// Stage identifies one pipeline phase in a progress event.
type Stage string

// Pipeline stages in execution order.
const (
	StageTriage   Stage = "triage"
	StageAnalysis Stage = "analysis"
	StageMarket   Stage = "market"
	StageComplete Stage = "complete"
)

// ProgressEvent reports pipeline advancement. Percent is monotonically
// non-decreasing across the events of one execution.
type ProgressEvent struct {
	Stage   Stage  `json:"stage"`
	Status  string `json:"status"`
	Percent int    `json:"percent"`
	Message string `json:"message"`
}

// ProgressFunc receives progress events in strict stage order. A nil
// callback disables emission.
type ProgressFunc func(ProgressEvent)

// Fixed percentages per stage boundary, keeping the sequence monotonic.
const (
	percentTriageStart     = 5
	percentTriageComplete  = 30
	percentAnalysisStart   = 35
	percentAnalysisComplete = 75
	percentMarketStart     = 80
	percentMarketComplete  = 95
	percentComplete        = 100
)

// emitProgress sends a progress event when a callback is configured.
func emitProgress(p ProgressFunc, stage Stage, status string, percent int, message string) {
	if p == nil {
		return
	}
	p(ProgressEvent{
		Stage:   stage,
		Status:  status,
		Percent: percent,
		Message: message,
	})
}
