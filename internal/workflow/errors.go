package workflow

import "errors"

// Pipeline errors. Triage schema problems and market lookup failures never
// surface through these: the former downgrades to a fallback result, the
// latter is logged and absorbed. Only transport failures and unrecoverable
// response corruption abort a stage.
var (
	ErrNoImages       = errors.New("at least one image is required")
	ErrEmptyResponse  = errors.New("completion returned empty content")
	ErrTriageFailed   = errors.New("triage stage failed")
	ErrAnalysisFailed = errors.New("analysis stage failed")
)
