package learning

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for learning domain operations.
type System interface {
	Handler() *Handler

	RecordUserCorrection(ctx context.Context, cmd CorrectionCommand) error
	RecordExpertCorrection(ctx context.Context, cmd CorrectionCommand) error
	RecordSaleOutcome(ctx context.Context, cmd SaleOutcomeCommand) error
	RecordGroundTruth(ctx context.Context, cmd GroundTruthCommand) error

	PromptEnhancements(ctx context.Context, category string) ([]string, error)
	ConfusionWarnings(ctx context.Context, terms []string) ([]string, error)

	Insights(ctx context.Context) ([]Insight, error)
	Stats(ctx context.Context) (*Stats, error)
	AccuracyReport(ctx context.Context) (*AccuracyReport, error)
	Export(ctx context.Context) (*Export, error)

	CreateAdjustment(ctx context.Context, cmd AdjustmentCommand) (*Adjustment, error)
	Adjustments(ctx context.Context, activeOnly bool) ([]Adjustment, error)
	UpdateAdjustmentEffectiveness(ctx context.Context, id uuid.UUID, delta float64) (*Adjustment, error)
	DeactivateAdjustment(ctx context.Context, id uuid.UUID) (*Adjustment, error)
}
