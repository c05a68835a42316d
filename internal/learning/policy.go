package learning

// Source trust weightings and recording gates. These are policy constants
// expressing how much each feedback source is trusted; tune them here, not
// in control flow.
const (
	// ConfidenceUser weights corrections submitted by end users.
	ConfidenceUser = 0.6

	// ConfidenceExpert weights corrections submitted by verified experts.
	ConfidenceExpert = 0.95

	// ConfidenceAuction weights realized sale prices. Sale outcomes are
	// only recorded when they deviate from the predicted midpoint by more
	// than AuctionDeviationThreshold.
	ConfidenceAuction = 0.9

	// ConfidenceGroundTruth weights verified-truth results. Ground truth
	// is only recorded for fields the system scored below
	// GroundTruthScoreCeiling; a correct high-confidence field teaches
	// nothing.
	ConfidenceGroundTruth = 1.0

	// AuctionDeviationThreshold is the relative deviation a sale price
	// must exceed before it counts as a correction signal.
	AuctionDeviationThreshold = 0.25

	// GroundTruthScoreCeiling gates ground-truth recording to fields the
	// system was unsure about.
	GroundTruthScoreCeiling = 0.7
)

// Pattern-analysis thresholds.
const (
	// AnalysisMinFeedback is the total feedback count below which pattern
	// analysis is a no-op: samples that small produce noise, not patterns.
	AnalysisMinFeedback = 10

	// ValueBiasMinEntries is the minimum number of value corrections the
	// bias detector requires.
	ValueBiasMinEntries = 5

	// ValueBiasThreshold is the absolute average relative bias that
	// triggers a calibration insight.
	ValueBiasThreshold = 0.15

	// ValueBiasHighThreshold upgrades a calibration insight to high severity.
	ValueBiasHighThreshold = 0.30

	// ConfusionMinEntries is the minimum correction count for one field
	// before confusion detection runs on it.
	ConfusionMinEntries = 3

	// ConfusionPairMin is the occurrence count at which an original to
	// corrected pairing counts as a confusion pattern.
	ConfusionPairMin = 2

	// GapMinEntries is the per-category correction count that signals a
	// knowledge gap.
	GapMinEntries = 3
)

// Adjustment effectiveness bounds.
const (
	// EffectivenessFloor deactivates an adjustment permanently when its
	// effectiveness drops below it. There is no reactivation path.
	EffectivenessFloor = 0.2

	// EffectivenessInitial is the starting score for new adjustments.
	EffectivenessInitial = 0.5
)
