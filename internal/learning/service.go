package learning

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type service struct {
	store  Store
	logger *slog.Logger

	// mu serializes record-and-reanalyze sequences. The store itself is
	// safe for concurrent use; the lock keeps insight derivation from
	// running against a half-recorded batch.
	mu  sync.Mutex
	now func() time.Time
}

// New creates a learning System over the given store.
func New(store Store, logger *slog.Logger) System {
	return &service{
		store:  store,
		logger: logger.With("system", "learning"),
		now:    time.Now,
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// RecordUserCorrection appends a user-sourced correction and re-derives
// patterns once enough feedback has accumulated.
func (s *service) RecordUserCorrection(ctx context.Context, cmd CorrectionCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.buildEntry(SourceUser, ConfidenceUser, cmd)
	if err != nil {
		return err
	}

	if err := s.store.AppendFeedback(ctx, entry); err != nil {
		return fmt.Errorf("append user correction: %w", err)
	}

	s.logger.Info("user correction recorded", "field", entry.Field, "category", entry.Category)
	return s.reanalyze(ctx)
}

// RecordExpertCorrection appends an expert-sourced correction and
// synthesizes an immediate pattern insight: expert signal is trusted enough
// to act on without waiting for repetition.
func (s *service) RecordExpertCorrection(ctx context.Context, cmd CorrectionCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.buildEntry(SourceExpert, ConfidenceExpert, cmd)
	if err != nil {
		return err
	}

	if err := s.store.AppendFeedback(ctx, entry); err != nil {
		return fmt.Errorf("append expert correction: %w", err)
	}

	insight := Insight{
		Type: InsightPattern,
		Description: fmt.Sprintf(
			"expert correction: %s %q should be %q", entry.Field, entry.Original, entry.Corrected,
		),
		Severity:        SeverityMedium,
		Evidence:        []string{fmt.Sprintf("corrected by %s", cmd.VerifiedBy)},
		SuggestedAction: fmt.Sprintf("apply expert guidance for %s identifications", entry.Field),
		Frequency:       1,
		LastSeen:        s.now(),
	}

	if err := s.store.MergeInsight(ctx, insight); err != nil {
		return fmt.Errorf("merge expert insight: %w", err)
	}

	s.logger.Info("expert correction recorded",
		"field", entry.Field,
		"verified_by", cmd.VerifiedBy,
	)
	return nil
}

// RecordSaleOutcome records a realized sale price as a value correction,
// but only when it deviates from the predicted midpoint by more than the
// policy threshold — sales inside the band confirm the estimate.
func (s *service) RecordSaleOutcome(ctx context.Context, cmd SaleOutcomeCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mid := cmd.Prediction.Midpoint()
	if mid <= 0 {
		return nil
	}

	deviation := math.Abs(cmd.SoldPrice-mid) / mid
	if deviation <= AuctionDeviationThreshold {
		return nil
	}

	sold := cmd.SoldPrice
	entry := FeedbackEntry{
		ID:           uuid.New(),
		Source:       SourceAuction,
		Field:        "value",
		Original:     strconv.FormatFloat(mid, 'f', 0, 64),
		Corrected:    strconv.FormatFloat(sold, 'f', 0, 64),
		Confidence:   ConfidenceAuction,
		Category:     cmd.Prediction.Category,
		PredictedMin: cmd.Prediction.EstimatedMin,
		PredictedMax: cmd.Prediction.EstimatedMax,
		NumericValue: &sold,
		VerifiedBy:   cmd.Marketplace,
		CreatedAt:    s.now(),
	}

	if err := s.store.AppendFeedback(ctx, entry); err != nil {
		return fmt.Errorf("append sale outcome: %w", err)
	}

	s.logger.Info("sale outcome recorded",
		"sold_price", cmd.SoldPrice,
		"predicted_midpoint", mid,
		"deviation", deviation,
	)
	return nil
}

// RecordGroundTruth records a verified-truth result for a field the system
// scored below the policy ceiling, then re-derives patterns. High-scoring
// correct fields carry no learning signal and are skipped.
func (s *service) RecordGroundTruth(ctx context.Context, cmd GroundTruthCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cmd.FieldScore >= GroundTruthScoreCeiling {
		return nil
	}

	entry, err := s.buildEntry(SourceGroundTruth, ConfidenceGroundTruth, CorrectionCommand{
		Prediction: cmd.Prediction,
		Field:      cmd.Field,
		Corrected:  cmd.Corrected,
	})
	if err != nil {
		return err
	}

	if err := s.store.AppendFeedback(ctx, entry); err != nil {
		return fmt.Errorf("append ground truth: %w", err)
	}

	s.logger.Info("ground truth recorded", "field", entry.Field, "score", cmd.FieldScore)
	return s.reanalyze(ctx)
}

// PromptEnhancements returns the prompt text to inject for a category:
// active explicit adjustments whose condition matches, plus guidance
// derived from non-low-severity insights.
func (s *service) PromptEnhancements(ctx context.Context, category string) ([]string, error) {
	var enhancements []string

	adjustments, err := s.store.Adjustments(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("load adjustments: %w", err)
	}
	for _, adj := range adjustments {
		if adj.Condition == "" || strings.EqualFold(adj.Condition, category) {
			enhancements = append(enhancements, adj.Adjustment)
		}
	}

	insights, err := s.store.Insights(ctx)
	if err != nil {
		return nil, fmt.Errorf("load insights: %w", err)
	}

	quoted := fmt.Sprintf("%q", category)
	for _, in := range insights {
		if in.Severity == SeverityLow {
			continue
		}

		switch in.Type {
		case InsightConfusion, InsightCalibration:
			enhancements = append(enhancements, in.SuggestedAction)
		case InsightGap:
			if strings.Contains(in.Description, quoted) {
				enhancements = append(enhancements, in.SuggestedAction)
			}
		}
	}

	return enhancements, nil
}

// ConfusionWarnings cross-references detected terms against the recurring
// confusion pairings in the feedback history and returns warnings for any
// term the model has previously misidentified.
func (s *service) ConfusionWarnings(ctx context.Context, terms []string) ([]string, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	entries, err := s.store.Feedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}

	byField := make(map[string][]FeedbackEntry)
	for _, e := range entries {
		if confusionFields[e.Field] {
			byField[e.Field] = append(byField[e.Field], e)
		}
	}

	var warnings []string
	seen := make(map[string]bool)

	for field, fieldEntries := range byField {
		for _, pair := range confusionPairs(field, fieldEntries) {
			for _, term := range terms {
				lowered := strings.ToLower(strings.TrimSpace(term))
				if lowered == "" {
					continue
				}
				if !strings.Contains(lowered, pair.Original) && !strings.Contains(pair.Original, lowered) {
					continue
				}

				warning := fmt.Sprintf(
					"%q has previously been misidentified: %d corrections changed %s %q to %q",
					term, pair.Count, pair.Field, pair.Original, pair.Corrected,
				)
				if !seen[warning] {
					seen[warning] = true
					warnings = append(warnings, warning)
				}
			}
		}
	}

	return warnings, nil
}

// Insights returns all derived insights sorted by descending severity,
// then descending frequency.
func (s *service) Insights(ctx context.Context) ([]Insight, error) {
	insights, err := s.store.Insights(ctx)
	if err != nil {
		return nil, fmt.Errorf("load insights: %w", err)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].Severity.Rank() != insights[j].Severity.Rank() {
			return insights[i].Severity.Rank() > insights[j].Severity.Rank()
		}
		return insights[i].Frequency > insights[j].Frequency
	})

	return insights, nil
}

// CreateAdjustment stores a new active prompt adjustment with the initial
// effectiveness score.
func (s *service) CreateAdjustment(ctx context.Context, cmd AdjustmentCommand) (*Adjustment, error) {
	adj := Adjustment{
		ID:            uuid.New(),
		Name:          cmd.Name,
		Condition:     cmd.Condition,
		Adjustment:    cmd.Adjustment,
		Effectiveness: EffectivenessInitial,
		Active:        true,
		CreatedAt:     s.now(),
	}

	if err := s.store.CreateAdjustment(ctx, adj); err != nil {
		return nil, fmt.Errorf("create adjustment: %w", err)
	}

	s.logger.Info("adjustment created", "id", adj.ID, "name", adj.Name)
	return &adj, nil
}

// Adjustments returns stored adjustments, optionally only active ones.
func (s *service) Adjustments(ctx context.Context, activeOnly bool) ([]Adjustment, error) {
	return s.store.Adjustments(ctx, activeOnly)
}

// UpdateAdjustmentEffectiveness applies a signed delta to an adjustment's
// effectiveness, clamped to [0,1]. Crossing below the policy floor
// deactivates the adjustment permanently; there is no reactivation path.
func (s *service) UpdateAdjustmentEffectiveness(ctx context.Context, id uuid.UUID, delta float64) (*Adjustment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	adj, err := s.store.FindAdjustment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !adj.Active {
		return nil, ErrAdjustmentInactive
	}

	adj.Effectiveness = min(max(adj.Effectiveness+delta, 0), 1)
	if adj.Effectiveness < EffectivenessFloor {
		adj.Active = false
	}

	if err := s.store.SaveAdjustment(ctx, *adj); err != nil {
		return nil, fmt.Errorf("save adjustment: %w", err)
	}

	if !adj.Active {
		s.logger.Info("adjustment deactivated",
			"id", adj.ID,
			"effectiveness", adj.Effectiveness,
		)
	}
	return adj, nil
}

// DeactivateAdjustment turns an adjustment off by hand.
func (s *service) DeactivateAdjustment(ctx context.Context, id uuid.UUID) (*Adjustment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	adj, err := s.store.FindAdjustment(ctx, id)
	if err != nil {
		return nil, err
	}

	adj.Active = false
	if err := s.store.SaveAdjustment(ctx, *adj); err != nil {
		return nil, fmt.Errorf("save adjustment: %w", err)
	}

	s.logger.Info("adjustment deactivated", "id", adj.ID)
	return adj, nil
}

// buildEntry converts a correction command into a feedback entry, pulling
// the originally predicted value for the corrected field from the
// prediction snapshot.
func (s *service) buildEntry(source Source, confidence float64, cmd CorrectionCommand) (FeedbackEntry, error) {
	if strings.TrimSpace(cmd.Field) == "" {
		return FeedbackEntry{}, ErrInvalidField
	}

	field := strings.ToLower(strings.TrimSpace(cmd.Field))
	entry := FeedbackEntry{
		ID:           uuid.New(),
		Source:       source,
		Field:        field,
		Original:     originalValue(cmd.Prediction, field),
		Corrected:    cmd.Corrected,
		Confidence:   confidence,
		Category:     cmd.Prediction.Category,
		PredictedMin: cmd.Prediction.EstimatedMin,
		PredictedMax: cmd.Prediction.EstimatedMax,
		VerifiedBy:   cmd.VerifiedBy,
		CreatedAt:    s.now(),
	}

	if field == "value" {
		if v, err := strconv.ParseFloat(strings.TrimSpace(cmd.Corrected), 64); err == nil {
			entry.NumericValue = &v
		}
	}

	return entry, nil
}

// reanalyze re-derives pattern insights from the full feedback history.
// Below the policy minimum it is a no-op: small samples produce noise.
func (s *service) reanalyze(ctx context.Context) error {
	count, err := s.store.FeedbackCount(ctx)
	if err != nil {
		return fmt.Errorf("count feedback: %w", err)
	}
	if count < AnalysisMinFeedback {
		return nil
	}

	entries, err := s.store.Feedback(ctx)
	if err != nil {
		return fmt.Errorf("load feedback: %w", err)
	}

	insights := deriveInsights(entries, s.now())
	for _, insight := range insights {
		if err := s.store.MergeInsight(ctx, insight); err != nil {
			return fmt.Errorf("merge insight: %w", err)
		}
	}

	if len(insights) > 0 {
		s.logger.Info("pattern analysis complete",
			"feedback_count", count,
			"insights", len(insights),
		)
	}
	return nil
}

func originalValue(p Prediction, field string) string {
	switch field {
	case "maker":
		return p.Maker
	case "name":
		return p.Name
	case "era":
		return p.Era
	case "category":
		return p.Category
	case "value":
		return strconv.FormatFloat(p.Midpoint(), 'f', 0, 64)
	default:
		return ""
	}
}
