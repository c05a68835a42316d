package learning

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/curiolabs/curio/pkg/repository"
)

// PostgresStore persists learning state in PostgreSQL. Feedback entries are
// append-only rows; insights upsert on (type, description) so re-derivation
// accumulates frequency and evidence instead of duplicating rows.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Store backed by the given database.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) AppendFeedback(ctx context.Context, entry FeedbackEntry) error {
	q := `
		INSERT INTO feedback_entries(
			id, source, field, original, corrected, confidence, category,
			predicted_min, predicted_max, numeric_value, verified_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := s.db.ExecContext(ctx, q,
		entry.ID, string(entry.Source), entry.Field, entry.Original,
		entry.Corrected, entry.Confidence, entry.Category,
		entry.PredictedMin, entry.PredictedMax, entry.NumericValue,
		entry.VerifiedBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) Feedback(ctx context.Context) ([]FeedbackEntry, error) {
	q := `
		SELECT id, source, field, original, corrected, confidence, category,
			   predicted_min, predicted_max, numeric_value, verified_by, created_at
		FROM feedback_entries
		ORDER BY created_at`

	return repository.QueryMany(ctx, s.db, q, nil, scanFeedbackEntry)
}

func (s *PostgresStore) FeedbackCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM feedback_entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("count feedback entries: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) MergeInsight(ctx context.Context, insight Insight) error {
	if insight.ID == uuid.Nil {
		insight.ID = uuid.New()
	}

	evidence, err := json.Marshal(insight.Evidence)
	if err != nil {
		return fmt.Errorf("marshal evidence: %w", err)
	}

	// Severity upgrades but never downgrades; evidence unions through the
	// jsonb concatenation with a distinct filter; last_seen only advances.
	q := `
		INSERT INTO learning_insights(
			id, type, description, severity, evidence, suggested_action,
			frequency, last_seen
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (type, description) DO UPDATE SET
			frequency = learning_insights.frequency + EXCLUDED.frequency,
			evidence = (
				SELECT COALESCE(jsonb_agg(DISTINCT e), '[]'::jsonb)
				FROM jsonb_array_elements(learning_insights.evidence || EXCLUDED.evidence) AS e
			),
			severity = CASE
				WHEN EXCLUDED.severity = 'high' OR learning_insights.severity = 'high' THEN 'high'
				WHEN EXCLUDED.severity = 'medium' OR learning_insights.severity = 'medium' THEN 'medium'
				ELSE 'low'
			END,
			last_seen = GREATEST(learning_insights.last_seen, EXCLUDED.last_seen)`

	_, err = s.db.ExecContext(ctx, q,
		insight.ID, string(insight.Type), insight.Description,
		string(insight.Severity), evidence, insight.SuggestedAction,
		insight.Frequency, insight.LastSeen,
	)
	if err != nil {
		return fmt.Errorf("merge insight: %w", err)
	}
	return nil
}

func (s *PostgresStore) Insights(ctx context.Context) ([]Insight, error) {
	q := `
		SELECT id, type, description, severity, evidence, suggested_action,
			   frequency, last_seen
		FROM learning_insights
		ORDER BY last_seen DESC`

	return repository.QueryMany(ctx, s.db, q, nil, scanInsight)
}

func (s *PostgresStore) CreateAdjustment(ctx context.Context, adj Adjustment) error {
	q := `
		INSERT INTO prompt_adjustments(
			id, name, condition, adjustment, effectiveness, active, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, q,
		adj.ID, adj.Name, adj.Condition, adj.Adjustment,
		adj.Effectiveness, adj.Active, adj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveAdjustment(ctx context.Context, adj Adjustment) error {
	err := repository.ExecExpectOne(ctx, s.db, `
		UPDATE prompt_adjustments
		SET name = $1, condition = $2, adjustment = $3, effectiveness = $4, active = $5
		WHERE id = $6`,
		adj.Name, adj.Condition, adj.Adjustment, adj.Effectiveness, adj.Active, adj.ID,
	)
	return repository.MapError(err, ErrAdjustmentNotFound, ErrAdjustmentNotFound)
}

func (s *PostgresStore) FindAdjustment(ctx context.Context, id uuid.UUID) (*Adjustment, error) {
	q := `
		SELECT id, name, condition, adjustment, effectiveness, active, created_at
		FROM prompt_adjustments
		WHERE id = $1`

	adj, err := repository.QueryOne(ctx, s.db, q, []any{id}, scanAdjustment)
	if err != nil {
		return nil, repository.MapError(err, ErrAdjustmentNotFound, ErrAdjustmentNotFound)
	}
	return &adj, nil
}

func (s *PostgresStore) Adjustments(ctx context.Context, activeOnly bool) ([]Adjustment, error) {
	q := `
		SELECT id, name, condition, adjustment, effectiveness, active, created_at
		FROM prompt_adjustments`
	if activeOnly {
		q += " WHERE active"
	}
	q += " ORDER BY created_at"

	return repository.QueryMany(ctx, s.db, q, nil, scanAdjustment)
}

func scanFeedbackEntry(s repository.Scanner) (FeedbackEntry, error) {
	var e FeedbackEntry
	err := s.Scan(
		&e.ID, &e.Source, &e.Field, &e.Original, &e.Corrected,
		&e.Confidence, &e.Category, &e.PredictedMin, &e.PredictedMax,
		&e.NumericValue, &e.VerifiedBy, &e.CreatedAt,
	)
	return e, err
}

func scanInsight(s repository.Scanner) (Insight, error) {
	var (
		in       Insight
		evidence []byte
	)
	err := s.Scan(
		&in.ID, &in.Type, &in.Description, &in.Severity, &evidence,
		&in.SuggestedAction, &in.Frequency, &in.LastSeen,
	)
	if err != nil {
		return in, err
	}
	if err := json.Unmarshal(evidence, &in.Evidence); err != nil {
		return in, fmt.Errorf("unmarshal evidence: %w", err)
	}
	return in, nil
}

func scanAdjustment(s repository.Scanner) (Adjustment, error) {
	var a Adjustment
	err := s.Scan(
		&a.ID, &a.Name, &a.Condition, &a.Adjustment,
		&a.Effectiveness, &a.Active, &a.CreatedAt,
	)
	return a, err
}
