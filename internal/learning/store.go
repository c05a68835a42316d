package learning

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Store is the persistence contract for the learning domain. Feedback is
// append-only; insights merge on (type, description); adjustments update in
// place. Production uses the Postgres implementation in repository.go, tests
// and database-less operation use MemoryStore.
type Store interface {
	AppendFeedback(ctx context.Context, entry FeedbackEntry) error
	Feedback(ctx context.Context) ([]FeedbackEntry, error)
	FeedbackCount(ctx context.Context) (int, error)

	MergeInsight(ctx context.Context, insight Insight) error
	Insights(ctx context.Context) ([]Insight, error)

	CreateAdjustment(ctx context.Context, adj Adjustment) error
	SaveAdjustment(ctx context.Context, adj Adjustment) error
	FindAdjustment(ctx context.Context, id uuid.UUID) (*Adjustment, error)
	Adjustments(ctx context.Context, activeOnly bool) ([]Adjustment, error)
}

// MemoryStore is an in-process Store. All operations are safe for
// concurrent use; the merge discipline on insights keeps re-derivation
// idempotent under concurrent insertion.
type MemoryStore struct {
	mu          sync.RWMutex
	feedback    []FeedbackEntry
	insights    []Insight
	adjustments []Adjustment
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AppendFeedback records one feedback entry. Entries are never removed.
func (s *MemoryStore) AppendFeedback(_ context.Context, entry FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, entry)
	return nil
}

// Feedback returns a copy of the full feedback history.
func (s *MemoryStore) Feedback(_ context.Context) ([]FeedbackEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.feedback), nil
}

// FeedbackCount returns the number of recorded feedback entries.
func (s *MemoryStore) FeedbackCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.feedback), nil
}

// MergeInsight inserts an insight, or merges it into the existing insight
// with the same (type, description): frequency accumulates, evidence unions
// without duplicates, severity keeps the higher grade, and last-seen
// advances.
func (s *MemoryStore) MergeInsight(_ context.Context, insight Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.insights {
		existing := &s.insights[i]
		if existing.Type != insight.Type || existing.Description != insight.Description {
			continue
		}

		existing.Frequency += insight.Frequency
		for _, ev := range insight.Evidence {
			if !slices.Contains(existing.Evidence, ev) {
				existing.Evidence = append(existing.Evidence, ev)
			}
		}
		if insight.Severity.Rank() > existing.Severity.Rank() {
			existing.Severity = insight.Severity
		}
		if insight.LastSeen.After(existing.LastSeen) {
			existing.LastSeen = insight.LastSeen
		}
		return nil
	}

	if insight.ID == uuid.Nil {
		insight.ID = uuid.New()
	}
	s.insights = append(s.insights, insight)
	return nil
}

// Insights returns a copy of all stored insights.
func (s *MemoryStore) Insights(_ context.Context) ([]Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Insight, len(s.insights))
	for i, in := range s.insights {
		out[i] = in
		out[i].Evidence = slices.Clone(in.Evidence)
	}
	return out, nil
}

// CreateAdjustment stores a new prompt adjustment.
func (s *MemoryStore) CreateAdjustment(_ context.Context, adj Adjustment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustments = append(s.adjustments, adj)
	return nil
}

// SaveAdjustment replaces the stored adjustment with the same ID.
func (s *MemoryStore) SaveAdjustment(_ context.Context, adj Adjustment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.adjustments {
		if s.adjustments[i].ID == adj.ID {
			s.adjustments[i] = adj
			return nil
		}
	}
	return ErrAdjustmentNotFound
}

// FindAdjustment returns the adjustment with the given ID.
func (s *MemoryStore) FindAdjustment(_ context.Context, id uuid.UUID) (*Adjustment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, adj := range s.adjustments {
		if adj.ID == id {
			return &adj, nil
		}
	}
	return nil, ErrAdjustmentNotFound
}

// Adjustments returns stored adjustments, optionally only active ones.
func (s *MemoryStore) Adjustments(_ context.Context, activeOnly bool) ([]Adjustment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Adjustment
	for _, adj := range s.adjustments {
		if activeOnly && !adj.Active {
			continue
		}
		out = append(out, adj)
	}
	return out, nil
}
