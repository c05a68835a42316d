package learning

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

// Stats summarizes the accumulated learning state.
type Stats struct {
	TotalFeedback     int            `json:"total_feedback"`
	BySource          map[Source]int `json:"by_source"`
	ByField           map[string]int `json:"by_field"`
	TotalInsights     int            `json:"total_insights"`
	HighSeverity      int            `json:"high_severity"`
	ActiveAdjustments int            `json:"active_adjustments"`
	WeeklyTrend       []WeeklyCount  `json:"weekly_trend"`
}

// WeeklyCount is the feedback volume for one ISO week.
type WeeklyCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// AccuracyReport breaks correction volume and deviation down by source and
// field. Corrections are the negative signal: a field that attracts many
// corrections is a field the system gets wrong.
type AccuracyReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	BySource    []SourceAccuracy `json:"by_source"`
	ByField     []FieldAccuracy  `json:"by_field"`
}

// SourceAccuracy aggregates corrections from one feedback source.
type SourceAccuracy struct {
	Source        Source  `json:"source"`
	Corrections   int     `json:"corrections"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// FieldAccuracy aggregates corrections for one identification field. For the
// value field, AvgDeviation is the mean relative distance between corrected
// values and predicted midpoints.
type FieldAccuracy struct {
	Field        string  `json:"field"`
	Corrections  int     `json:"corrections"`
	AvgDeviation float64 `json:"avg_deviation,omitempty"`
}

// Export is a full snapshot of the learning state for offline analysis or
// transfer to another deployment.
type Export struct {
	ExportedAt  time.Time       `json:"exported_at"`
	Feedback    []FeedbackEntry `json:"feedback"`
	Insights    []Insight       `json:"insights"`
	Adjustments []Adjustment    `json:"adjustments"`
}

// Stats computes summary statistics over the full learning state.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	entries, err := s.store.Feedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}
	insights, err := s.store.Insights(ctx)
	if err != nil {
		return nil, fmt.Errorf("load insights: %w", err)
	}
	adjustments, err := s.store.Adjustments(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("load adjustments: %w", err)
	}

	stats := &Stats{
		TotalFeedback:     len(entries),
		BySource:          make(map[Source]int),
		ByField:           make(map[string]int),
		TotalInsights:     len(insights),
		ActiveAdjustments: len(adjustments),
	}

	weekly := make(map[string]int)
	for _, e := range entries {
		stats.BySource[e.Source]++
		stats.ByField[e.Field]++

		year, week := e.CreatedAt.ISOWeek()
		weekly[fmt.Sprintf("%d-W%02d", year, week)]++
	}

	for _, in := range insights {
		if in.Severity == SeverityHigh {
			stats.HighSeverity++
		}
	}

	weeks := make([]string, 0, len(weekly))
	for week := range weekly {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)
	for _, week := range weeks {
		stats.WeeklyTrend = append(stats.WeeklyTrend, WeeklyCount{Week: week, Count: weekly[week]})
	}

	return stats, nil
}

// AccuracyReport aggregates correction volume by source and by field.
func (s *service) AccuracyReport(ctx context.Context) (*AccuracyReport, error) {
	entries, err := s.store.Feedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}

	type sourceAgg struct {
		count      int
		confidence float64
	}
	type fieldAgg struct {
		count      int
		deviation  float64
		deviations int
	}

	bySource := make(map[Source]*sourceAgg)
	byField := make(map[string]*fieldAgg)

	for _, e := range entries {
		sa := bySource[e.Source]
		if sa == nil {
			sa = &sourceAgg{}
			bySource[e.Source] = sa
		}
		sa.count++
		sa.confidence += e.Confidence

		fa := byField[e.Field]
		if fa == nil {
			fa = &fieldAgg{}
			byField[e.Field] = fa
		}
		fa.count++

		if e.Field == "value" && e.NumericValue != nil {
			if mid := midpoint(e); mid > 0 {
				fa.deviation += math.Abs(*e.NumericValue-mid) / mid
				fa.deviations++
			}
		}
	}

	report := &AccuracyReport{GeneratedAt: s.now()}

	for source, agg := range bySource {
		report.BySource = append(report.BySource, SourceAccuracy{
			Source:        source,
			Corrections:   agg.count,
			AvgConfidence: agg.confidence / float64(agg.count),
		})
	}
	sort.Slice(report.BySource, func(i, j int) bool {
		return report.BySource[i].Corrections > report.BySource[j].Corrections
	})

	for field, agg := range byField {
		fa := FieldAccuracy{Field: field, Corrections: agg.count}
		if agg.deviations > 0 {
			fa.AvgDeviation = agg.deviation / float64(agg.deviations)
		}
		report.ByField = append(report.ByField, fa)
	}
	sort.Slice(report.ByField, func(i, j int) bool {
		return report.ByField[i].Corrections > report.ByField[j].Corrections
	})

	return report, nil
}

// Export snapshots the complete learning state.
func (s *service) Export(ctx context.Context) (*Export, error) {
	entries, err := s.store.Feedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}
	insights, err := s.store.Insights(ctx)
	if err != nil {
		return nil, fmt.Errorf("load insights: %w", err)
	}
	adjustments, err := s.store.Adjustments(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("load adjustments: %w", err)
	}

	return &Export{
		ExportedAt:  s.now(),
		Feedback:    entries,
		Insights:    insights,
		Adjustments: adjustments,
	}, nil
}
