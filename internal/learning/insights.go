package learning

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// confusionFields are the identification fields the confusion detector
// watches. Value corrections go through the bias detector instead.
var confusionFields = map[string]bool{
	"maker": true,
	"era":   true,
	"style": true,
}

// confusionPair is one original-to-corrected value pairing with its
// occurrence count across the feedback history.
type confusionPair struct {
	Field     string
	Original  string
	Corrected string
	Count     int
}

// deriveInsights runs every pattern detector over the full feedback history
// and returns the insights found. Callers merge the result into the store;
// (type, description) pairs are stable across runs so re-derivation
// deduplicates instead of duplicating.
func deriveInsights(entries []FeedbackEntry, now time.Time) []Insight {
	byField := make(map[string][]FeedbackEntry)
	for _, e := range entries {
		byField[e.Field] = append(byField[e.Field], e)
	}

	var insights []Insight
	insights = append(insights, detectValueBias(byField["value"], now)...)

	for field, fieldEntries := range byField {
		if confusionFields[field] {
			insights = append(insights, detectConfusions(field, fieldEntries, now)...)
		}
		insights = append(insights, detectCategoryGaps(field, fieldEntries, now)...)
	}

	return insights
}

// detectValueBias computes the average relative deviation between corrected
// values and predicted midpoints. A consistent deviation beyond the policy
// threshold is a calibration problem, not noise.
func detectValueBias(entries []FeedbackEntry, now time.Time) []Insight {
	var (
		biases   []float64
		evidence []string
	)

	for _, e := range entries {
		mid := midpoint(e)
		if mid == 0 || e.NumericValue == nil {
			continue
		}
		bias := (*e.NumericValue - mid) / mid
		biases = append(biases, bias)
		evidence = append(evidence, fmt.Sprintf(
			"predicted midpoint %.0f, actual %.0f (%+.0f%%)",
			mid, *e.NumericValue, bias*100,
		))
	}

	if len(biases) < ValueBiasMinEntries {
		return nil
	}

	var sum float64
	for _, b := range biases {
		sum += b
	}
	avg := sum / float64(len(biases))

	if math.Abs(avg) <= ValueBiasThreshold {
		return nil
	}

	direction := "under-estimation"
	if avg < 0 {
		direction = "over-estimation"
	}

	severity := SeverityMedium
	if math.Abs(avg) > ValueBiasHighThreshold {
		severity = SeverityHigh
	}

	return []Insight{{
		Type:        InsightCalibration,
		Description: fmt.Sprintf("value estimates show systematic %s", direction),
		Severity:    severity,
		Evidence:    evidence,
		SuggestedAction: fmt.Sprintf(
			"adjust value estimates for %s averaging %.0f%%",
			direction, math.Abs(avg)*100,
		),
		Frequency: 1,
		LastSeen:  now,
	}}
}

// detectConfusions builds an original-to-corrected histogram for one field
// and reports every pairing that recurs.
func detectConfusions(field string, entries []FeedbackEntry, now time.Time) []Insight {
	if len(entries) < ConfusionMinEntries {
		return nil
	}

	var insights []Insight
	for _, pair := range confusionPairs(field, entries) {
		severity := SeverityLow
		switch {
		case pair.Count >= 5:
			severity = SeverityHigh
		case pair.Count >= 3:
			severity = SeverityMedium
		}

		insights = append(insights, Insight{
			Type: InsightConfusion,
			Description: fmt.Sprintf(
				"%s confusion: %q corrected to %q", field, pair.Original, pair.Corrected,
			),
			Severity: severity,
			Evidence: []string{fmt.Sprintf("%d corrections from %q to %q", pair.Count, pair.Original, pair.Corrected)},
			SuggestedAction: fmt.Sprintf(
				"when evidence suggests %q, verify it is not actually %q", pair.Original, pair.Corrected,
			),
			Frequency: 1,
			LastSeen:  now,
		})
	}

	return insights
}

// detectCategoryGaps flags categories that keep producing corrections for
// the same field — a sign the system lacks knowledge there.
func detectCategoryGaps(field string, entries []FeedbackEntry, now time.Time) []Insight {
	byCategory := make(map[string]int)
	for _, e := range entries {
		if e.Category != "" {
			byCategory[e.Category]++
		}
	}

	var insights []Insight
	for category, count := range byCategory {
		if count < GapMinEntries {
			continue
		}

		severity := SeverityLow
		switch {
		case count >= 10:
			severity = SeverityHigh
		case count >= 5:
			severity = SeverityMedium
		}

		insights = append(insights, Insight{
			Type: InsightGap,
			Description: fmt.Sprintf(
				"recurring %s corrections in category %q", field, category,
			),
			Severity: severity,
			Evidence: []string{fmt.Sprintf("%d %s corrections in %q", count, field, category)},
			SuggestedAction: fmt.Sprintf(
				"be more thorough when analyzing %s items", category,
			),
			Frequency: 1,
			LastSeen:  now,
		})
	}

	sort.Slice(insights, func(i, j int) bool {
		return insights[i].Description < insights[j].Description
	})

	return insights
}

// confusionPairs returns the recurring original-to-corrected pairings for
// one field, case-folded, counted across all entries.
func confusionPairs(field string, entries []FeedbackEntry) []confusionPair {
	counts := make(map[[2]string]int)
	for _, e := range entries {
		orig := strings.ToLower(strings.TrimSpace(e.Original))
		corr := strings.ToLower(strings.TrimSpace(e.Corrected))
		if orig == "" || corr == "" || orig == corr {
			continue
		}
		counts[[2]string{orig, corr}]++
	}

	var pairs []confusionPair
	for key, count := range counts {
		if count < ConfusionPairMin {
			continue
		}
		pairs = append(pairs, confusionPair{
			Field:     field,
			Original:  key[0],
			Corrected: key[1],
			Count:     count,
		})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Original < pairs[j].Original
	})

	return pairs
}

func midpoint(e FeedbackEntry) float64 {
	if e.PredictedMin == nil || e.PredictedMax == nil {
		return 0
	}
	return (*e.PredictedMin + *e.PredictedMax) / 2
}
