package knowledge

import "strings"

// MakerByName finds a maker mark by case-insensitive substring match in both
// directions: the query contained in the maker name, or the maker name
// contained in the query. The first table entry that matches wins; multiple
// matches are not disambiguated.
func MakerByName(name string) (MakerMark, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return MakerMark{}, false
	}

	for _, mark := range makerMarks {
		maker := strings.ToLower(mark.Maker)
		if strings.Contains(maker, needle) || strings.Contains(needle, maker) {
			return mark, true
		}
	}

	return MakerMark{}, false
}

// MarksForDomain returns up to limit maker marks documented for a domain.
func MarksForDomain(domain Domain, limit int) []MakerMark {
	var marks []MakerMark
	for _, mark := range makerMarks {
		if mark.Domain != domain {
			continue
		}
		marks = append(marks, mark)
		if len(marks) == limit {
			break
		}
	}
	return marks
}

// PatternFor finds the identification pattern for an item type within a
// domain. Matching uses only the first word of the pattern's item-type
// label, checked as a case-insensitive substring of the caller's item type.
// The heuristic is deliberately loose and kept for compatibility with the
// knowledge base's existing entries.
func PatternFor(domain Domain, itemType string) (IdentificationPattern, bool) {
	haystack := strings.ToLower(itemType)

	for _, pattern := range identificationPatterns {
		if pattern.Domain != domain {
			continue
		}
		if strings.Contains(haystack, firstWord(pattern.ItemType)) {
			return pattern, true
		}
	}

	return IdentificationPattern{}, false
}

// PatternsForDomain returns up to limit identification patterns for a domain.
func PatternsForDomain(domain Domain, limit int) []IdentificationPattern {
	var patterns []IdentificationPattern
	for _, pattern := range identificationPatterns {
		if pattern.Domain != domain {
			continue
		}
		patterns = append(patterns, pattern)
		if len(patterns) == limit {
			break
		}
	}
	return patterns
}

// CriteriaFor returns the authentication checklist for a domain.
func CriteriaFor(domain Domain) (AuthenticationCriteria, bool) {
	for _, criteria := range authenticationCriteria {
		if criteria.Domain == domain {
			return criteria, true
		}
	}
	return AuthenticationCriteria{}, false
}

// ValueRangeFor finds the typical value band for an item type within a
// domain, using the same first-word heuristic as PatternFor.
func ValueRangeFor(domain Domain, itemType string) (ValueRange, bool) {
	haystack := strings.ToLower(itemType)

	for _, vr := range valueRanges {
		if vr.Domain != domain {
			continue
		}
		if strings.Contains(haystack, firstWord(vr.ItemType)) {
			return vr, true
		}
	}

	return ValueRange{}, false
}

func firstWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}
