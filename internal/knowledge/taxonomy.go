// Package knowledge provides the static reference data that grounds every
// appraisal: the category and domain taxonomy, maker marks, identification
// patterns, authentication checklists, value ranges, and domain-expert
// prompt text. All tables are load-time constants and never mutated.
package knowledge

import "strings"

// Category classifies an item's broad age and provenance class.
type Category string

// Valid item categories.
const (
	CategoryAntique       Category = "antique"
	CategoryVintage       Category = "vintage"
	CategoryModernBranded Category = "modern_branded"
	CategoryModernGeneric Category = "modern_generic"
)

var categories = []Category{
	CategoryAntique,
	CategoryVintage,
	CategoryModernBranded,
	CategoryModernGeneric,
}

// Categories returns the list of valid item categories.
func Categories() []Category {
	return categories
}

// NormalizeCategory coerces a raw model-produced category into the fixed
// set, defaulting to vintage when the value is unrecognized. Model output
// is never trusted to stay inside the enum.
func NormalizeCategory(raw string) Category {
	v := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, c := range categories {
		if v == c {
			return c
		}
	}
	return CategoryVintage
}

// Domain identifies one of the fixed subject-matter expert domains used to
// select specialized prompt context.
type Domain string

// Valid expert domains.
const (
	DomainFurniture Domain = "furniture"
	DomainCeramics  Domain = "ceramics"
	DomainGlass     Domain = "glass"
	DomainSilver    Domain = "silver"
	DomainJewelry   Domain = "jewelry"
	DomainWatches   Domain = "watches"
	DomainClocks    Domain = "clocks"
	DomainArt       Domain = "art"
	DomainBooks     Domain = "books"
	DomainTextiles  Domain = "textiles"
	DomainToys      Domain = "toys"
	DomainTools     Domain = "tools"
	DomainLighting  Domain = "lighting"
	DomainCoins     Domain = "coins"
	DomainGeneral   Domain = "general"
)

var domains = []Domain{
	DomainFurniture,
	DomainCeramics,
	DomainGlass,
	DomainSilver,
	DomainJewelry,
	DomainWatches,
	DomainClocks,
	DomainArt,
	DomainBooks,
	DomainTextiles,
	DomainToys,
	DomainTools,
	DomainLighting,
	DomainCoins,
	DomainGeneral,
}

// Domains returns the list of valid expert domains.
func Domains() []Domain {
	return domains
}

// domainSynonyms maps values the model tends to produce for subjects that
// have no dedicated expert domain onto the closest fixed domain.
var domainSynonyms = map[string]Domain{
	"architecture": DomainArt,
	"photography":  DomainArt,
	"photograph":   DomainArt,
	"photos":       DomainArt,
	"music":        DomainGeneral,
	"records":      DomainGeneral,
	"collectibles": DomainGeneral,
	"memorabilia":  DomainGeneral,
}

// NormalizeDomain coerces a raw model-produced domain into the fixed set.
// Recognized synonyms map deterministically; anything else unrecognized
// falls back to general.
func NormalizeDomain(raw string) Domain {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	v := Domain(cleaned)
	for _, d := range domains {
		if v == d {
			return d
		}
	}

	if mapped, ok := domainSynonyms[cleaned]; ok {
		return mapped
	}

	return DomainGeneral
}

// QualityTier grades the apparent quality and desirability of an item.
type QualityTier string

// Valid quality tiers.
const (
	QualityLow    QualityTier = "low"
	QualityMid    QualityTier = "mid"
	QualityHigh   QualityTier = "high"
	QualityMuseum QualityTier = "museum"
)

var qualityTiers = []QualityTier{
	QualityLow,
	QualityMid,
	QualityHigh,
	QualityMuseum,
}

// QualityTiers returns the list of valid quality tiers.
func QualityTiers() []QualityTier {
	return qualityTiers
}

// NormalizeQualityTier coerces a raw model-produced quality tier into the
// fixed set, defaulting to mid.
func NormalizeQualityTier(raw string) QualityTier {
	v := QualityTier(strings.ToLower(strings.TrimSpace(raw)))
	for _, q := range qualityTiers {
		if v == q {
			return q
		}
	}
	return QualityMid
}
